package adtfn

// Identity returns its argument.
func Identity[T any](v T) T {
	return v
}

// Compose returns a function applying f, then g.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose3 returns a function applying f, g, then h.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// ComposeAll chains same-typed functions left to right. With no functions it
// returns Identity.
func ComposeAll[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		return Through(v, fns...)
	}
}

// Through threads v through fns in order and returns the final value.
//
//	Through(" Hello ", strings.TrimSpace, strings.ToUpper) // "HELLO"
func Through[T any](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

// Curry2 turns a two argument function into a chain of one argument functions.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 is Curry2 for three arguments.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 reverses Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Flip swaps the arguments of a two argument function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// Do wraps a side effect so it can sit in a composition: the returned
// function runs fn and passes its argument through unchanged.
func Do[T any](fn func(T)) func(T) T {
	return func(v T) T {
		fn(v)
		return v
	}
}
