package adtfn

// Option holds either a value (Some) or nothing (None).
//
// The zero Option is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer and Some(*ptr) otherwise.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it is present, comma-ok style.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value or panics on None.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("adtfn: Unwrap called on None")
	}
	return o.value
}

// UnwrapOr returns the value, or def on None.
func (o Option[T]) UnwrapOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the value, or the result of fn on None.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Filter returns o when it holds a value satisfying predicate, None otherwise.
func (o Option[T]) Filter(predicate Predicate[T]) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr returns a pointer to a copy of the value, or nil on None.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// OkOr converts o into a Result, using err for None.
func (o Option[T]) OkOr(err error) Result[T] {
	if o.present {
		return Ok(o.value)
	}
	return Err[T](err)
}

// MapOption applies fn to the value of o, if any.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// AndThenOption chains a computation that may itself produce nothing.
func AndThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// MatchOption calls onSome with the value or onNone when empty.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}
