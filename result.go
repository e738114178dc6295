package adtfn

import "fmt"

// Result is the outcome of a computation that either produced a value (Ok)
// or failed with an error (Err).
//
// Result is the package's answer to hand-rolled success/failure wrappers: a
// function returning (T, error) converts with Try, and Get converts back.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns a failed Result. Err panics if err is nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("adtfn.Err: nil error")
	}
	return Result[T]{err: err}
}

// Try lifts a (value, error) pair into a Result.
func Try[T any](value T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Ok(value)
}

// IsOk reports whether r is successful.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether r failed.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get returns the value and the error, Go style.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the value or panics with the error.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Sprintf("adtfn: Unwrap called on Err: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the error or panics on Ok.
func (r Result[T]) UnwrapErr() error {
	if r.err == nil {
		panic("adtfn: UnwrapErr called on Ok")
	}
	return r.err
}

// UnwrapOr returns the value, or def on Err.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// ToOption drops the error, turning Err into None.
func (r Result[T]) ToOption() Option[T] {
	if r.err == nil {
		return Some(r.value)
	}
	return None[T]()
}

// MapResult applies fn to a successful value. Errors pass through unchanged.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(fn(r.value))
}

// AndThenResult chains a computation that may itself fail. It is the bind of
// the railway: a failed r short-circuits and fn is never called.
func AndThenResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return fn(r.value)
}

// MapErr applies fn to the error of a failed Result.
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// MatchResult calls onOk or onErr depending on the state of r.
func MatchResult[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.err == nil {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Chain feeds value through stages in order and stops at the first failure.
func Chain[T any](value T, stages ...func(T) Result[T]) Result[T] {
	r := Ok(value)
	for _, stage := range stages {
		r = AndThenResult(r, stage)
		if r.err != nil {
			return r
		}
	}
	return r
}
