package adtfn

import (
	"fmt"
	"iter"
	"sync"
)

// PipelineError is sent on a Pipe's error channel when a stage rejects an item.
type PipelineError struct {
	Item   any
	Reason error
}

func (e PipelineError) Error() string {
	return fmt.Sprintf("pipeline: item %v: %v", e.Item, e.Reason)
}

func (e PipelineError) Unwrap() error {
	return e.Reason
}

// Pipe is a lazily evaluated stream of values of type T, paired with the
// error channel shared by every stage derived from the same source.
type Pipe[T any] struct {
	seq    iter.Seq[T]
	errors chan PipelineError
	// closeErrors closes errors once the values have been consumed.
	closeErrors func()
	taps        *[]func(T)
}

// From wraps seq into a Pipe with a fresh error channel.
func From[T any](seq iter.Seq[T]) Pipe[T] {
	errs := make(chan PipelineError)
	var once sync.Once
	return Pipe[T]{
		seq:         seq,
		errors:      errs,
		closeErrors: func() { once.Do(func() { close(errs) }) },
		taps:        new([]func(T)),
	}
}

// derive returns a Pipe producing seq and sharing the error channel of p.
func derive[In, Out any](p Pipe[In], seq iter.Seq[Out]) Pipe[Out] {
	return Pipe[Out]{
		seq:         seq,
		errors:      p.errors,
		closeErrors: p.closeErrors,
		taps:        new([]func(Out)),
	}
}

// Tap registers fn to be called with every value flowing out of p, in the
// order taps were registered. It returns p for chaining.
//
// Tap panics if fn is nil.
func (p Pipe[T]) Tap(fn func(T)) Pipe[T] {
	if fn == nil {
		panic("adtfn.Pipe.Tap: nil func")
	}
	*p.taps = append(*p.taps, fn)
	return p
}

// Values returns the values of p as an iter.Seq, ignoring the error channel.
//
// Stages that report errors block until the error is received, so Values is
// only safe on pipes without failing stages, or while another goroutine
// drains the channel returned by Results.
func (p Pipe[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range p.seq {
			for _, tap := range *p.taps {
				tap(v)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Results returns the values of p and its error channel.
//
// The error channel is closed once iteration of the returned sequence ends,
// either because the input is exhausted or because the consumer stopped.
// Errors must be received concurrently with the values.
func (p Pipe[T]) Results() (iter.Seq[T], <-chan PipelineError) {
	vals := func(yield func(T) bool) {
		defer p.closeErrors()
		for v := range p.Values() {
			if !yield(v) {
				return
			}
		}
	}
	return vals, p.errors
}
