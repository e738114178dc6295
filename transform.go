package adtfn

import (
	"iter"
	"sync"

	"github.com/KasperOmsK/adtfn/internal/iterx"
)

type (

	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// TryMapFunc is a mapping function that may return an error.
	//
	// Errors are forwarded to the Pipe's error channel while
	// successful values continue through the pipeline.
	TryMapFunc[In, Out any] func(in In) (Out, error)

	// Predicate reports whether a value should be kept.
	Predicate[T any] func(item T) bool
)

// Map transforms each input value using fn.
//
// Errors from the input Pipe are preserved.
func Map[In, Out any](p Pipe[In], fn MapFunc[In, Out]) Pipe[Out] {
	return derive(p, func(yield func(Out) bool) {
		for in := range p.Values() {
			if !yield(fn(in)) {
				return
			}
		}
	})
}

// FlatMap is Flatten(Map(p, fn)).
func FlatMap[In, Out any](p Pipe[In], fn MapFunc[In, []Out]) Pipe[Out] {
	return Flatten(Map(p, fn))
}

// TryMap transforms each input value using fn, forwarding non-nil errors
// onto the Pipe's error channel and yielding only successful results.
//
// Errors from the input Pipe are preserved.
func TryMap[In, Out any](p Pipe[In], fn TryMapFunc[In, Out]) Pipe[Out] {
	return derive(p, func(yield func(Out) bool) {
		for in := range p.Values() {
			out, err := fn(in)
			if err != nil {
				p.errors <- PipelineError{Item: in, Reason: err}
				continue
			}
			if !yield(out) {
				return
			}
		}
	})
}

// FlatTryMap is Flatten(TryMap(p, fn)).
func FlatTryMap[In, Out any](p Pipe[In], fn TryMapFunc[In, []Out]) Pipe[Out] {
	return Flatten(TryMap(p, fn))
}

// ResultMap transforms each input value into a Result. Ok values continue
// downstream, Err values are forwarded to the Pipe's error channel.
func ResultMap[In, Out any](p Pipe[In], fn func(In) Result[Out]) Pipe[Out] {
	return TryMap(p, func(in In) (Out, error) {
		return fn(in).Get()
	})
}

// MatchMap dispatches each variant through m. Variants the Matcher cannot
// handle are reported on the error channel as *UnmatchedVariantError.
func MatchMap[V Variant, R any](p Pipe[V], m Matcher[V, R]) Pipe[R] {
	return TryMap(p, m.Match)
}

// Filter yields only the values for which predicate returns true.
//
// Errors from the input Pipe are preserved.
func Filter[T any](p Pipe[T], predicate Predicate[T]) Pipe[T] {
	return derive(p, func(yield func(T) bool) {
		for in := range p.Values() {
			if predicate(in) && !yield(in) {
				return
			}
		}
	})
}

// Flatten converts a Pipe of slices into a Pipe of their elements, in order.
func Flatten[T any](p Pipe[[]T]) Pipe[T] {
	return derive(p, func(yield func(T) bool) {
		for slice := range p.Values() {
			for _, item := range slice {
				if !yield(item) {
					return
				}
			}
		}
	})
}

// Chunk groups incoming values into slices of chunkSize. The final chunk may
// be smaller.
//
// Every chunk has its own backing array, so chunks may be retained safely.
//
// Chunk panics if chunkSize is not positive.
func Chunk[T any](p Pipe[T], chunkSize int) Pipe[[]T] {
	if chunkSize <= 0 {
		panic("adtfn.Chunk: chunkSize must be positive")
	}

	return derive(p, func(yield func([]T) bool) {
		accum := make([]T, 0, chunkSize)
		for v := range p.Values() {
			if len(accum) >= chunkSize {
				if !yield(accum) {
					return
				}
				accum = make([]T, 0, chunkSize)
			}
			accum = append(accum, v)
		}

		if len(accum) > 0 {
			yield(accum)
		}
	})
}

// GroupBy groups consecutive values sharing the same key.
//
// GroupBy does not reorder values: given A, A, B, B, A it emits
// [A, A], [B, B], [A].
//
// Errors from the input Pipe are preserved.
func GroupBy[T any, K comparable](p Pipe[T], keyFunc func(T) K) Pipe[[]T] {
	return derive(p, func(yield func([]T) bool) {
		var accum []T
		var current K
		for v := range p.Values() {
			k := keyFunc(v)
			if len(accum) > 0 && k != current {
				if !yield(accum) {
					return
				}
				accum = nil
			}
			current = k
			accum = append(accum, v)
		}

		if len(accum) > 0 {
			yield(accum)
		}
	})
}

// GroupByAggregate folds each run of consecutive values sharing a key into a
// single output value, without materializing the group.
//
// initFunc is called with the first value of a group and returns the initial
// accumulator; updateFunc is then called for every value of the group,
// including the first.
//
//	initFunc := func(first int) int { return 0 }
//	updateFunc := func(acc *int, v int) { *acc += v }
//
// Like GroupBy, GroupByAggregate does not reorder its input.
func GroupByAggregate[In any, K comparable, Out any](
	p Pipe[In],
	keyFunc func(In) K,
	initFunc func(first In) Out,
	updateFunc func(acc *Out, item In)) Pipe[Out] {

	return derive(p, func(yield func(Out) bool) {
		var acc *Out
		var current K
		for v := range p.Values() {
			k := keyFunc(v)
			if acc != nil && k != current {
				if !yield(*acc) {
					return
				}
				acc = nil
			}
			if acc == nil {
				first := initFunc(v)
				acc = &first
			}
			current = k
			updateFunc(acc, v)
		}

		if acc != nil {
			yield(*acc)
		}
	})
}

// Merge combines multiple pipes into one yielding every value of every input.
//
// Values from different pipes may interleave in any order. The error
// channels of all inputs are merged into the returned pipe's channel, which
// is closed once every input has stopped.
func Merge[T any](pipes ...Pipe[T]) Pipe[T] {
	if len(pipes) == 0 {
		return From(iterx.Of[T]())
	}

	if len(pipes) == 1 {
		return pipes[0]
	}

	// pipes derived from the same source share an error channel, which may
	// only be closed once the last of them stops.
	var mu sync.Mutex
	pending := make(map[chan PipelineError]int, len(pipes))
	allErrors := make([]chan PipelineError, 0, len(pipes))
	for _, p := range pipes {
		if pending[p.errors] == 0 {
			allErrors = append(allErrors, p.errors)
		}
		pending[p.errors]++
	}

	release := func(p Pipe[T]) {
		mu.Lock()
		pending[p.errors]--
		last := pending[p.errors] == 0
		mu.Unlock()
		if last {
			p.closeErrors()
		}
	}

	return Pipe[T]{
		seq:    mergeIterators(release, pipes...),
		errors: mergeChans(allErrors...),
		// the merged channel closes itself once every input is closed
		closeErrors: func() {},
		taps:        new([]func(T)),
	}
}

func mergeIterators[T any](release func(Pipe[T]), pipes ...Pipe[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		merged := make(chan T)
		done := make(chan struct{})
		var wg sync.WaitGroup

		wg.Add(len(pipes))

		go func() {
			wg.Wait()
			close(merged)
		}()

		for _, p := range pipes {
			go func() {
				defer wg.Done()
				defer release(p)
				for item := range p.Values() {
					select {
					case merged <- item:
					case <-done:
						return
					}
				}
			}()
		}

		for v := range iterx.FromChan[T](merged) {
			if !yield(v) {
				// tell inputs to stop producing
				close(done)
				go func() {
					// drain items already in flight
					for range merged {
					}
				}()
				return
			}
		}
	}
}

func mergeChans[T any](chans ...chan T) chan T {
	out := make(chan T)

	var wg sync.WaitGroup
	wg.Add(len(chans))
	for _, ch := range chans {
		go func() {
			defer wg.Done()
			for e := range ch {
				out <- e
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
