// Package iterx holds small iter.Seq helpers shared by the pipe and its tests.
package iterx

import (
	"iter"
)

// Of returns a sequence over the given values.
func Of[T any](values ...T) iter.Seq[T] {
	return FromSlice(values)
}

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				return
			}
		}
	}
}

func FromChan[T any](in <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range in {
			if !yield(item) {
				return
			}
		}
	}
}

// Collect drains seq into a slice. It returns nil for an empty sequence.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for item := range seq {
		out = append(out, item)
	}
	return out
}
