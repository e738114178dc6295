/*
Package adtfn provides algebraic data types for Go: closed sum types with
exhaustive matching, Option/Result/Either values, function composition, and
lazily evaluated streaming Pipes that carry errors alongside values.

# Sum types

Go has no tagged unions, so a sum type is written as a sealed interface
implemented by one struct per variant. Each variant reports its tag through
the Variant interface, and the set of tags is declared once with NewSum:

	var ShapeSum = adtfn.NewSum("Shape", "Circle", "Rectangle")

	type Shape interface {
		adtfn.Variant
		isShape()
	}

	type Circle struct{ Radius float64 }
	type Rectangle struct{ Width, Length float64 }

	func (Circle) Variant() string    { return "Circle" }
	func (Rectangle) Variant() string { return "Rectangle" }

Two variants compare equal when they are the same variant with equal
payloads; different variants never compare equal.

# Matching

There are two ways to branch over a sum type.

A typed match function takes one handler per variant as positional
arguments, so adding a variant without updating every caller is a compile
error. Dispatch is the building block for such functions: a nil handler
fails with an *UnmatchedVariantError rather than being skipped.

	func MatchShape[R any](s Shape, circle func(Circle) R, rect func(Rectangle) R) (R, error)

A Matcher is built at runtime from a list of cases and refuses to be built
unless the cases cover every declared variant exactly once:

	area, err := adtfn.NewMatcher(ShapeSum,
		adtfn.On("Circle", func(s Shape) float64 { ... }),
		adtfn.On("Rectangle", func(s Shape) float64 { ... }),
	)

Both report unhandled variants loudly; neither falls back to a default.

# Option, Result and Either

Option and Result replace nil checks and (value, error) plumbing where a
value has to travel through a composition. AndThenResult and Chain give the
short-circuiting "railway" style:

	r := adtfn.Chain(input, nameNotBlank, emailNotBlank, emailValid)

# Pipes

A Pipe[T] is a lazily evaluated stream of values of type T. Transformations
(Map, TryMap, Filter, Chunk, GroupBy, MatchMap, ...) are package level
functions returning new Pipes. Errors produced by any stage flow through the
Pipe's error channel:

	shapes := adtfn.From(decoded)
	areas := adtfn.MatchMap(shapes, area)
	vals, errs := areas.Results()

	// Errors *must* be consumed concurrently to avoid blocking the pipeline.
	go func() {
		for err := range errs {
			log.Println("pipeline error:", err)
		}
	}()

	for a := range vals {
		fmt.Println(a)
	}
*/
package adtfn
