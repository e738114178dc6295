// Package shape implements the Circle | Rectangle | Polygon | Point union.
package shape

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/KasperOmsK/adtfn"
)

// Sum declares the Shape variants.
var Sum = adtfn.NewSum("Shape", "Circle", "Rectangle", "Polygon", "Point")

// Shape is a Circle, a Rectangle, a Polygon or a Point.
type Shape interface {
	adtfn.Variant
	isShape()
}

type Circle struct {
	Radius float64
}

type Rectangle struct {
	Width  float64
	Length float64
}

// Polygon is a closed path through its points, in order.
//
// Polygon holds a slice, so two Polygons cannot be compared with ==; use
// Equal.
type Polygon struct {
	Points []Point
}

type Point struct {
	X float64
	Y float64
}

func (Circle) Variant() string    { return "Circle" }
func (Rectangle) Variant() string { return "Rectangle" }
func (Polygon) Variant() string   { return "Polygon" }
func (Point) Variant() string     { return "Point" }

func (Circle) isShape()    {}
func (Rectangle) isShape() {}
func (Polygon) isShape()   {}
func (Point) isShape()     {}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func measure(variant, field string, v float64) error {
	if !finite(v) || v < 0 {
		return adtfn.Invalidf(Sum, variant, field, "must be a finite non-negative number, got %v", v)
	}
	return nil
}

// NewCircle builds a Circle with a finite non-negative radius.
func NewCircle(radius float64) (Circle, error) {
	if err := measure("Circle", "radius", radius); err != nil {
		return Circle{}, err
	}
	return Circle{Radius: radius}, nil
}

// NewRectangle builds a Rectangle with finite non-negative sides.
func NewRectangle(width, length float64) (Rectangle, error) {
	if err := measure("Rectangle", "width", width); err != nil {
		return Rectangle{}, err
	}
	if err := measure("Rectangle", "length", length); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{Width: width, Length: length}, nil
}

// NewPolygon builds a Polygon of at least three points. The points are
// copied.
func NewPolygon(points ...Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, adtfn.Invalidf(Sum, "Polygon", "points", "need at least 3, got %d", len(points))
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return Polygon{}, adtfn.Invalidf(Sum, "Polygon", fmt.Sprintf("points[%d]", i), "non-finite coordinate %v", p)
		}
	}
	return Polygon{Points: slices.Clone(points)}, nil
}

// NewPoint builds a Point with finite coordinates.
func NewPoint(x, y float64) (Point, error) {
	if !finite(x) {
		return Point{}, adtfn.Invalidf(Sum, "Point", "x", "non-finite %v", x)
	}
	if !finite(y) {
		return Point{}, adtfn.Invalidf(Sum, "Point", "y", "non-finite %v", y)
	}
	return Point{X: x, Y: y}, nil
}

// Match calls the handler for the variant of s.
func Match[R any](
	s Shape,
	circle func(Circle) R,
	rectangle func(Rectangle) R,
	polygon func(Polygon) R,
	point func(Point) R,
) (R, error) {
	switch v := s.(type) {
	case Circle:
		return adtfn.Dispatch(Sum, v, circle)
	case *Circle:
		if v != nil {
			return adtfn.Dispatch(Sum, *v, circle)
		}
	case Rectangle:
		return adtfn.Dispatch(Sum, v, rectangle)
	case *Rectangle:
		if v != nil {
			return adtfn.Dispatch(Sum, *v, rectangle)
		}
	case Polygon:
		return adtfn.Dispatch(Sum, v, polygon)
	case *Polygon:
		if v != nil {
			return adtfn.Dispatch(Sum, *v, polygon)
		}
	case Point:
		return adtfn.Dispatch(Sum, v, point)
	case *Point:
		if v != nil {
			return adtfn.Dispatch(Sum, *v, point)
		}
	}
	var zero R
	return zero, adtfn.Unmatched(Sum, s)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (p Point) String() string {
	return "(" + num(p.X) + ", " + num(p.Y) + ")"
}

// Describe renders s in one line.
func Describe(s Shape) (string, error) {
	return Match(s,
		func(c Circle) string {
			return "circle radius: " + num(c.Radius)
		},
		func(r Rectangle) string {
			return "rectangle width: " + num(r.Width) + ", length: " + num(r.Length)
		},
		func(p Polygon) string {
			parts := make([]string, len(p.Points))
			for i, pt := range p.Points {
				parts[i] = pt.String()
			}
			return "polygon points: " + strings.Join(parts, " ")
		},
		func(p Point) string {
			return "point x: " + num(p.X) + ", y: " + num(p.Y)
		},
	)
}

// Area returns the enclosed area of s. Points have no area.
func Area(s Shape) (float64, error) {
	return Match(s,
		func(c Circle) float64 { return math.Pi * c.Radius * c.Radius },
		func(r Rectangle) float64 { return r.Width * r.Length },
		func(p Polygon) float64 {
			// shoelace formula
			var twice float64
			for i, a := range p.Points {
				b := p.Points[(i+1)%len(p.Points)]
				twice += a.X*b.Y - b.X*a.Y
			}
			return math.Abs(twice) / 2
		},
		func(Point) float64 { return 0 },
	)
}

// Equal reports whether a and b are the same variant with equal payloads.
// A nil Shape equals nothing, not even another nil.
func Equal(a, b Shape) bool {
	if a == nil || b == nil {
		return false
	}
	if x, ok := a.(Polygon); ok {
		y, ok := b.(Polygon)
		return ok && slices.Equal(x.Points, y.Points)
	}
	if _, ok := b.(Polygon); ok {
		return false
	}
	return a == b
}
