package shape

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KasperOmsK/adtfn"
	"gopkg.in/yaml.v3"
)

// document is the on-disk form of a Shape: a flat record whose kind field
// selects the variant. YAML and JSON documents share it.
type document struct {
	Kind   string     `yaml:"kind"`
	Radius *float64   `yaml:"radius,omitempty"`
	Width  *float64   `yaml:"width,omitempty"`
	Length *float64   `yaml:"length,omitempty"`
	X      *float64   `yaml:"x,omitempty"`
	Y      *float64   `yaml:"y,omitempty"`
	Points []pointDoc `yaml:"points,omitempty"`
}

type pointDoc struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

// Variant maps the kind field onto a Shape tag, case-insensitively. Unknown
// kinds are returned as written so the Matcher reports them.
func (d document) Variant() string {
	for _, tag := range Sum.Variants() {
		if strings.EqualFold(tag, d.Kind) {
			return tag
		}
	}
	return d.Kind
}

var decoder = adtfn.MustMatcher(Sum,
	adtfn.On("Circle", func(d document) adtfn.Result[Shape] {
		r, err := mandatory("Circle", "radius", d.Radius)
		if err != nil {
			return adtfn.Err[Shape](err)
		}
		return asShape(NewCircle(r))
	}),
	adtfn.On("Rectangle", func(d document) adtfn.Result[Shape] {
		w, err := mandatory("Rectangle", "width", d.Width)
		if err != nil {
			return adtfn.Err[Shape](err)
		}
		l, err := mandatory("Rectangle", "length", d.Length)
		if err != nil {
			return adtfn.Err[Shape](err)
		}
		return asShape(NewRectangle(w, l))
	}),
	adtfn.On("Polygon", func(d document) adtfn.Result[Shape] {
		points := make([]Point, len(d.Points))
		for i, p := range d.Points {
			field := fmt.Sprintf("points[%d]", i)
			x, err := mandatory("Polygon", field+".x", p.X)
			if err != nil {
				return adtfn.Err[Shape](err)
			}
			y, err := mandatory("Polygon", field+".y", p.Y)
			if err != nil {
				return adtfn.Err[Shape](err)
			}
			points[i] = Point{X: x, Y: y}
		}
		return asShape(NewPolygon(points...))
	}),
	adtfn.On("Point", func(d document) adtfn.Result[Shape] {
		x, err := mandatory("Point", "x", d.X)
		if err != nil {
			return adtfn.Err[Shape](err)
		}
		y, err := mandatory("Point", "y", d.Y)
		if err != nil {
			return adtfn.Err[Shape](err)
		}
		return asShape(NewPoint(x, y))
	}),
)

func mandatory(variant, field string, v *float64) (float64, error) {
	if v == nil {
		return 0, adtfn.Invalidf(Sum, variant, field, "missing")
	}
	return *v, nil
}

func asShape[S Shape](s S, err error) adtfn.Result[Shape] {
	if err != nil {
		return adtfn.Err[Shape](err)
	}
	return adtfn.Ok[Shape](s)
}

func fromDocument(d document) (Shape, error) {
	r, err := decoder.Match(d)
	if err != nil {
		return nil, err
	}
	return r.Get()
}

func toDocument(s Shape) (document, error) {
	return Match(s,
		func(c Circle) document {
			return document{Kind: "circle", Radius: &c.Radius}
		},
		func(r Rectangle) document {
			return document{Kind: "rectangle", Width: &r.Width, Length: &r.Length}
		},
		func(p Polygon) document {
			points := make([]pointDoc, len(p.Points))
			for i, pt := range p.Points {
				x, y := pt.X, pt.Y
				points[i] = pointDoc{X: &x, Y: &y}
			}
			return document{Kind: "polygon", Points: points}
		},
		func(p Point) document {
			return document{Kind: "point", X: &p.X, Y: &p.Y}
		},
	)
}

// Decode reads a YAML (or JSON) list of shape documents. Every document is
// validated by the variant constructor; the first failure is returned with
// the index of the offending document.
func Decode(r io.Reader) ([]Shape, error) {
	var docs []document
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding shapes: %w", err)
	}

	shapes := make([]Shape, 0, len(docs))
	for i, d := range docs {
		s, err := fromDocument(d)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// Encode writes shapes as a YAML list that Decode reads back.
func Encode(w io.Writer, shapes []Shape) error {
	docs := make([]document, 0, len(shapes))
	for i, s := range shapes {
		d, err := toDocument(s)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		docs = append(docs, d)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("encoding shapes: %w", err)
	}
	return enc.Close()
}
