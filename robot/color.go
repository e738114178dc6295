package robot

import (
	"fmt"
	"strings"

	"github.com/KasperOmsK/adtfn"
)

// ColorSum declares the paint colors a robot part may carry.
var ColorSum = adtfn.NewSum("Color", "SkyBlue", "PastelRed", "White")

// Color is SkyBlue, PastelRed or White. Colors carry no payload, so every
// value of a variant equals every other.
type Color interface {
	adtfn.Variant
	isColor()
}

type (
	SkyBlue   struct{}
	PastelRed struct{}
	White     struct{}
)

func (SkyBlue) Variant() string   { return "SkyBlue" }
func (PastelRed) Variant() string { return "PastelRed" }
func (White) Variant() string     { return "White" }

func (SkyBlue) isColor()   {}
func (PastelRed) isColor() {}
func (White) isColor()     {}

// Colors returns one value of every Color variant.
func Colors() []Color {
	return []Color{SkyBlue{}, PastelRed{}, White{}}
}

// MatchColor calls the handler for c.
func MatchColor[R any](c Color, skyBlue, pastelRed, white func() R) (R, error) {
	switch v := c.(type) {
	case SkyBlue:
		return adtfn.Dispatch(ColorSum, v, ignore[SkyBlue](skyBlue))
	case *SkyBlue:
		if v != nil {
			return adtfn.Dispatch(ColorSum, *v, ignore[SkyBlue](skyBlue))
		}
	case PastelRed:
		return adtfn.Dispatch(ColorSum, v, ignore[PastelRed](pastelRed))
	case *PastelRed:
		if v != nil {
			return adtfn.Dispatch(ColorSum, *v, ignore[PastelRed](pastelRed))
		}
	case White:
		return adtfn.Dispatch(ColorSum, v, ignore[White](white))
	case *White:
		if v != nil {
			return adtfn.Dispatch(ColorSum, *v, ignore[White](white))
		}
	}
	var zero R
	return zero, adtfn.Unmatched(ColorSum, c)
}

// ignore adapts a handler of a payload-less variant. A nil fn stays nil so
// Dispatch still reports it.
func ignore[V any, R any](fn func() R) func(V) R {
	if fn == nil {
		return nil
	}
	return func(V) R { return fn() }
}

// Hex returns the RGB value of c.
func Hex(c Color) (uint32, error) {
	return MatchColor(c,
		func() uint32 { return 0x87CEFA },
		func() uint32 { return 0xFF6961 },
		func() uint32 { return 0xFFFFFF },
	)
}

// ParseColor reads a color name such as "skyblue" or "PastelRed".
func ParseColor(s string) (Color, error) {
	name := strings.TrimSpace(s)
	for _, c := range Colors() {
		if strings.EqualFold(c.Variant(), name) {
			return c, nil
		}
	}
	return nil, &adtfn.UnmatchedVariantError{Sum: ColorSum.Name(), Variant: name}
}

// FormatHex renders c as a CSS style hex triplet.
func FormatHex(c Color) (string, error) {
	h, err := Hex(c)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%06X", h), nil
}
