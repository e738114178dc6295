// Package direction models the four compass directions as a closed
// enumeration whose reversal is a fixed lookup table.
package direction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KasperOmsK/adtfn"
)

// Direction is one of North, South, East or West.
//
// The zero Direction is invalid, so a Direction that was never assigned is
// caught instead of silently meaning North.
type Direction uint8

const (
	North Direction = iota + 1
	South
	East
	West
)

// Sum declares the Direction variants.
var Sum = adtfn.NewSum("Direction", "North", "South", "East", "West")

// ErrInvalid is wrapped by every parse failure.
var ErrInvalid = errors.New("invalid direction")

var names = [...]string{
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

var reversed = [...]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
}

// All returns the four directions in declaration order.
func All() []Direction {
	return []Direction{North, South, East, West}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// Variant implements adtfn.Variant.
func (d Direction) Variant() string {
	return d.String()
}

// Reverse returns the opposite direction. Reverse is an involution:
// d.Reverse().Reverse() == d.
//
// Reverse panics on an invalid Direction.
func (d Direction) Reverse() Direction {
	if !d.Valid() {
		panic(fmt.Sprintf("direction.Reverse: %v", d))
	}
	return reversed[d]
}

// Match calls the handler for d. Each handler is mandatory; a nil handler,
// or an invalid d, fails with an *adtfn.UnmatchedVariantError.
func Match[R any](d Direction, north, south, east, west func() R) (R, error) {
	var fn func() R
	switch d {
	case North:
		fn = north
	case South:
		fn = south
	case East:
		fn = east
	case West:
		fn = west
	}
	if fn == nil {
		var zero R
		return zero, adtfn.Unmatched(Sum, d)
	}
	return fn(), nil
}

// Parse reads a direction name, case-insensitively. The initials N, S, E
// and W are accepted too.
func Parse(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range All() {
		full := strings.ToLower(names[d])
		if name == full || name == full[:1] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalid, uint8(d))
	}
	return []byte(names[d]), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
