// Package robot models a giant robot whose parts are built from validated
// product types and whose weapon is a Rifle | Knife union.
package robot

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/KasperOmsK/adtfn"
	"github.com/google/uuid"
)

// Coordinate is a point of the robot's body. All axes are non-negative.
type Coordinate struct {
	X, Y, Z float64
}

// NewCoordinate builds a Coordinate, rejecting negative or non-finite axes.
func NewCoordinate(x, y, z float64) (Coordinate, error) {
	for _, axis := range []struct {
		name string
		v    float64
	}{{"x", x}, {"y", y}, {"z", z}} {
		if math.IsNaN(axis.v) || math.IsInf(axis.v, 0) || axis.v < 0 {
			return Coordinate{}, &adtfn.ConstructionError{
				Sum:     "GiantRobot",
				Variant: "Coordinate",
				Field:   axis.name,
				Reason:  fmt.Errorf("must be a finite non-negative number, got %v", axis.v),
			}
		}
	}
	return Coordinate{X: x, Y: y, Z: z}, nil
}

// Legs are a pair of coordinate paths painted in one color.
type Legs struct {
	Left  []Coordinate
	Right []Coordinate
	Color Color
}

// Arms are a pair of coordinate paths painted in one color.
type Arms struct {
	Left  []Coordinate
	Right []Coordinate
	Color Color
}

// WeaponSum declares the Weapon variants.
var WeaponSum = adtfn.NewSum("Weapon", "Rifle", "Knife")

// Weapon is a Rifle or a Knife.
type Weapon interface {
	adtfn.Variant
	isWeapon()
}

type Rifle struct {
	Ammo  int
	Model string
}

// Knife holds a slice and cannot be compared with ==; use EqualWeapon.
type Knife struct {
	Shape   []Coordinate
	IsBlunt bool
}

func (Rifle) Variant() string { return "Rifle" }
func (Knife) Variant() string { return "Knife" }

func (Rifle) isWeapon() {}
func (Knife) isWeapon() {}

// NewRifle builds a Rifle. ammo may be zero but not negative.
func NewRifle(ammo int, model string) (Rifle, error) {
	if ammo < 0 {
		return Rifle{}, adtfn.Invalidf(WeaponSum, "Rifle", "ammo", "negative count %d", ammo)
	}
	if model == "" {
		return Rifle{}, adtfn.Invalidf(WeaponSum, "Rifle", "model", "blank")
	}
	return Rifle{Ammo: ammo, Model: model}, nil
}

// NewKnife builds a Knife outlined by shape. The coordinates are copied.
func NewKnife(shape []Coordinate, blunt bool) (Knife, error) {
	if len(shape) == 0 {
		return Knife{}, adtfn.Invalidf(WeaponSum, "Knife", "shape", "no coordinates")
	}
	return Knife{Shape: slices.Clone(shape), IsBlunt: blunt}, nil
}

// MatchWeapon calls the handler for w.
func MatchWeapon[R any](w Weapon, rifle func(Rifle) R, knife func(Knife) R) (R, error) {
	switch v := w.(type) {
	case Rifle:
		return adtfn.Dispatch(WeaponSum, v, rifle)
	case *Rifle:
		if v != nil {
			return adtfn.Dispatch(WeaponSum, *v, rifle)
		}
	case Knife:
		return adtfn.Dispatch(WeaponSum, v, knife)
	case *Knife:
		if v != nil {
			return adtfn.Dispatch(WeaponSum, *v, knife)
		}
	}
	var zero R
	return zero, adtfn.Unmatched(WeaponSum, w)
}

// EqualWeapon reports whether a and b are the same variant with equal
// payloads.
func EqualWeapon(a, b Weapon) bool {
	switch x := a.(type) {
	case Rifle:
		y, ok := b.(Rifle)
		return ok && x == y
	case Knife:
		y, ok := b.(Knife)
		return ok && x.IsBlunt == y.IsBlunt && slices.Equal(x.Shape, y.Shape)
	}
	return false
}

// DescribeWeapon renders w in one line.
func DescribeWeapon(w Weapon) (string, error) {
	return MatchWeapon(w,
		func(r Rifle) string {
			return "rifle " + strconv.Quote(r.Model) + " with " + strconv.Itoa(r.Ammo) + " rounds"
		},
		func(k Knife) string {
			if k.IsBlunt {
				return "blunt knife"
			}
			return "sharp knife"
		},
	)
}

// GiantRobot is a named robot with a weapon, legs and arms.
type GiantRobot struct {
	ID     uuid.UUID
	Name   string
	Weapon Weapon
	Legs   Legs
	Arms   Arms
}

var errNoColor = errors.New("no color")

// New assembles a GiantRobot under a fresh random ID. Every part must be
// present: a robot without a weapon or with unpainted limbs is rejected.
func New(name string, weapon Weapon, legs Legs, arms Arms) (GiantRobot, error) {
	switch {
	case name == "":
		return GiantRobot{}, invalid("name", errors.New("blank"))
	case weapon == nil:
		return GiantRobot{}, invalid("weapon", errors.New("missing"))
	case legs.Color == nil:
		return GiantRobot{}, invalid("legs", errNoColor)
	case arms.Color == nil:
		return GiantRobot{}, invalid("arms", errNoColor)
	}
	return GiantRobot{
		ID:     uuid.New(),
		Name:   name,
		Weapon: weapon,
		Legs:   legs,
		Arms:   arms,
	}, nil
}

func invalid(field string, reason error) error {
	return &adtfn.ConstructionError{Sum: "GiantRobot", Variant: "GiantRobot", Field: field, Reason: reason}
}

// CanFight reports whether r is armed: a rifle needs ammunition, a knife
// needs an edge.
func CanFight(r GiantRobot) (bool, error) {
	return MatchWeapon(r.Weapon,
		func(rifle Rifle) bool { return rifle.Ammo > 0 },
		func(knife Knife) bool { return !knife.IsBlunt },
	)
}

func (r GiantRobot) String() string {
	w, err := DescribeWeapon(r.Weapon)
	if err != nil {
		w = "unarmed"
	}
	return fmt.Sprintf("%s (%s) wielding a %s", r.Name, r.ID, w)
}
