package physics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned when a craft tag does not resolve to a variant
var ErrUnknownVariant = errors.New("unknown craft variant")

// Variant is the immutable flight profile of a craft
// Velocities are world units per tick, positive y points down
type Variant struct {
	Name            string
	Gravity         float64
	LiftForce       float64 // Negative: upward
	MaxLiftVelocity float64 // Magnitude of the upward velocity cap
	MaxFallVelocity float64
	Width           float64
	Height          float64
	VerticalOffset  float64 // Added to Height for the floor clamp only
}

// Flight profiles - pre-defined package values, copied into each Craft

// Trainer is a gentle practice profile with a soft climb
var Trainer = Variant{
	Name:            "trainer",
	Gravity:         0.2,
	LiftForce:       -2.5,
	MaxLiftVelocity: 4,
	MaxFallVelocity: 6,
	Width:           50,
	Height:          20,
}

// Scout climbs hard on a light frame; the stock default
var Scout = Variant{
	Name:            "scout",
	Gravity:         0.2,
	LiftForce:       -4,
	MaxLiftVelocity: 4,
	MaxFallVelocity: 6,
	Width:           50,
	Height:          20,
}

// Tanker is large and heavy but reaches the highest climb rate
var Tanker = Variant{
	Name:            "tanker",
	Gravity:         0.35,
	LiftForce:       -3,
	MaxLiftVelocity: 7,
	MaxFallVelocity: 6,
	Width:           70,
	Height:          30,
	VerticalOffset:  -6,
}

// Heavy falls fast and climbs slowly
var Heavy = Variant{
	Name:            "heavy",
	Gravity:         0.25,
	LiftForce:       -3,
	MaxLiftVelocity: 3,
	MaxFallVelocity: 7,
	Width:           60,
	Height:          25,
}

// Builtin lists the stock variants in selection order
var Builtin = []Variant{Scout, Tanker, Heavy, Trainer}

// Lookup resolves a tag (case-insensitive) against the stock variants followed by extra
func Lookup(tag string, extra ...Variant) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(tag))
	for _, v := range Builtin {
		if v.Name == name {
			return v, nil
		}
	}
	for _, v := range extra {
		if strings.ToLower(v.Name) == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, tag)
}

// Validate reports whether the variant can fly
func (v Variant) Validate() error {
	switch {
	case v.Name == "":
		return errors.New("variant name is empty")
	case v.Width <= 0 || v.Height <= 0:
		return fmt.Errorf("variant %q: size must be positive", v.Name)
	case v.MaxLiftVelocity < 0 || v.MaxFallVelocity <= 0:
		return fmt.Errorf("variant %q: velocity caps must be positive", v.Name)
	}
	return nil
}

// Next returns the variant after current in the cycle formed by Builtin and extra
func Next(current string, extra ...Variant) Variant {
	all := append(append([]Variant(nil), Builtin...), extra...)
	for i, v := range all {
		if strings.EqualFold(v.Name, current) {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
