package domain

import (
	"fmt"
	"strings"
)

// Family groups units that can be converted among each other.
type Family int

const (
	FamilyLength Family = iota
	FamilyMass
	FamilyTemperature
)

func (f Family) String() string {
	switch f {
	case FamilyLength:
		return "length"
	case FamilyMass:
		return "mass"
	case FamilyTemperature:
		return "temperature"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// ParseFamily accepts the String form of a family, case-insensitively.
// "distance" and "weight" are accepted as synonyms.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "length", "distance":
		return FamilyLength, nil
	case "mass", "weight":
		return FamilyMass, nil
	case "temperature":
		return FamilyTemperature, nil
	default:
		return 0, fmt.Errorf("unknown unit family %q (expected length|mass|temperature)", s)
	}
}

// Unit is an immutable unit definition.
//
// Scale is the factor relative to the family base unit (meter, gram).
// Temperature units leave it at zero: they convert by formula.
type Unit struct {
	Symbol   string
	Family   Family
	Singular string
	Plural   string
	Scale    float64
	Aliases  []string
}

// Name picks the singular form when v is exactly one.
func (u Unit) Name(v float64) string {
	if v == 1.0 {
		return u.Singular
	}
	return u.Plural
}

// Same reports whether both definitions describe the same unit.
func (u Unit) Same(o Unit) bool {
	return u.Symbol == o.Symbol && u.Family == o.Family
}
