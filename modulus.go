package modint

import (
	"fmt"
)

type modulusKind uint8

const (
	// modulusUnset marks a value that has not committed to an arithmetic
	// domain yet. Only the identity elements and freshly parsed values
	// carry it.
	modulusUnset modulusKind = iota
	modulusFixed
)

// Modulus tags a ModInt with the arithmetic domain (Z/mZ) it lives in.
//
// A Modulus is either Fixed, carrying a concrete nonzero m, or Unset, a
// neutral placeholder used only for identity seeding before a concrete m is
// known. Two Fixed moduli are the same domain iff their m are equal.
type Modulus struct {
	kind modulusKind
	m    uint32
}

// FixedModulus returns the modulus tag for the domain Z/mZ.
// It panics if m == 0.
func FixedModulus(m uint32) Modulus {
	if m == 0 {
		panic("modulus must be nonzero")
	}
	return Modulus{kind: modulusFixed, m: m}
}

// UnsetModulus returns the neutral modulus tag.
func UnsetModulus() Modulus {
	return Modulus{}
}

// Get returns the concrete modulus and true when the tag is Fixed.
func (mod Modulus) Get() (uint32, bool) {
	if mod.kind != modulusFixed {
		return 0, false
	}
	return mod.m, true
}

// IsFixed reports whether the tag carries a concrete modulus.
func (mod Modulus) IsFixed() bool {
	return mod.kind == modulusFixed
}

func (mod Modulus) String() string {
	if mod.kind != modulusFixed {
		return "unset"
	}
	return fmt.Sprintf("%d", mod.m)
}

// sharedModulus resolves the domain two operands combine under.
//
// Fixed/Fixed agree iff equal; an Unset operand adopts the other side's
// modulus; Unset/Unset has no concrete domain to adopt and is rejected.
func sharedModulus(a, b Modulus) (uint32, bool) {
	switch {
	case a.kind == modulusFixed && b.kind == modulusFixed:
		if a.m != b.m {
			return 0, false
		}
		return a.m, true
	case a.kind == modulusFixed:
		return a.m, true
	case b.kind == modulusFixed:
		return b.m, true
	default:
		return 0, false
	}
}
