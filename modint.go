package modint

import (
	"cmp"
	"fmt"

	"github.com/consensys/modint/debug"
)

// ModInt is an integer reduced modulo a 32-bit modulus. The residue is always
// kept in the canonical range [0, m), so arithmetic never wraps or goes
// negative.
//
// A ModInt is a plain value: every operation returns a new instance and no
// operation mutates its receiver, so instances are safe to copy across
// goroutines. There is no implicit conversion back to a primitive integer;
// use Int64 or Uint64 to read the residue out explicitly.
type ModInt struct {
	n   int64
	mod Modulus
}

// compensatedRem reduces n into [0, m). The truncating % can yield a negative
// remainder; a single +m correction is enough since |n % m| < m.
func compensatedRem(n int64, m uint32) int64 {
	r := n % int64(m)
	if r < 0 {
		r += int64(m)
	}
	return r
}

// New returns n reduced into the domain Z/mZ.
// It panics if m == 0.
func New(n int64, m uint32) ModInt {
	mod := FixedModulus(m)
	z := ModInt{n: compensatedRem(n, m), mod: mod}
	z.assertReduced()
	return z
}

// Zero returns the additive identity, tagged with the unset modulus. It is
// meant as a seed for generic folds; combining it with any fixed-modulus
// value adopts that value's modulus.
func Zero() ModInt {
	return ModInt{n: 0}
}

// One returns the multiplicative identity, tagged with the unset modulus.
// See Zero for the seeding semantics.
func One() ModInt {
	return ModInt{n: 1}
}

// Int64 returns the residue.
func (z ModInt) Int64() int64 {
	return z.n
}

// Uint64 returns the residue. This is the explicit escape hatch out of the
// modular domain; ModInt deliberately offers no implicit numeric conversion.
func (z ModInt) Uint64() uint64 {
	return uint64(z.n)
}

// Mod returns the concrete modulus. It panics when the modulus is unset.
func (z ModInt) Mod() uint32 {
	m, ok := z.mod.Get()
	if !ok {
		panic("modulus is unset")
	}
	return m
}

// Modulus returns the modulus tag.
func (z ModInt) Modulus() Modulus {
	return z.mod
}

// IsZero reports whether the residue is 0, ignoring the modulus tag.
func (z ModInt) IsZero() bool {
	return z.n == 0
}

// IsOne reports whether the residue is 1, ignoring the modulus tag.
func (z ModInt) IsOne() bool {
	return z.n == 1
}

// Equal reports whether z and x hold the same residue. Comparing values from
// different domains is a programmer error; it panics on a modulo mismatch.
func (z ModInt) Equal(x ModInt) bool {
	if _, ok := sharedModulus(z.mod, x.mod); !ok {
		panic("modulo mismatch")
	}
	return z.n == x.n
}

// PartialCmp compares residues, returning cmp.Compare semantics and true when
// the operands share a domain. Across mismatched moduli ordering is
// meaningless; it returns (0, false) instead of panicking so generic code can
// probe comparability defensively.
func (z ModInt) PartialCmp(x ModInt) (int, bool) {
	if _, ok := sharedModulus(z.mod, x.mod); !ok {
		return 0, false
	}
	return cmp.Compare(z.n, x.n), true
}

func (z ModInt) String() string {
	if m, ok := z.mod.Get(); ok {
		return fmt.Sprintf("%d mod %d", z.n, m)
	}
	return fmt.Sprintf("%d", z.n)
}

// assertReduced checks the residue invariant under the debug build tag.
func (z ModInt) assertReduced() {
	if debug.Debug {
		if m, ok := z.mod.Get(); ok && (z.n < 0 || z.n >= int64(m)) {
			panic(fmt.Sprintf("residue %d out of range [0, %d)", z.n, m))
		}
	}
}
