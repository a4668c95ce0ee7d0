package modint

import "fmt"

// Number is the capability set ModInt exposes to generic numeric code:
// the ring operators, exponentiation, identity tests, and the explicit
// conversion out of the modular domain.
//
// Generic algorithms should seed folds with Zero/One and let the first
// fixed-modulus operand decide the domain.
type Number[E any] interface {
	Add(E) E
	Sub(E) E
	Mul(E) E
	Div(E) E
	Rem(E) E
	Exp(e uint64) E
	IsZero() bool
	IsOne() bool
	Uint64() uint64
	fmt.Stringer
}

var _ Number[ModInt] = ModInt{}
