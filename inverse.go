package modint

import (
	"github.com/consensys/modint/internal/euclid"
	"github.com/consensys/modint/logger"
)

// Inverse returns the residue r such that r * z ≡ 1 (mod m), computed from
// the Bézout coefficient of the extended Euclidean algorithm. It panics when
// the modulus is unset.
//
// The residue must be coprime to the modulus. When it is not, no inverse
// exists and the returned value is meaningless; this precondition is the
// caller's obligation and is not turned into an error here. A warning is
// logged so the misuse is at least visible.
func (z ModInt) Inverse() int64 {
	m := z.Mod()
	g, x, _ := euclid.ExtendedGCD(z.n, int64(m))
	if g != 1 {
		log := logger.Logger()
		log.Warn().
			Int64("residue", z.n).
			Uint32("modulus", m).
			Int64("gcd", g).
			Msg("no modular inverse exists; result is meaningless")
	}
	return compensatedRem(x, m)
}
