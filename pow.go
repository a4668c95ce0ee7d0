package modint

// Exp returns z^e (mod m) by square-and-multiply. Accumulator and base stay
// reduced mod m at every step, so intermediates fit in a uint64 for any
// 32-bit modulus. Exp(0) is 1. It panics when the modulus is unset.
func (z ModInt) Exp(e uint64) ModInt {
	m32 := z.Mod()
	m := uint64(m32)
	res := uint64(1) % m
	base := uint64(z.n)
	for e > 0 {
		if e&1 != 0 {
			res = res * base % m
		}
		base = base * base % m
		e >>= 1
	}
	return New(int64(res), m32)
}
