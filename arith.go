package modint

// Binary operators resolve the shared modulus first and panic on a mismatch:
// mixing domains is a programmer error with no meaningful fallback.
//
// Multiplication widens to uint64; both residues are below a 32-bit modulus,
// so the product fits without overflow.

// Add returns z + x (mod m).
func (z ModInt) Add(x ModInt) ModInt {
	m, ok := sharedModulus(z.mod, x.mod)
	if !ok {
		panic("modulo mismatch")
	}
	// both operands are already < m, one correction suffices
	r := z.n + x.n
	if r >= int64(m) {
		r -= int64(m)
	}
	res := ModInt{n: r, mod: FixedModulus(m)}
	res.assertReduced()
	return res
}

// Sub returns z - x (mod m).
func (z ModInt) Sub(x ModInt) ModInt {
	m, ok := sharedModulus(z.mod, x.mod)
	if !ok {
		panic("modulo mismatch")
	}
	res := ModInt{n: compensatedRem(z.n-x.n, m), mod: FixedModulus(m)}
	res.assertReduced()
	return res
}

// Mul returns z * x (mod m).
func (z ModInt) Mul(x ModInt) ModInt {
	m, ok := sharedModulus(z.mod, x.mod)
	if !ok {
		panic("modulo mismatch")
	}
	r := uint64(z.n) * uint64(x.n) % uint64(m)
	res := ModInt{n: int64(r), mod: FixedModulus(m)}
	res.assertReduced()
	return res
}

// Div returns z * x⁻¹ (mod m).
//
// The divisor must be coprime to the modulus; this is not checked, and a
// non-invertible divisor yields a residue that does not actually divide.
// See Inverse.
func (z ModInt) Div(x ModInt) ModInt {
	m, ok := sharedModulus(z.mod, x.mod)
	if !ok {
		panic("modulo mismatch")
	}
	inv := x.Inverse()
	r := uint64(z.n) * uint64(inv) % uint64(m)
	res := ModInt{n: int64(r), mod: FixedModulus(m)}
	res.assertReduced()
	return res
}

// Rem returns the truncated remainder of the residues, z.n % x.n, tagged with
// the shared modulus. Both residues are canonical (non-negative) so the
// result needs no correction.
func (z ModInt) Rem(x ModInt) ModInt {
	m, ok := sharedModulus(z.mod, x.mod)
	if !ok {
		panic("modulo mismatch")
	}
	return ModInt{n: z.n % x.n, mod: FixedModulus(m)}
}

// AddInt64 returns z + k (mod m), reducing k into z's domain first.
func (z ModInt) AddInt64(k int64) ModInt {
	return z.Add(New(k, z.Mod()))
}

// SubInt64 returns z - k (mod m), reducing k into z's domain first.
func (z ModInt) SubInt64(k int64) ModInt {
	return z.Sub(New(k, z.Mod()))
}

// MulInt64 returns z * k (mod m), reducing k into z's domain first.
func (z ModInt) MulInt64(k int64) ModInt {
	return z.Mul(New(k, z.Mod()))
}

// DivInt64 returns z / k (mod m), reducing k into z's domain first.
func (z ModInt) DivInt64(k int64) ModInt {
	return z.Div(New(k, z.Mod()))
}

// AddAssign sets *z to z + x.
func (z *ModInt) AddAssign(x ModInt) {
	*z = z.Add(x)
}

// SubAssign sets *z to z - x.
func (z *ModInt) SubAssign(x ModInt) {
	*z = z.Sub(x)
}

// MulAssign sets *z to z * x.
func (z *ModInt) MulAssign(x ModInt) {
	*z = z.Mul(x)
}

// DivAssign sets *z to z / x.
func (z *ModInt) DivAssign(x ModInt) {
	*z = z.Div(x)
}

// RemAssign sets *z to z % x.
func (z *ModInt) RemAssign(x ModInt) {
	*z = z.Rem(x)
}
