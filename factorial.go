package modint

// FallingFactorial returns z · (z-1) · … · (z-k+1) (mod m), the product of k
// consecutive decreasing factors. k = 0 yields the multiplicative identity.
func (z ModInt) FallingFactorial(k uint64) ModInt {
	res := One()
	c := z
	for i := uint64(0); i < k; i++ {
		res = res.Mul(c)
		c = c.SubInt64(1)
	}
	return res
}

// RisingFactorial returns z · (z+1) · … · (z+k-1) (mod m), the product of k
// consecutive increasing factors. k = 0 yields the multiplicative identity.
func (z ModInt) RisingFactorial(k uint64) ModInt {
	res := One()
	c := z
	for i := uint64(0); i < k; i++ {
		res = res.Mul(c)
		c = c.AddInt64(1)
	}
	return res
}
