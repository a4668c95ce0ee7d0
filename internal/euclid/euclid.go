// Package euclid implements the extended Euclidean algorithm on int64.
package euclid

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x, y
// satisfying a*x + b*y = g.
//
// For non-negative inputs g is non-negative; x and y may be negative.
func ExtendedGCD(a, b int64) (g, x, y int64) {
	x0, x1 := int64(1), int64(0)
	y0, y1 := int64(0), int64(1)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	return a, x0, y0
}
