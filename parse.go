package modint

import "fmt"

// FromString parses s as an unsigned integer written in the given radix,
// 2 ≤ radix ≤ 36, with digits 0-9 then a-z (case-insensitive). The result
// carries the unset modulus: combine it with a fixed-modulus value before
// doing modular arithmetic with it.
func FromString(s string, radix uint32) (ModInt, error) {
	if radix < 2 || radix > 36 {
		return ModInt{}, fmt.Errorf("radix %d out of range [2, 36]", radix)
	}
	if s == "" {
		return ModInt{}, fmt.Errorf("empty digit string")
	}
	var n int64
	for _, r := range s {
		var d uint32
		switch {
		case r >= '0' && r <= '9':
			d = uint32(r - '0')
		case r >= 'a' && r <= 'z':
			d = uint32(r-'a') + 10
		case r >= 'A' && r <= 'Z':
			d = uint32(r-'A') + 10
		default:
			return ModInt{}, fmt.Errorf("invalid digit %q in base %d", r, radix)
		}
		if d >= radix {
			return ModInt{}, fmt.Errorf("invalid digit %q in base %d", r, radix)
		}
		n = n*int64(radix) + int64(d)
	}
	return ModInt{n: n}, nil
}
