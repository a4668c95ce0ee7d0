package modint

import (
	"fmt"
	"math/big"
	"strconv"
)

// FromInterface reduces an arbitrary integer-ish input into the domain Z/mZ.
//
// input must be a primitive integer (intXX, uintXX), a string accepted by
// strconv.ParseInt with base 0, a big.Int (or pointer) fitting in an int64,
// or a ModInt. Inputs outside the signed 64-bit range and unsupported types
// are programmer errors and panic.
func FromInterface(input interface{}, m uint32) ModInt {
	var n int64

	switch v := input.(type) {
	case ModInt:
		n = v.n
	case big.Int:
		if !v.IsInt64() {
			panic("big.Int input does not fit in int64")
		}
		n = v.Int64()
	case *big.Int:
		if !v.IsInt64() {
			panic("big.Int input does not fit in int64")
		}
		n = v.Int64()
	case uint8:
		n = int64(v)
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint64:
		if v > 1<<63-1 {
			panic("uint64 input does not fit in int64")
		}
		n = int64(v)
	case uint:
		if uint64(v) > 1<<63-1 {
			panic("uint input does not fit in int64")
		}
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case int:
		n = int64(v)
	case string:
		var err error
		n, err = strconv.ParseInt(v, 0, 64)
		if err != nil {
			panic("unable to parse int64 from string " + v)
		}
	default:
		panic(fmt.Sprintf("unsupported type %T", v))
	}

	return New(n, m)
}
