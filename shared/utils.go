package shared

import "math/bits"

// NumBits returns the number of bits required to represent val.
func NumBits(val uint64) int {
	return bits.Len64(val)
}
