package bitbuf

import "math"

// The float encoding is a 32-bit layout with a 24-bit mantissa (16+7
// explicit bits plus the implicit leading 1) and an 8-bit exponent
// biased by 127, where the exponent is split around the sign bit rather
// than stored contiguously. Emission order:
//
//	16 mantissa bits (two little-endian bytes)
//	1 exponent bit (bit 0)
//	7 mantissa bits (bits 22..16)
//	1 sign bit
//	7 exponent bits (bits 7..1)
//
// A decoded value is 2^(exponent-127) * (1 + mantissa*2^-23), negated
// when the sign bit is set. Wire compatibility depends on this exact
// interleaving.

// WriteFloat32 writes f in the split-exponent layout.
func (b *Buffer) WriteFloat32(f float32) {
	bits := math.Float32bits(f)
	b.putByte(byte(bits))
	b.putByte(byte(bits >> 8))
	b.WriteBits(uint64(bits>>23)&1, 1)
	b.WriteBits(uint64(bits>>16)&0x7F, 7)
	b.WriteBits(uint64(bits>>31)&1, 1)
	b.WriteBits(uint64(bits>>24)&0x7F, 7)
}

// ReadFloat32 reads a value written by WriteFloat32.
func (b *Buffer) ReadFloat32() float32 {
	lo := uint32(b.getByte())
	mid := uint32(b.getByte())
	expLow := uint32(b.ReadBits(1))
	mantHigh := uint32(b.ReadBits(7))
	sign := uint32(b.ReadBits(1))
	expHigh := uint32(b.ReadBits(7))

	bits := lo | mid<<8 | mantHigh<<16 | expLow<<23 | expHigh<<24 | sign<<31
	return math.Float32frombits(bits)
}
