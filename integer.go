package bitbuf

// putByte and getByte are the byte-granular building blocks of every
// multi-byte encoding. Bytes are emitted MSB-first bit-wise, while
// multi-byte values compose bytes in little-endian order.

func (b *Buffer) putByte(v byte) {
	b.WriteBits(uint64(v), 8)
}

func (b *Buffer) getByte() byte {
	return byte(b.ReadBits(8))
}

// WriteByte writes a single byte at the write cursor. The returned
// error is always nil; the signature matches io.ByteWriter.
func (b *Buffer) WriteByte(v byte) error {
	b.putByte(v)
	return nil
}

// ReadByte reads a single byte at the read cursor. The returned error
// is always nil; the signature matches io.ByteReader.
func (b *Buffer) ReadByte() (byte, error) {
	return b.getByte(), nil
}

// WriteBool writes v as a full byte: 0x01 for true, 0x00 for false.
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.putByte(1)
	} else {
		b.putByte(0)
	}
}

// ReadBool reads a full byte and interprets any non-zero value as true.
func (b *Buffer) ReadBool() bool {
	return b.getByte() != 0
}

// WriteChar writes an 8-bit character.
func (b *Buffer) WriteChar(c byte) {
	b.putByte(c)
}

// ReadChar reads an 8-bit character.
func (b *Buffer) ReadChar() byte {
	return b.getByte()
}

// WriteInt8 writes a sign bit followed by the 7-bit absolute magnitude.
// The magnitude of -128 does not fit in 7 bits and truncates to zero.
func (b *Buffer) WriteInt8(v int8) {
	if v < 0 {
		b.writeBit(1)
		b.WriteBits(uint64(uint8(-int16(v))&0x7F), 7)
	} else {
		b.writeBit(0)
		b.WriteBits(uint64(v)&0x7F, 7)
	}
}

// ReadInt8 reads a sign bit followed by the 7-bit absolute magnitude.
func (b *Buffer) ReadInt8() int8 {
	sign := b.ReadBit()
	mag := int8(b.ReadBits(7))
	if sign == 1 {
		return -mag
	}
	return mag
}

// WriteUint16 writes v as two bytes in little-endian order.
func (b *Buffer) WriteUint16(v uint16) {
	b.putByte(byte(v))
	b.putByte(byte(v >> 8))
}

// ReadUint16 reads two little-endian bytes.
func (b *Buffer) ReadUint16() uint16 {
	lo := uint16(b.getByte())
	hi := uint16(b.getByte())
	return lo | hi<<8
}

// WriteInt16 writes the unsigned low byte followed by the high byte in
// the signed-byte layout (sign bit plus 7-bit magnitude).
func (b *Buffer) WriteInt16(v int16) {
	b.putByte(byte(v))
	b.WriteInt8(int8(v >> 8))
}

// ReadInt16 reads the unsigned low byte and the signed high byte.
func (b *Buffer) ReadInt16() int16 {
	lo := int16(b.getByte())
	hi := int16(b.ReadInt8())
	return hi<<8 + lo
}

// WriteUint32 writes v as four bytes in little-endian order.
func (b *Buffer) WriteUint32(v uint32) {
	b.putByte(byte(v))
	b.putByte(byte(v >> 8))
	b.putByte(byte(v >> 16))
	b.putByte(byte(v >> 24))
}

// ReadUint32 reads four little-endian bytes.
func (b *Buffer) ReadUint32() uint32 {
	var v uint32
	for i := 0; i < 4; i++ {
		v |= uint32(b.getByte()) << uint(8*i)
	}
	return v
}

// WriteInt32 writes the three unsigned low bytes followed by the top
// byte in the signed-byte layout, mirroring the 16-bit layering.
func (b *Buffer) WriteInt32(v int32) {
	b.putByte(byte(v))
	b.putByte(byte(v >> 8))
	b.putByte(byte(v >> 16))
	b.WriteInt8(int8(v >> 24))
}

// ReadInt32 is not implemented; it fails unconditionally with
// ErrSignedReadUnsupported rather than returning a plausible-looking
// wrong value.
func (b *Buffer) ReadInt32() (int32, error) {
	return 0, ErrSignedReadUnsupported
}

// WriteUint64 splits v into two 32-bit halves and writes the bottom
// half first, so the low 4 bytes of the 8-byte output hold the low half
// in little-endian order.
func (b *Buffer) WriteUint64(v uint64) {
	b.WriteUint32(uint32(v))
	b.WriteUint32(uint32(v >> 32))
}

// ReadUint64 reads the bottom and top 32-bit halves written by
// WriteUint64.
func (b *Buffer) ReadUint64() uint64 {
	bottom := uint64(b.ReadUint32())
	top := uint64(b.ReadUint32())
	return top<<32 | bottom
}
