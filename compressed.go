package bitbuf

// Compressed integers use flag bits to skip the leading all-zero bytes
// of a fixed-width value. Scanning from the most significant byte down,
// each zero byte costs a single 1-flag; the first non-zero byte is
// announced with a 0-flag and followed by all bytes from there down to
// byte 0, little-endian. A value whose significant bits fit in the low
// nibble costs one more 1-flag plus 4 data bits; otherwise a 0-flag
// plus the full low byte. Small magnitudes therefore encode in as few
// as size+4 bits while full-width values pay size-1 flag bits of
// overhead.

func (b *Buffer) writeCompressed(value uint64, size int) {
	for k := size - 1; k >= 1; k-- {
		if byte(value>>uint(8*k)) == 0 {
			b.writeBit(1)
			continue
		}
		b.writeBit(0)
		for i := 0; i <= k; i++ {
			b.putByte(byte(value >> uint(8*i)))
		}
		return
	}
	low := byte(value)
	if low&0xF0 == 0 {
		b.writeBit(1)
		b.WriteBits(uint64(low&0x0F), 4)
	} else {
		b.writeBit(0)
		b.putByte(low)
	}
}

func (b *Buffer) readCompressed(size int) uint64 {
	for k := size - 1; k >= 1; k-- {
		if b.ReadBit() == 1 {
			// Byte k and everything above it is zero.
			continue
		}
		var value uint64
		for i := 0; i <= k; i++ {
			value |= uint64(b.getByte()) << uint(8*i)
		}
		return value
	}
	if b.ReadBit() == 1 {
		return b.ReadBits(4)
	}
	return uint64(b.getByte())
}

// WriteCompressedUint16 writes v in the variable-length encoding over a
// 2-byte width.
func (b *Buffer) WriteCompressedUint16(v uint16) {
	b.writeCompressed(uint64(v), 2)
}

// ReadCompressedUint16 reads a value written by WriteCompressedUint16.
func (b *Buffer) ReadCompressedUint16() uint16 {
	return uint16(b.readCompressed(2))
}

// WriteCompressedUint32 writes v in the variable-length encoding over a
// 4-byte width.
func (b *Buffer) WriteCompressedUint32(v uint32) {
	b.writeCompressed(uint64(v), 4)
}

// ReadCompressedUint32 reads a value written by WriteCompressedUint32.
func (b *Buffer) ReadCompressedUint32() uint32 {
	return uint32(b.readCompressed(4))
}
