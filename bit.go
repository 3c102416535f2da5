package bitbuf

// WriteBit writes a single bit at the write cursor. The input must be a
// strict bit value: anything other than 0 or 1 fails with ErrInvalidBit
// and leaves the buffer unmodified.
func (b *Buffer) WriteBit(bit uint8) error {
	if bit > 1 {
		return ErrInvalidBit
	}
	b.writeBit(bit)
	return nil
}

// writeBit is the unchecked write path every higher-level operation is
// built on. When the cursor points at bit 7 of a byte that does not
// exist yet, the buffer is extended by exactly one zero byte.
func (b *Buffer) writeBit(bit uint8) {
	if b.w.bitIdx == 7 && b.w.byteIdx >= len(b.data) {
		b.data = append(b.data, 0)
	}
	if bit == 1 {
		b.data[b.w.byteIdx] |= bitMask[b.w.bitIdx]
	}
	b.w.advance()
}

// ReadBit reads a single bit at the read cursor. Reading past the
// written region does not fail: the buffer is transparently extended
// with a zero byte through the writer's growth path, and the zero bit
// is returned.
func (b *Buffer) ReadBit() uint8 {
	if b.r.byteIdx >= len(b.data) {
		saved := b.w
		b.w = cursor{byteIdx: b.r.byteIdx, bitIdx: 7}
		b.writeBit(0)
		b.w = saved
	}
	bit := (b.data[b.r.byteIdx] & bitMask[b.r.bitIdx]) >> uint8(b.r.bitIdx)
	b.r.advance()
	return bit
}

// WriteBits writes the numBits least significant bits of value, most
// significant bit first.
func (b *Buffer) WriteBits(value uint64, numBits int) {
	for i := numBits - 1; i >= 0; i-- {
		b.writeBit(uint8((value >> uint(i)) & 1))
	}
}

// ReadBits reads numBits MSB-first and accumulates them into an
// unsigned integer.
func (b *Buffer) ReadBits(numBits int) uint64 {
	var value uint64
	for i := 0; i < numBits; i++ {
		value = value<<1 | uint64(b.ReadBit())
	}
	return value
}

// ReadBitsReversed reads numBits from the same bit source as ReadBits
// but accumulates them least significant bit first, yielding the
// bit-reversed interpretation of the same bit sequence.
func (b *Buffer) ReadBitsReversed(numBits int) uint64 {
	var value uint64
	for i := 0; i < numBits; i++ {
		value |= uint64(b.ReadBit()) << uint(i)
	}
	return value
}

// AlignWrite snaps the write cursor to the start of the next byte. Any
// remaining bits of the current byte are skipped, not written.
func (b *Buffer) AlignWrite() {
	b.w.align()
}

// AlignRead snaps the read cursor to the start of the next byte. Any
// remaining bits of the current byte are discarded without being
// consumed as data.
func (b *Buffer) AlignRead() {
	b.r.align()
}
