package bitbuf

// Concat appends other's entire byte content after this buffer's bytes.
// Neither buffer's cursors move; the appended bytes become part of this
// buffer's readable region.
func (b *Buffer) Concat(other *Buffer) {
	b.data = append(b.data, other.data...)
}

// WriteBuffer copies other's written bits, as reported by its Bits(),
// one at a time through other's read cursor. The copy therefore
// advances other's read position.
func (b *Buffer) WriteBuffer(other *Buffer) {
	n := other.Bits()
	for i := 0; i < n; i++ {
		b.writeBit(other.ReadBit())
	}
}

// ReadBytes reads the next n bytes into a fresh buffer.
func (b *Buffer) ReadBytes(n int) *Buffer {
	out := New()
	for i := 0; i < n; i++ {
		out.putByte(b.getByte())
	}
	return out
}

// ReadBitsBytes bulk-copies the next numBits from the read cursor into
// a byte slice, MSB-first. Unlike the scalar reads it checks bounds:
// when fewer than numBits remain in the buffer it returns nil, so
// callers can treat short data as a normal negative outcome. When
// rightAlign is set and the final byte holds n < 8 bits, that byte is
// shifted right by 8-n so its bits sit in the low positions.
func (b *Buffer) ReadBitsBytes(numBits int, rightAlign bool) []byte {
	if numBits <= 0 {
		return nil
	}
	remaining := len(b.data)*8 - b.r.offset()
	if numBits > remaining {
		return nil
	}

	out := make([]byte, (numBits+7)/8)
	for i := 0; i < numBits; i++ {
		if b.ReadBit() == 1 {
			out[i/8] |= bitMask[7-i%8]
		}
	}
	if rem := numBits % 8; rem != 0 && rightAlign {
		out[len(out)-1] >>= uint(8 - rem)
	}
	return out
}
