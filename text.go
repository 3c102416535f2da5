package bitbuf

import "strings"

// WriteString writes s as a fixed-width ASCII field using the
// configured default width, zero-padding past the end of s.
func (b *Buffer) WriteString(s string) {
	b.WriteStringN(s, int(b.cfg.StringSize))
}

// WriteStringN writes s as a fixed-width ASCII field of size bytes,
// one byte per character, zero-padded past the end of s. A string
// longer than the field is truncated.
func (b *Buffer) WriteStringN(s string, size int) {
	for i := 0; i < size; i++ {
		var c byte
		if i < len(s) {
			c = s[i]
		}
		b.putByte(c)
	}
}

// ReadString reads a fixed-width ASCII field of the configured default
// width.
func (b *Buffer) ReadString() string {
	return b.ReadStringN(int(b.cfg.StringSize))
}

// ReadStringN reads exactly size bytes and maps each to a character.
// Padding bytes are part of the result; trimming is a caller concern.
func (b *Buffer) ReadStringN(size int) string {
	out := make([]byte, size)
	for i := range out {
		out[i] = b.getByte()
	}
	return string(out)
}

// WriteWString writes s as a fixed-width wide field using the
// configured default width.
func (b *Buffer) WriteWString(s string) {
	b.WriteWStringN(s, int(b.cfg.WStringSize))
}

// WriteWStringN writes s as a fixed-width field of size 16-bit units,
// each character followed by an explicit zero byte. This is not UTF-16;
// it is the character byte widened to two bytes.
func (b *Buffer) WriteWStringN(s string, size int) {
	for i := 0; i < size; i++ {
		var c byte
		if i < len(s) {
			c = s[i]
		}
		b.putByte(c)
		b.putByte(0)
	}
}

// ReadWString reads a fixed-width wide field of the configured default
// width.
func (b *Buffer) ReadWString() string {
	return b.ReadWStringN(int(b.cfg.WStringSize))
}

// ReadWStringN reads size 16-bit units. Translation to output stops at
// the first zero unit, but the full field width is consumed from the
// stream regardless.
func (b *Buffer) ReadWStringN(size int) string {
	var sb strings.Builder
	terminated := false
	for i := 0; i < size; i++ {
		lo := b.getByte()
		hi := b.getByte()
		if uint16(lo)|uint16(hi)<<8 == 0 {
			terminated = true
		}
		if !terminated {
			sb.WriteByte(lo)
		}
	}
	return sb.String()
}
