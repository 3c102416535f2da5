package bitbuf

import (
	"fmt"
	"strings"
)

// BinaryString renders the buffer as space-separated 8-bit groups with
// the cursor positions marked inline: "w>" precedes the next bit to be
// written and "r>" the next bit to be read. Diagnostic only.
func (b *Buffer) BinaryString() string {
	var sb strings.Builder
	for i, octet := range b.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		for bit := int8(7); bit >= 0; bit-- {
			if b.w.byteIdx == i && b.w.bitIdx == bit {
				sb.WriteString("w>")
			}
			if b.r.byteIdx == i && b.r.bitIdx == bit {
				sb.WriteString("r>")
			}
			if octet&bitMask[bit] != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	// A cursor that has run off the written region sits past the last
	// group.
	if b.w.byteIdx >= len(b.data) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("w>")
	}
	if b.r.byteIdx >= len(b.data) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("r>")
	}
	return sb.String()
}

// HexString renders the buffer as space-separated uppercase hex bytes.
// Diagnostic only.
func (b *Buffer) HexString() string {
	var sb strings.Builder
	for i, octet := range b.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", octet)
	}
	return sb.String()
}
