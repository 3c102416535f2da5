// Package bitbuf implements a bit-addressable buffer codec: a growable
// byte buffer with independent read and write bit-cursors, following the
// MSB pattern, where most-significant bits are written/read first within
// each byte.
//
// The buffer grows lazily on write and zero-fills on overread; it is the
// foundation for wire formats whose fields are not byte-aligned.
package bitbuf

import (
	"errors"
	"io"

	"github.com/spacemeshos/bitbuf/config"
)

var (
	ErrInvalidBit            = errors.New("bit must be 0 or 1")
	ErrSignedReadUnsupported = errors.New("reading a signed 32-bit value is not supported")
)

// bitMask[i] selects bit i of a byte, where bit 7 is the most significant.
var bitMask = [8]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}

// cursor addresses a single bit as a (byte index, bit index) pair.
// The bit index runs from 7 down to 0; after bit 0 the cursor rolls
// over to bit 7 of the next byte.
type cursor struct {
	byteIdx int
	bitIdx  int8
}

func (c *cursor) advance() {
	c.bitIdx--
	if c.bitIdx < 0 {
		c.bitIdx = 7
		c.byteIdx++
	}
}

// align snaps the cursor to bit 7 of the next byte, discarding any
// partially consumed byte.
func (c *cursor) align() {
	if c.bitIdx != 7 {
		c.bitIdx = 7
		c.byteIdx++
	}
}

// offset returns the number of bits the cursor has passed over.
func (c *cursor) offset() int {
	return c.byteIdx*8 + 7 - int(c.bitIdx)
}

// Buffer is a growable byte buffer with two independent bit-cursors
// over the same storage: one for writing and one for reading. The two
// cursors are separate viewports, not a single append-only log; a
// buffer pre-loaded from existing bytes starts both cursors at the
// first bit, and writes merge into the existing bytes rather than
// append after them.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
	w    cursor
	r    cursor
	cfg  *config.Config
}

// New returns a new empty Buffer with the default configuration.
func New() *Buffer {
	b, _ := NewWithConfig(config.DefaultConfig())
	return b
}

// NewWithConfig returns a new empty Buffer using cfg for the string
// field widths and the initial capacity.
func NewWithConfig(cfg *config.Config) (*Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Buffer{
		data: make([]byte, 0, cfg.InitialCapacity),
		w:    cursor{bitIdx: 7},
		r:    cursor{bitIdx: 7},
		cfg:  cfg,
	}, nil
}

// NewFromBytes returns a new Buffer pre-loaded with a copy of data.
// Both cursors start at the first bit of the first byte.
func NewFromBytes(data []byte) *Buffer {
	b := New()
	b.data = append(b.data, data...)
	return b
}

// Len returns the number of bytes currently backing the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bits returns the total number of bits committed by the write cursor.
func (b *Buffer) Bits() int {
	return b.w.byteIdx*8 + (8 - int(b.w.bitIdx)) - 1
}

// AllRead reports whether the read cursor has consumed everything the
// write cursor has produced.
func (b *Buffer) AllRead() bool {
	return b.r.byteIdx*8+int(b.r.bitIdx) >= len(b.data)*8-1
}

// Bytes returns a copy of the underlying byte buffer.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// ByteAt returns the byte at the given offset, or zero if the offset is
// out of range.
func (b *Buffer) ByteAt(offset int) byte {
	if offset < 0 || offset >= len(b.data) {
		return 0
	}
	return b.data[offset]
}

// SetByteAt stores v at the given offset, growing the buffer and
// zero-filling the gap if the offset lies past the current end.
func (b *Buffer) SetByteAt(offset int, v byte) {
	if offset < 0 {
		return
	}
	for offset >= len(b.data) {
		b.data = append(b.data, 0)
	}
	b.data[offset] = v
}

// ResetRead rewinds the read cursor to the first bit. The data is left
// untouched.
func (b *Buffer) ResetRead() {
	b.r = cursor{bitIdx: 7}
}

// ResetWrite rewinds the write cursor to the first bit. The data is
// left untouched; subsequent writes merge into the existing bytes.
func (b *Buffer) ResetWrite() {
	b.w = cursor{bitIdx: 7}
}

// WriteTo writes the buffer's bytes to w, implementing io.WriterTo.
// Persisting the buffer to storage is a caller concern; see the
// persistence package for a file-backed sink.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	return int64(n), err
}

// State is a serializable snapshot of a buffer: its bytes plus the
// positions of both cursors.
type State struct {
	Data      []byte
	WriteByte uint32
	WriteBit  uint32
	ReadByte  uint32
	ReadBit   uint32
}

// State captures the buffer and both cursor positions.
func (b *Buffer) State() *State {
	return &State{
		Data:      b.Bytes(),
		WriteByte: uint32(b.w.byteIdx),
		WriteBit:  uint32(b.w.bitIdx),
		ReadByte:  uint32(b.r.byteIdx),
		ReadBit:   uint32(b.r.bitIdx),
	}
}

// FromState reconstructs a buffer from a snapshot taken with State.
func FromState(s *State) *Buffer {
	b := NewFromBytes(s.Data)
	b.w = cursor{byteIdx: int(s.WriteByte), bitIdx: int8(s.WriteBit)}
	b.r = cursor{byteIdx: int(s.ReadByte), bitIdx: int8(s.ReadBit)}
	return b
}
