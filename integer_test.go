package bitbuf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitbuf"
)

func TestByte(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.New()
	req.NoError(buf.WriteByte(0xAA))

	b, err := buf.ReadByte()
	req.NoError(err)
	req.Equal(byte(0xAA), b)
}

func TestBool(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.New()
	buf.WriteBool(true)
	buf.WriteBool(false)

	// Booleans occupy a full byte.
	req.Equal(2, buf.Len())
	req.Equal(byte(0x01), buf.ByteAt(0))
	req.Equal(byte(0x00), buf.ByteAt(1))

	req.True(buf.ReadBool())
	req.False(buf.ReadBool())
}

func TestChar(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.New()
	buf.WriteChar('x')
	req.Equal(byte('x'), buf.ReadChar())
}

func TestInt8(t *testing.T) {
	req := require.New(t)

	for _, v := range []int8{0, 1, -1, 42, -42, 127, -127} {
		buf := bitbuf.New()
		buf.WriteInt8(v)
		req.Equal(v, buf.ReadInt8(), "value %d", v)
	}
}

func TestInt8MinTruncates(t *testing.T) {
	req := require.New(t)

	// The magnitude of -128 does not fit the 7-bit field and truncates
	// to zero on the wire.
	buf := bitbuf.New()
	buf.WriteInt8(-128)
	req.Equal(int8(0), buf.ReadInt8())
}

func TestUint16(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.New()
	buf.WriteUint16(0xAAAA)

	// Little-endian byte order, each byte MSB-first internally.
	req.Equal(byte(0xAA), buf.ByteAt(0))
	req.Equal(byte(0xAA), buf.ByteAt(1))

	req.Equal(uint16(0xAAAA), buf.ReadUint16())
}

func TestUint16ByteOrder(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.New()
	buf.WriteUint16(0xBEEF)
	req.Equal(byte(0xEF), buf.ByteAt(0))
	req.Equal(byte(0xBE), buf.ByteAt(1))
}

func TestInt16(t *testing.T) {
	req := require.New(t)

	for _, v := range []int16{0, 1, -1, -2, 255, -300, 32767, -32512} {
		buf := bitbuf.New()
		buf.WriteInt16(v)
		req.Equal(v, buf.ReadInt16(), "value %d", v)
	}
}

func TestUint32(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.New()
	buf.WriteUint32(0xDEADBEEF)
	req.Equal([]byte{0xEF, 0xBE, 0xAD, 0xDE}, buf.Bytes())
	req.Equal(uint32(0xDEADBEEF), buf.ReadUint32())
}

func TestInt32Layout(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.New()
	buf.WriteInt32(0x0A0B0C0D)
	req.Equal([]byte{0x0D, 0x0C, 0x0B, 0x0A}, buf.Bytes())

	// The top byte of a negative value carries the sign bit plus the
	// 7-bit magnitude.
	buf = bitbuf.New()
	buf.WriteInt32(-2)
	req.Equal([]byte{0xFE, 0xFF, 0xFF, 0x81}, buf.Bytes())
}

func TestReadInt32Unsupported(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.New()
	buf.WriteInt32(1)

	_, err := buf.ReadInt32()
	req.Equal(bitbuf.ErrSignedReadUnsupported, err)
}

func TestUint64(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.New()
	buf.WriteUint64(0xAAAAAAAA_BBBBBBBB)

	// The bottom half occupies the low 4 bytes.
	req.Equal([]byte{0xBB, 0xBB, 0xBB, 0xBB, 0xAA, 0xAA, 0xAA, 0xAA}, buf.Bytes())
	req.Equal(uint64(0xAAAAAAAA_BBBBBBBB), buf.ReadUint64())
}
