package bitbuf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitbuf"
)

func TestConcat(t *testing.T) {
	req := require.New(t)

	a := bitbuf.NewFromBytes([]byte{0x55})
	b := bitbuf.NewFromBytes([]byte{0xFF})
	a.Concat(b)

	req.Equal(2, a.Len())

	// The two single bytes are now adjacent and compose little-endian.
	req.Equal(uint16(0xFF55), a.ReadUint16())
}

func TestWriteBuffer(t *testing.T) {
	req := require.New(t)

	src := bitbuf.New()
	req.NoError(src.WriteByte(0xAB))
	src.WriteBits(0x05, 3)

	dst := bitbuf.New()
	dst.WriteBuffer(src)

	req.Equal(11, dst.Bits())
	req.Equal(byte(0xAB), dst.ByteAt(0))
	req.Equal(byte(0xA0), dst.ByteAt(1))

	// The copy runs through src's read cursor, which is now 11 bits in.
	req.Equal(uint64(0), src.ReadBits(5))
}

func TestReadBytes(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.NewFromBytes([]byte{1, 2, 3, 4})
	head := buf.ReadBytes(2)

	req.Equal([]byte{1, 2}, head.Bytes())

	// The source cursor advanced past the extracted bytes.
	b, err := buf.ReadByte()
	req.NoError(err)
	req.Equal(byte(3), b)
}

func TestReadBitsBytes(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.NewFromBytes([]byte{0xAB, 0xCD})
	out := buf.ReadBitsBytes(12, false)
	req.Equal([]byte{0xAB, 0xC0}, out)

	buf = bitbuf.NewFromBytes([]byte{0xAB, 0xCD})
	out = buf.ReadBitsBytes(12, true)
	req.Equal([]byte{0xAB, 0x0C}, out)
}

func TestReadBitsBytesInsufficientData(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.NewFromBytes([]byte{0xAB, 0xCD})
	req.Nil(buf.ReadBitsBytes(17, false))
	req.Nil(buf.ReadBitsBytes(0, false))

	// A failed copy consumes nothing.
	out := buf.ReadBitsBytes(16, false)
	req.Equal([]byte{0xAB, 0xCD}, out)
}
