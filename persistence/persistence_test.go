package persistence_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/bitbuf"
	"github.com/spacemeshos/bitbuf/persistence"
)

func TestPersistFetchBuffer(t *testing.T) {
	req := require.New(t)

	buf := bitbuf.New()
	buf.WriteUint32(0xDEADBEEF)
	buf.WriteString("roundtrip")

	path := filepath.Join(t.TempDir(), "buffer.bin")
	logger := zaptest.NewLogger(t)

	err := persistence.PersistBuffer(path, buf, persistence.WithLogger(logger))
	req.NoError(err)

	fetched, err := persistence.FetchBuffer(path, persistence.WithLogger(logger))
	req.NoError(err)
	req.Equal(buf.Bytes(), fetched.Bytes())

	// The fetched buffer reads from the start.
	req.Equal(uint32(0xDEADBEEF), fetched.ReadUint32())
}

func TestFetchBufferMissing(t *testing.T) {
	req := require.New(t)

	_, err := persistence.FetchBuffer(filepath.Join(t.TempDir(), "nope.bin"))
	req.Error(err)
}

func TestFileSinkSource(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "sink.bin")

	sink, err := persistence.NewFileSink(path)
	req.NoError(err)

	n, err := sink.Write([]byte{1, 2, 3})
	req.NoError(err)
	req.Equal(3, n)
	req.NoError(sink.Flush())
	req.NoError(sink.Close())

	source, err := persistence.NewFileSource(path)
	req.NoError(err)

	size, err := source.Size()
	req.NoError(err)
	req.Equal(uint64(3), size)

	out := make([]byte, 3)
	_, err = source.Read(out)
	req.NoError(err)
	req.Equal([]byte{1, 2, 3}, out)
	req.NoError(source.Close())
}

func TestPersistBufferTruncates(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "buffer.bin")

	long := bitbuf.NewFromBytes([]byte{1, 2, 3, 4})
	req.NoError(persistence.PersistBuffer(path, long))

	short := bitbuf.NewFromBytes([]byte{9})
	req.NoError(persistence.PersistBuffer(path, short))

	fetched, err := persistence.FetchBuffer(path)
	req.NoError(err)
	req.Equal([]byte{9}, fetched.Bytes())
}
