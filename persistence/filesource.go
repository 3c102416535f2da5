package persistence

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spacemeshos/bitbuf/shared"
)

// FileSource is a buffered file-backed byte-source.
type FileSource struct {
	file *os.File
	buf  *bufio.Reader
}

// A compile time check to ensure that FileSource fully implements the Source interface.
var _ Source = (*FileSource)(nil)

func NewFileSource(filename string) (*FileSource, error) {
	f, err := os.OpenFile(filename, os.O_RDONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for source: %w", err)
	}

	return &FileSource{
		file: f,
		buf:  bufio.NewReader(f),
	}, nil
}

func (s *FileSource) Read(p []byte) (int, error) {
	return s.buf.Read(p)
}

func (s *FileSource) Size() (uint64, error) {
	info, err := s.file.Stat()
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

func (s *FileSource) Close() error {
	s.buf = nil
	return s.file.Close()
}
