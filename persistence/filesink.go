package persistence

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spacemeshos/bitbuf/shared"
)

// FileSink is a buffered file-backed byte-sink.
type FileSink struct {
	file   *os.File
	buf    *bufio.Writer
	logger *zap.Logger
}

// A compile time check to ensure that FileSink fully implements the Sink interface.
var _ Sink = (*FileSink)(nil)

// NewFileSink opens (or creates) the file at filename for writing,
// truncating previous content.
func NewFileSink(filename string, opts ...Option) (*FileSink, error) {
	o := applyOptions(opts)

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for sink: %w", err)
	}
	return &FileSink{
		file:   f,
		buf:    bufio.NewWriter(f),
		logger: o.logger,
	}, nil
}

func (s *FileSink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

func (s *FileSink) Flush() error {
	if err := s.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush sink: %w", err)
	}
	return nil
}

func (s *FileSink) Close() error {
	if err := s.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush sink: %w", err)
	}
	s.buf = nil

	if info, err := s.file.Stat(); err == nil {
		s.logger.Debug("closing sink",
			zap.String("filename", info.Name()),
			zap.Int64("size_in_bytes", info.Size()),
		)
	}

	if err := s.file.Close(); err != nil {
		return err
	}
	s.file = nil
	return nil
}
