// Package persistence moves buffers between memory and storage. The
// codec itself only exposes its bytes; everything file-shaped lives
// here, behind the Sink and Source interfaces, so callers can inject
// other byte-sinks where files are not wanted.
package persistence

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/spacemeshos/bitbuf"
)

// Sink is a byte-sink a buffer can be persisted to.
type Sink interface {
	io.Writer
	Flush() error
	Close() error
}

// Source is a byte-source a buffer can be loaded from.
type Source interface {
	io.Reader
	Size() (uint64, error)
	Close() error
}

type options struct {
	logger *zap.Logger
}

type Option func(*options)

// WithLogger sets the logger used while persisting. The default is a
// no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// PersistBuffer writes buf's byte content to a file at path, replacing
// whatever was there.
func PersistBuffer(path string, buf *bitbuf.Buffer, opts ...Option) error {
	sink, err := NewFileSink(path, opts...)
	if err != nil {
		return err
	}

	if _, err := buf.WriteTo(sink); err != nil {
		_ = sink.Close()
		return fmt.Errorf("failed to write buffer: %w", err)
	}

	return sink.Close()
}

// FetchBuffer loads a file's content into a new buffer.
func FetchBuffer(path string, opts ...Option) (*bitbuf.Buffer, error) {
	o := applyOptions(opts)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read buffer file: %w", err)
	}

	o.logger.Debug("loaded buffer", zap.String("filename", path), zap.Int("size_in_bytes", len(data)))

	return bitbuf.NewFromBytes(data), nil
}
