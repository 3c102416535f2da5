package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	xdr "github.com/nullstyle/go-xdr/xdr3"

	"github.com/spacemeshos/bitbuf"
	"github.com/spacemeshos/bitbuf/shared"
)

var ErrSnapshotNotExist = errors.New("snapshot doesn't exist")

// PersistState serializes a buffer snapshot, cursors included, and
// writes it to path. Restoring through FetchState yields a buffer that
// continues reading and writing exactly where the original stopped.
func PersistState(path string, state *bitbuf.State) error {
	var w bytes.Buffer
	if _, err := xdr.Marshal(&w, state); err != nil {
		return fmt.Errorf("serialization failure: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), shared.OwnerReadWriteExec); err != nil && !os.IsExist(err) {
		return fmt.Errorf("dir creation failure: %w", err)
	}

	if err := os.WriteFile(path, w.Bytes(), shared.OwnerReadWrite); err != nil {
		return fmt.Errorf("write to disk failure: %w", err)
	}

	return nil
}

// FetchState reads a snapshot previously written with PersistState.
func FetchState(path string) (*bitbuf.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSnapshotNotExist
		}
		return nil, err
	}

	state := &bitbuf.State{}
	if _, err := xdr.Unmarshal(bytes.NewReader(data), state); err != nil {
		return nil, fmt.Errorf("deserialization failure: %w", err)
	}

	return state, nil
}
