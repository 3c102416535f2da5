package shared_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitbuf/shared"
)

func TestNumBits(t *testing.T) {
	req := require.New(t)

	req.Equal(0, shared.NumBits(0))
	req.Equal(1, shared.NumBits(1))
	req.Equal(4, shared.NumBits(0x0F))
	req.Equal(8, shared.NumBits(0xFF))
	req.Equal(64, shared.NumBits(^uint64(0)))
}
