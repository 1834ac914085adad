package ch

import (
	"github.com/go-faster/errors"

	"github.com/nativeclick/ch-native/compress"
)

// ErrClosed is returned by any operation attempted on a closed Client.
var ErrClosed = errors.New("client closed")

// CorruptedDataErr is the rewrapped form of compress.CorruptedDataErr,
// exported so callers can errors.As into it without importing compress.
type CorruptedDataErr compress.CorruptedDataErr

func (c *CorruptedDataErr) Error() string {
	return (*compress.CorruptedDataErr)(c).Error()
}
