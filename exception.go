package ch

import (
	"github.com/go-faster/errors"

	"github.com/nativeclick/ch-native/proto"
)

// Exception is the server-reported error for a failed query (spec.md §7
// Server kind), re-exported from proto so callers can errors.As into it
// without importing proto themselves.
type Exception proto.Exception

func (e *Exception) Error() string {
	return (*proto.Exception)(e).Error()
}

// IsException reports whether err is or wraps an *Exception.
func IsException(err error) bool {
	var exc *Exception
	return errors.As(err, &exc)
}
