package ch

import (
	"context"
	"time"

	"github.com/go-faster/errors"

	"github.com/nativeclick/ch-native/proto"
)

// cancelQuery sends a Cancel packet over an out-of-band buffer (to avoid a
// data race with a concurrently running send leg) and closes the connection
// to prevent any further use of it.
func (c *Client) cancelQuery() error {
	c.lg.Warn("Cancel query")

	const cancelDeadline = time.Second
	ctx, cancel := context.WithTimeout(context.Background(), cancelDeadline)
	defer cancel()

	b := proto.Buffer{Buf: make([]byte, 0, 1)}
	proto.ClientCodeCancel.Encode(&b)

	var retErr error
	if err := c.flushBuf(ctx, &b); err != nil {
		retErr = errors.Join(retErr, errors.Wrap(err, "flush"))
	}
	if err := c.Close(); err != nil {
		retErr = errors.Join(retErr, errors.Wrap(err, "close"))
	}
	return retErr
}
