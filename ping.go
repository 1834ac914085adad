package ch

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/nativeclick/ch-native/internal/chx"
	"github.com/nativeclick/ch-native/proto"
)

// Ping writes a Ping packet and waits for the server's Pong (spec.md §4.7
// Ping / Cancel).
func (c *Client) Ping(ctx context.Context) error {
	if c.IsClosed() {
		return ErrClosed
	}
	c.writer.ChainBuffer(func(buf *proto.Buffer) {
		proto.ClientCodePing.Encode(buf)
	})
	if err := c.flush(ctx); err != nil {
		return errors.Wrap(err, "flush")
	}
	code, err := c.packet(ctx)
	if err != nil {
		return errors.Wrap(err, "packet")
	}
	if code != proto.ServerCodePong {
		return chx.Newf(chx.KindProtocol, "unexpected packet %s, expected Pong", code)
	}
	return nil
}
