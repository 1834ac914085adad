package ch

import (
	"context"
	"time"

	"github.com/go-faster/errors"

	"github.com/nativeclick/ch-native/internal/chx"
	"github.com/nativeclick/ch-native/proto"
)

// ServerInfo is the server's Hello reply, recorded on the Client after a
// successful handshake (spec.md §4.7 Handshake, §6.1 server_info()).
type ServerInfo struct {
	Name        string
	Major       int
	Minor       int
	Revision    int
	Timezone    string
	DisplayName string
	Patch       int
}

// handshake performs the client Hello / server Hello exchange and, when the
// negotiated revision requires it, the empty-quota-key addendum.
func (c *Client) handshake(ctx context.Context, o Options) error {
	c.writer.ChainBuffer(func(buf *proto.Buffer) {
		proto.ClientCodeHello.Encode(buf)
		buf.PutString(o.ClientInfo.Version.withDefaults().Name)
		buf.PutUVarInt(uint64(o.ClientInfo.Version.Major))
		buf.PutUVarInt(uint64(o.ClientInfo.Version.Minor))
		buf.PutUVarInt(uint64(proto.ClientProtocolVersion))
		buf.PutString(o.Database)
		buf.PutString(o.User)
		buf.PutString(o.Password)
	})
	if err := c.flush(ctx); err != nil {
		return errors.Wrap(err, "flush hello")
	}

	if c.recvTimeout > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(c.recvTimeout))
	}
	code, err := c.reader.Int()
	if err != nil {
		return errors.Wrap(err, "read server code")
	}
	switch proto.ServerCode(code) {
	case proto.ServerCodeHello:
		// continue below
	case proto.ServerCodeException:
		exc, err := proto.DecodeException(c.reader)
		if err != nil {
			return errors.Wrap(err, "decode exception")
		}
		return (*Exception)(exc)
	default:
		return chx.Newf(chx.KindProtocol, "unexpected handshake packet %d", code)
	}

	var info ServerInfo
	if info.Name, err = c.reader.Str(); err != nil {
		return errors.Wrap(err, "server name")
	}
	major, err := c.reader.Int()
	if err != nil {
		return errors.Wrap(err, "server major")
	}
	info.Major = major
	minor, err := c.reader.Int()
	if err != nil {
		return errors.Wrap(err, "server minor")
	}
	info.Minor = minor
	revision, err := c.reader.Int()
	if err != nil {
		return errors.Wrap(err, "server revision")
	}
	info.Revision = revision

	if proto.FeatureServerTimezone.In(revision) {
		if info.Timezone, err = c.reader.Str(); err != nil {
			return errors.Wrap(err, "server timezone")
		}
	}
	if proto.FeatureServerDisplayName.In(revision) {
		if info.DisplayName, err = c.reader.Str(); err != nil {
			return errors.Wrap(err, "server display name")
		}
	}
	if proto.FeatureVersionPatch.In(revision) {
		patch, err := c.reader.Int()
		if err != nil {
			return errors.Wrap(err, "server patch")
		}
		info.Patch = patch
	}

	// Negotiated revision never exceeds what this client advertised.
	if revision > proto.ClientProtocolVersion {
		revision = proto.ClientProtocolVersion
	}
	c.protocolVersion = revision
	c.serverInfo = info
	c.server = info.DisplayName
	if c.server == "" {
		c.server = info.Name
	}

	if proto.FeatureAddendum.In(revision) {
		c.writer.ChainBuffer(func(buf *proto.Buffer) {
			buf.PutString("") // quota key
		})
		if err := c.flush(ctx); err != nil {
			return errors.Wrap(err, "flush addendum")
		}
	}
	return nil
}
