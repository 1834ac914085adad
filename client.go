// Package ch implements a native-protocol ClickHouse client: wire codec,
// typed columns, and the query/insert session state machine.
package ch

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/nativeclick/ch-native/compress"
	"github.com/nativeclick/ch-native/internal/chx"
	"github.com/nativeclick/ch-native/proto"
)

// connInfo is the client-submitted identity echoed into OpenTelemetry span
// attributes; distinct from serverInfo, which is what the server's Hello
// reply reports about itself.
type connInfo struct {
	User     string
	Database string
}

// Client is a single connection to a ClickHouse server speaking the native
// protocol. A Client is not safe for concurrent use: one goroutine owns the
// transport exclusively (spec.md §5).
type Client struct {
	conn   net.Conn
	reader *proto.Reader
	writer *proto.Writer

	compression         proto.Compression
	compressMethod      compress.Method
	compressor          *compress.Writer
	maxCompressionChunk int
	protocolVersion     int

	recvTimeout time.Duration
	sendTimeout time.Duration

	version    Version
	info       connInfo
	clientInfo ClientInfoOptions
	server     string
	serverInfo ServerInfo

	settings []Setting

	// rethrowExceptions, when true, returns a server Exception as an error
	// from Do even after an OnException callback has already handled it.
	rethrowExceptions bool

	lg *zap.Logger

	otel   bool
	tracer trace.Tracer

	closed atomic.Bool
}

// Dial opens a Client against the first reachable endpoint in o (applying
// failover per spec.md §4.7) and performs the handshake.
func Dial(ctx context.Context, o Options) (*Client, error) {
	o = o.withDefaults()

	conn, err := dialWithFailover(ctx, o)
	if err != nil {
		return nil, err
	}

	c := &Client{
		conn:                conn,
		reader:              proto.NewReader(conn),
		writer:              proto.NewWriter(conn, nil),
		version:             o.ClientInfo.Version,
		info:                connInfo{User: o.User, Database: o.Database},
		clientInfo:          o.ClientInfo,
		settings:            o.Settings,
		rethrowExceptions:   o.RethrowException,
		maxCompressionChunk: o.MaxCompressionChunkSize,
		recvTimeout:         o.ConnectionOptions.RecvTimeout,
		sendTimeout:         o.ConnectionOptions.SendTimeout,
		lg:                  o.Logger,
		otel:                o.OpenTelemetryEnabled,
	}
	if c.otel {
		c.tracer = otel.Tracer("github.com/nativeclick/ch-native")
	}

	switch o.Compression {
	case CompressionLZ4:
		c.compression = proto.CompressionEnabled
		c.compressMethod = compress.MethodLZ4
	case CompressionZSTD:
		c.compression = proto.CompressionEnabled
		c.compressMethod = compress.MethodZSTD
	default:
		c.compression = proto.CompressionDisabled
	}
	if c.compression == proto.CompressionEnabled {
		// Frames are built in memory via compressor.Data and spliced into
		// the write buffer by hand, so the underlying writer is unused.
		c.compressor = compress.NewWriter(discardWriter{}, c.compressMethod)
	}

	if err := c.handshake(ctx, o); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "handshake")
	}
	if o.PingBeforeQuery {
		if err := c.Ping(ctx); err != nil {
			_ = conn.Close()
			return nil, errors.Wrap(err, "ping")
		}
	}
	return c, nil
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// IsClosed reports whether the connection has been closed.
func (c *Client) IsClosed() bool { return c.closed.Load() }

// Close closes the underlying connection. Idempotent.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.conn.Close()
}

// ServerInfo returns the server's Hello reply (spec.md §6.1 server_info()).
func (c *Client) ServerInfo() ServerInfo { return c.serverInfo }

func (c *Client) flush(ctx context.Context) error {
	if c.sendTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.sendTimeout))
	}
	_, err := c.writer.Flush()
	if err != nil {
		return chx.Wrap(chx.KindIO, err, "flush")
	}
	return nil
}

// flushBuf flushes an out-of-band buffer directly (used by cancelQuery,
// which avoids c.writer's shared scratch buffer to prevent a data race with
// a concurrently running send leg).
func (c *Client) flushBuf(ctx context.Context, b *proto.Buffer) error {
	if c.sendTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.sendTimeout))
	}
	if _, err := c.conn.Write(b.Buf); err != nil {
		return chx.Wrap(chx.KindIO, err, "write")
	}
	return nil
}

// encode writes q's Query packet body via the writer's scratch buffer
// without flushing.
func (c *Client) encode(q proto.Query) {
	c.writer.ChainBuffer(func(buf *proto.Buffer) {
		proto.ClientCodeQuery.Encode(buf)
		q.EncodeAware(buf, c.protocolVersion)
	})
}

// decoder is implemented by every packet body read via c.decode.
type decoder interface {
	Decode(r *proto.Reader) error
}

func (c *Client) decode(d decoder) error {
	if err := d.Decode(c.reader); err != nil {
		return chx.Wrap(chx.KindProtocol, err, "decode")
	}
	return nil
}

// packet reads the next varint server packet code.
func (c *Client) packet(ctx context.Context) (proto.ServerCode, error) {
	if c.recvTimeout > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(c.recvTimeout))
	}
	v, err := c.reader.Int()
	if err != nil {
		return 0, err
	}
	return proto.ServerCode(v), nil
}

func (c *Client) exception() (*Exception, error) {
	e, err := proto.DecodeException(c.reader)
	if err != nil {
		return nil, err
	}
	return (*Exception)(e), nil
}

func (c *Client) progress() (proto.Progress, error) {
	var p proto.Progress
	err := p.DecodeAware(c.reader, c.protocolVersion)
	return p, err
}

func (c *Client) profile() (proto.Profile, error) {
	var p proto.Profile
	err := p.Decode(c.reader)
	return p, err
}
