package ch

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/nativeclick/ch-native/proto"
)

// encodeBlock writes one Data packet carrying input's columns under
// tableName (empty for the ordinary query/insert stream, nonempty for
// external data); a zero-length input encodes the empty "end of data"
// block.
func (c *Client) encodeBlock(ctx context.Context, tableName string, input []proto.InputColumn) error {
	c.writer.ChainBuffer(func(buf *proto.Buffer) {
		proto.ClientCodeData.Encode(buf)
		proto.ClientData{TableName: tableName}.EncodeAware(buf, c.protocolVersion)
	})

	b, err := proto.Input(input).Into()
	if err != nil {
		return errors.Wrap(err, "append column")
	}
	if len(input) > 0 {
		c.metricsInc(ctx, queryMetrics{BlocksSent: 1})
		b.Info = proto.BlockInfo{BucketNum: -1}
	}

	if c.compression == proto.CompressionDisabled {
		c.writer.ChainBuffer(func(buf *proto.Buffer) {
			b.EncodeBlock(buf, c.protocolVersion)
		})
		return nil
	}

	var rerr error
	c.writer.ChainBuffer(func(buf *proto.Buffer) {
		start := len(buf.Buf)
		b.EncodeBlock(buf, c.protocolVersion)
		// Own copy: the frames we splice back in below land at the same
		// offset the plaintext occupies, so we cannot compress in place.
		data := append([]byte(nil), buf.Buf[start:]...)
		buf.Buf = buf.Buf[:start]

		chunkSize := c.maxCompressionChunk
		if chunkSize <= 0 || chunkSize > len(data) {
			chunkSize = len(data)
		}
		if chunkSize == 0 {
			chunkSize = 1
		}

		for len(data) > 0 {
			n := chunkSize
			if n > len(data) {
				n = len(data)
			}
			if err := c.compressor.Compress(data[:n]); err != nil {
				rerr = errors.Wrap(err, "compress")
				return
			}
			buf.Buf = append(buf.Buf, c.compressor.Data...)
			data = data[n:]
		}
	})
	return rerr
}

// encodeBlankBlock encodes the zero-column, zero-row block that marks "end
// of data" on the wire.
func (c *Client) encodeBlankBlock(ctx context.Context) error {
	return c.encodeBlock(ctx, "", nil)
}

// sendInput streams q.Input as a sequence of Data packets, pulling more rows
// from q.OnInput (if set) until it returns io.EOF, then writes the
// end-of-data marker. info carries the server-echoed column types needed to
// resolve any Inferable column in q.Input.
func (c *Client) sendInput(ctx context.Context, info proto.ColInfoInput, q Query) error {
	if len(q.Input) == 0 {
		return nil
	}

	var inferenceColumns map[string]proto.ColumnType
	inferenceDebug := c.lg.Check(zap.DebugLevel, "Inferring columns")
	if inferenceDebug != nil {
		inferenceColumns = make(map[string]proto.ColumnType, len(info))
	}
	if err := q.Input.Bind(info); err != nil {
		return errors.Wrap(err, "bind input")
	}
	if inferenceDebug != nil {
		for _, v := range info {
			inferenceColumns[v.Name] = v.Type
		}
		if len(inferenceColumns) > 0 {
			inferenceDebug.Write(zap.Any("columns", inferenceColumns))
		}
	}

	rows := q.Input[0].Data.Rows()
	f := q.OnInput
	if f != nil && rows == 0 {
		if err := f(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				goto End
			}
			return errors.Wrap(err, "input")
		}
	}
	for {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "context")
		}
		if err := c.encodeBlock(ctx, "", q.Input); err != nil {
			return errors.Wrap(err, "write block")
		}
		if f == nil {
			break
		}
		if err := c.flush(ctx); err != nil {
			return errors.Wrap(err, "flush")
		}
		if err := f(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				if tailRows := q.Input[0].Data.Rows(); tailRows > 0 {
					if ce := c.lg.Check(zap.DebugLevel, "Writing tail of input data"); ce != nil {
						ce.Write(zap.Int("rows", tailRows))
					}
					f = nil
					continue
				}
				break
			}
			return errors.Wrap(err, "next input (server already persisted previous blocks)")
		}
	}
End:
	if err := c.encodeBlankBlock(ctx); err != nil {
		return errors.Wrap(err, "write end of data")
	}
	return nil
}
