package proto

import (
	"bufio"
	"io"
)

// Writer buffers native-protocol packets before flushing them to the
// underlying duplex stream.
//
// Writer itself never compresses: compression frames are self-describing
// byte blobs assembled explicitly by whoever composes a packet (see
// Client.encodeBlock in the root package), then appended to the same
// buffer as any other bytes. This mirrors the wire, where only a block's
// own payload is ever wrapped in a compression frame, never packet framing
// around it.
type Writer struct {
	w   *bufio.Writer
	buf *Buffer
}

// NewWriter wraps w with an 8 KiB buffer, using buf as scratch space for
// accumulating packet bytes between Flush calls. Reusing buf (via its
// Reset, not reallocating) across packets is part of the hot path.
func NewWriter(w io.Writer, buf *Buffer) *Writer {
	if buf == nil {
		buf = new(Buffer)
	}
	return &Writer{w: bufio.NewWriterSize(w, 8*1024), buf: buf}
}

// ChainBuffer applies fn to the writer's scratch buffer without flushing,
// allowing several logical writes to accumulate into one packet.
func (w *Writer) ChainBuffer(fn func(buf *Buffer)) {
	fn(w.buf)
}

// Flush writes the accumulated buffer to the underlying stream and resets
// it for reuse, then flushes the underlying bufio.Writer.
func (w *Writer) Flush() (int64, error) {
	n, err := w.w.Write(w.buf.Buf)
	w.buf.Reset()
	if err != nil {
		return int64(n), err
	}
	if err := w.w.Flush(); err != nil {
		return int64(n), err
	}
	return int64(n), nil
}
