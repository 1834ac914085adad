package compress

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/nativeclick/ch-native/internal/chx"
)

// Writer compresses payloads into frames and writes them to w, one frame
// per Compress call.
type Writer struct {
	w      io.Writer
	method Method

	lz4enc  lz4.Compressor
	zstdenc *zstd.Encoder

	frame []byte

	// Data holds the checksum+header+payload bytes built by the most
	// recent Compress call, for callers that splice frames into a
	// larger buffer themselves instead of writing straight to w.
	Data []byte
}

// NewWriter returns a Writer that compresses with method and writes frames
// to w.
func NewWriter(w io.Writer, method Method) *Writer {
	return &Writer{w: w, method: method}
}

// Compress compresses data into one frame and writes checksum+header+payload
// to the underlying writer.
func (w *Writer) Compress(data []byte) error {
	payload, err := w.compressPayload(data)
	if err != nil {
		return err
	}

	total := headerSize + len(payload)
	if cap(w.frame) < checksumSize+total {
		w.frame = make([]byte, checksumSize+total)
	}
	w.frame = w.frame[:checksumSize+total]

	header := w.frame[checksumSize:]
	header[0] = byte(w.method)
	binary.LittleEndian.PutUint32(header[1:5], uint32(total))
	binary.LittleEndian.PutUint32(header[5:9], uint32(len(data)))
	copy(header[headerSize:], payload)

	sum := checksum(header)
	putChecksum(w.frame[:checksumSize], sum)

	w.Data = w.frame
	_, err = w.w.Write(w.frame)
	return err
}

func (w *Writer) compressPayload(data []byte) ([]byte, error) {
	switch w.method {
	case MethodNone:
		return data, nil
	case MethodLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := w.lz4enc.CompressBlock(data, dst)
		if err != nil {
			return nil, chx.Wrap(chx.KindCompression, err, "lz4 compress")
		}
		if n == 0 && len(data) > 0 {
			// Incompressible input: lz4 reports n==0 rather than expanding it.
			return nil, chx.New(chx.KindCompression, "lz4: data incompressible")
		}
		return dst[:n], nil
	case MethodZSTD:
		if w.zstdenc == nil {
			enc, err := zstd.NewWriter(nil)
			if err != nil {
				return nil, chx.Wrap(chx.KindCompression, err, "zstd encoder init")
			}
			w.zstdenc = enc
		}
		return w.zstdenc.EncodeAll(data, nil), nil
	default:
		return nil, chx.Newf(chx.KindCompression, "unsupported compression method %s", w.method)
	}
}

// Close releases resources held by the zstd encoder, if one was created.
func (w *Writer) Close() error {
	if w.zstdenc != nil {
		return w.zstdenc.Close()
	}
	return nil
}
