package compress

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/nativeclick/ch-native/internal/chx"
)

// maxFrames bounds the number of compression frames a single Reader will
// decode across its lifetime, as a backstop against a peer that never sends
// an end-of-stream marker.
const maxFrames = 4096

// Reader decodes a stream of compression frames from raw, presenting the
// concatenated decompressed payload through the io.Reader interface.
type Reader struct {
	raw io.Reader

	zstd *zstd.Decoder

	data []byte
	pos  int

	frames int

	hdr   [checksumSize + headerSize]byte
	block []byte // scratch for the compressed payload
}

// NewReader wraps raw, decoding compression frames on demand as Read is
// called.
func NewReader(raw io.Reader) *Reader {
	return &Reader{raw: raw}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		if err := r.readFrame(); err != nil {
			return 0, err
		}
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *Reader) readFrame() error {
	r.frames++
	if r.frames > maxFrames {
		return chx.New(chx.KindCompression, "too many compression frames")
	}
	if _, err := io.ReadFull(r.raw, r.hdr[:]); err != nil {
		return err
	}
	reference := readChecksum(r.hdr[:checksumSize])
	header := r.hdr[checksumSize:]

	method, err := methodFromByte(header[0])
	if err != nil {
		return err
	}
	compressedSize := binary.LittleEndian.Uint32(header[1:5])
	uncompressedSize := binary.LittleEndian.Uint32(header[5:9])
	if compressedSize > maxCompressedSize || uncompressedSize > maxCompressedSize {
		return chx.Newf(chx.KindCompression, "frame size too large: compressed=%d uncompressed=%d", compressedSize, uncompressedSize)
	}
	if int(compressedSize) < headerSize {
		return chx.Newf(chx.KindCompression, "frame compressed size %d smaller than header", compressedSize)
	}
	payloadSize := int(compressedSize) - headerSize

	if cap(r.block) < headerSize+payloadSize {
		r.block = make([]byte, headerSize+payloadSize)
	}
	r.block = r.block[:headerSize+payloadSize]
	copy(r.block, header)
	if payloadSize > 0 {
		if _, err := io.ReadFull(r.raw, r.block[headerSize:]); err != nil {
			return err
		}
	}

	actual := checksum(r.block)
	if actual != reference {
		return &CorruptedDataErr{
			Actual:    actual,
			Reference: reference,
			RawSize:   int(compressedSize),
			DataSize:  int(uncompressedSize),
		}
	}

	payload := r.block[headerSize:]
	out, err := r.decompress(method, payload, int(uncompressedSize))
	if err != nil {
		return err
	}
	r.data = out
	r.pos = 0
	return nil
}

func (r *Reader) decompress(method Method, payload []byte, uncompressedSize int) ([]byte, error) {
	switch method {
	case MethodNone:
		if len(payload) != uncompressedSize {
			return nil, chx.Newf(chx.KindCompression, "uncompressed size mismatch: expected %d, got %d", uncompressedSize, len(payload))
		}
		return payload, nil
	case MethodLZ4:
		dst := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return nil, chx.Wrap(chx.KindCompression, err, "lz4 decompress")
		}
		if n != uncompressedSize {
			return nil, chx.Newf(chx.KindCompression, "lz4 uncompressed size mismatch: expected %d, got %d", uncompressedSize, n)
		}
		return dst, nil
	case MethodZSTD:
		if r.zstd == nil {
			dec, err := zstd.NewReader(nil)
			if err != nil {
				return nil, chx.Wrap(chx.KindCompression, err, "zstd decoder init")
			}
			r.zstd = dec
		}
		dst, err := r.zstd.DecodeAll(payload, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, chx.Wrap(chx.KindCompression, err, "zstd decompress")
		}
		if len(dst) != uncompressedSize {
			return nil, chx.Newf(chx.KindCompression, "zstd uncompressed size mismatch: expected %d, got %d", uncompressedSize, len(dst))
		}
		return dst, nil
	default:
		return nil, chx.Newf(chx.KindCompression, "unsupported compression method %s", method)
	}
}

// Close releases resources held by the zstd decoder, if one was created.
func (r *Reader) Close() error {
	if r.zstd != nil {
		r.zstd.Close()
	}
	return nil
}
