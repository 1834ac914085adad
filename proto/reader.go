package proto

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/go-faster/errors"

	"github.com/nativeclick/ch-native/compress"
	"github.com/nativeclick/ch-native/internal/chx"
)

// maxStrLen bounds the length of a wire string to avoid unbounded
// allocation from a corrupt or hostile peer. Spec caps this at 2^30.
const maxStrLen = 1 << 30

// maxVarIntBytes bounds uvarint decoding: more than 9 continuation bytes
// is always an overflow for a 64-bit value.
const maxVarIntBytes = 9

// Reader reads the ClickHouse native wire format from a byte stream.
//
// The same type is used for both the "streaming" path (raw is a buffered
// socket reader) and the "in-memory cursor" path (raw wraps a bytes.Reader);
// the byte sequences consumed by both are identical, satisfying the
// round-trip property in spec.md §8.2.
type Reader struct {
	raw *bufio.Reader

	// compression, when non-nil, transparently decodes one or more
	// compression frames instead of reading raw bytes from raw.
	compression *compress.Reader
}

// NewReader wraps r in a Reader with an 8 KiB buffer.
func NewReader(r io.Reader) *Reader {
	return &Reader{raw: bufio.NewReaderSize(r, 8*1024)}
}

// EnableCompression starts transparently decoding compression frames for
// subsequent reads. Must be paired with DisableCompression.
func (r *Reader) EnableCompression() {
	r.compression = compress.NewReader(r.raw)
}

// DisableCompression reverts to reading raw bytes directly.
func (r *Reader) DisableCompression() {
	r.compression = nil
}

func (r *Reader) source() io.Reader {
	if r.compression != nil {
		return r.compression
	}
	return r.raw
}

// ReadFull reads exactly len(buf) bytes.
func (r *Reader) ReadFull(buf []byte) error {
	if _, err := io.ReadFull(r.source(), buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return io.EOF
		}
		return err
	}
	return nil
}

// Byte reads single byte.
func (r *Reader) Byte() (byte, error) {
	var buf [1]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Bool reads single boolean byte.
func (r *Reader) Bool() (bool, error) {
	v, err := r.Byte()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// UVarInt reads unsigned varint (LEB128-like), failing with Protocol error
// on overflow (more than 9 continuation bytes).
func (r *Reader) UVarInt() (uint64, error) {
	var x uint64
	var s uint
	for i := 0; i <= maxVarIntBytes; i++ {
		b, err := r.Byte()
		if err != nil {
			return 0, err
		}
		if b < 0x80 {
			return x | uint64(b)<<s, nil
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
	return 0, chx.New(chx.KindProtocol, "varint overflow")
}

// Int reads a non-negative varint as a plain int.
func (r *Reader) Int() (int, error) {
	v, err := r.UVarInt()
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// UInt8 reads a single byte as uint8.
func (r *Reader) UInt8() (uint8, error) { return r.Byte() }

// Int8 reads a single byte as int8.
func (r *Reader) Int8() (int8, error) {
	v, err := r.Byte()
	return int8(v), err
}

// UInt16 reads little-endian uint16.
func (r *Reader) UInt16() (uint16, error) {
	var buf [2]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// Int16 reads little-endian int16.
func (r *Reader) Int16() (int16, error) {
	v, err := r.UInt16()
	return int16(v), err
}

// UInt32 reads little-endian uint32.
func (r *Reader) UInt32() (uint32, error) {
	var buf [4]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Int32 reads little-endian int32.
func (r *Reader) Int32() (int32, error) {
	v, err := r.UInt32()
	return int32(v), err
}

// UInt64 reads little-endian uint64.
func (r *Reader) UInt64() (uint64, error) {
	var buf [8]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Int64 reads little-endian int64.
func (r *Reader) Int64() (int64, error) {
	v, err := r.UInt64()
	return int64(v), err
}

// Float32 reads IEEE-754 binary32 little endian.
func (r *Reader) Float32() (float32, error) {
	v, err := r.UInt32()
	return math.Float32frombits(v), err
}

// Float64 reads IEEE-754 binary64 little endian.
func (r *Reader) Float64() (float64, error) {
	v, err := r.UInt64()
	return math.Float64frombits(v), err
}

// Str reads varint length-prefixed UTF-8 string.
func (r *Reader) Str() (string, error) {
	n, err := r.UVarInt()
	if err != nil {
		return "", errors.Wrap(err, "length")
	}
	if n > maxStrLen {
		return "", chx.Newf(chx.KindProtocol, "string length %d exceeds limit", n)
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
