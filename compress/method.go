// Package compress implements the ClickHouse native protocol's compression
// frame codec: a CityHash128 checksum, a one-byte method tag, and
// compressed/uncompressed size fields wrapping an LZ4 or ZSTD payload (or a
// raw copy for Method_None), per spec.md §4.2 and the reference layout in
// original_source/src/compression.rs.
package compress

import "github.com/nativeclick/ch-native/internal/chx"

// Method identifies the compression codec used for one frame.
type Method byte

// Wire values for Method, matching ClickHouse's CompressionMethodByte.
const (
	MethodNone Method = 0x02
	MethodLZ4  Method = 0x82
	MethodZSTD Method = 0x90
)

func (m Method) String() string {
	switch m {
	case MethodNone:
		return "None"
	case MethodLZ4:
		return "LZ4"
	case MethodZSTD:
		return "ZSTD"
	default:
		return "Unknown"
	}
}

func methodFromByte(b byte) (Method, error) {
	switch Method(b) {
	case MethodNone, MethodLZ4, MethodZSTD:
		return Method(b), nil
	default:
		return 0, chx.Newf(chx.KindCompression, "unknown compression method 0x%02x", b)
	}
}

// headerSize is the 1-byte method tag plus the two 4-byte LE size fields.
const headerSize = 9

// checksumSize is the CityHash128 checksum prefix.
const checksumSize = 16

// maxCompressedSize bounds both the compressed and uncompressed frame sizes
// that a peer may declare, guarding against a corrupt or hostile header
// causing an unbounded allocation.
const maxCompressedSize = 0x40000000
