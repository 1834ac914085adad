package proto

import "fmt"

// ClientCode identifies a client-to-server packet, per spec.md §4.7.
type ClientCode byte

const (
	ClientCodeHello ClientCode = 0
	ClientCodeQuery ClientCode = 1
	ClientCodeData  ClientCode = 2
	ClientCodeCancel ClientCode = 3
	ClientCodePing  ClientCode = 4
)

func (c ClientCode) String() string {
	switch c {
	case ClientCodeHello:
		return "Hello"
	case ClientCodeQuery:
		return "Query"
	case ClientCodeData:
		return "Data"
	case ClientCodeCancel:
		return "Cancel"
	case ClientCodePing:
		return "Ping"
	default:
		return fmt.Sprintf("ClientCode(%d)", byte(c))
	}
}

// Encode writes the code as a single varint byte.
func (c ClientCode) Encode(b *Buffer) {
	b.PutUVarInt(uint64(c))
}

// ServerCode identifies a server-to-client packet, per spec.md §4.7.
type ServerCode byte

const (
	ServerCodeHello        ServerCode = 0
	ServerCodeData         ServerCode = 1
	ServerCodeException    ServerCode = 2
	ServerCodeProgress     ServerCode = 3
	ServerCodePong         ServerCode = 4
	ServerCodeEndOfStream  ServerCode = 5
	ServerCodeProfile      ServerCode = 6
	ServerCodeTotals       ServerCode = 7
	ServerCodeExtremes     ServerCode = 8
	ServerCodeLog          ServerCode = 10
	ServerCodeTableColumns ServerCode = 11
	ServerProfileEvents    ServerCode = 14
)

func (c ServerCode) String() string {
	switch c {
	case ServerCodeHello:
		return "Hello"
	case ServerCodeData:
		return "Data"
	case ServerCodeException:
		return "Exception"
	case ServerCodeProgress:
		return "Progress"
	case ServerCodePong:
		return "Pong"
	case ServerCodeEndOfStream:
		return "EndOfStream"
	case ServerCodeProfile:
		return "ProfileInfo"
	case ServerCodeTotals:
		return "Totals"
	case ServerCodeExtremes:
		return "Extremes"
	case ServerCodeLog:
		return "Log"
	case ServerCodeTableColumns:
		return "TableColumns"
	case ServerProfileEvents:
		return "ProfileEvents"
	default:
		return fmt.Sprintf("ServerCode(%d)", byte(c))
	}
}

// Compressible reports whether the block that follows this packet may be
// wrapped in compression frames when the session negotiated compression.
// Log and ProfileEvents blocks are always sent uncompressed by the server
// regardless of the negotiated session compression (spec.md §4.7).
func (c ServerCode) Compressible() bool {
	switch c {
	case ServerCodeData, ServerCodeTotals, ServerCodeExtremes:
		return true
	default:
		return false
	}
}

// Compression is the per-query wire toggle sent in the Query packet: it is
// not the compression method itself (see compress.Method for that), only
// whether the session requested compression at all.
type Compression byte

const (
	CompressionDisabled Compression = 0
	CompressionEnabled  Compression = 1
)

// Encode writes the toggle as a single varint byte.
func (c Compression) Encode(b *Buffer) {
	b.PutUVarInt(uint64(c))
}
