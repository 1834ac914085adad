package compress

import (
	"fmt"

	"github.com/go-faster/city"
)

// CorruptedDataErr reports a checksum mismatch between the frame's declared
// checksum and the checksum computed over the received bytes.
type CorruptedDataErr struct {
	Actual    city.U128
	Reference city.U128
	RawSize   int
	DataSize  int
}

func (c *CorruptedDataErr) Error() string {
	return fmt.Sprintf("corrupted data: %s (actual), %s (reference), compressed size: %d, data size: %d",
		FormatU128(c.Actual), FormatU128(c.Reference), c.RawSize, c.DataSize,
	)
}
