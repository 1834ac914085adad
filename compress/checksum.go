package compress

import (
	"encoding/binary"
	"strconv"

	"github.com/go-faster/city"
)

// checksum computes the CityHash128 (the "102" seed variant ClickHouse
// standardized on) of buf.
func checksum(buf []byte) city.U128 {
	return city.CH128(buf)
}

// putChecksum writes u as (high64, low64): the high half first, each half
// little-endian, matching the wire layout in
// original_source/src/compression.rs.
func putChecksum(dst []byte, u city.U128) {
	binary.LittleEndian.PutUint64(dst[0:8], u.High)
	binary.LittleEndian.PutUint64(dst[8:16], u.Low)
}

func readChecksum(src []byte) city.U128 {
	return city.U128{
		High: binary.LittleEndian.Uint64(src[0:8]),
		Low:  binary.LittleEndian.Uint64(src[8:16]),
	}
}

// FormatU128 renders u as a hex string, for use in error messages.
func FormatU128(u city.U128) string {
	return strconv.FormatUint(u.High, 16) + strconv.FormatUint(u.Low, 16)
}
