package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColUInt128_EncodeDecode(t *testing.T) {
	col := NewColUInt128()
	col.Append(UInt128{Lo: 1, Hi: 0})
	col.Append(UInt128{Lo: 0xffffffffffffffff, Hi: 0x0102030405060708})

	var buf Buffer
	col.EncodeColumn(&buf)
	require.Len(t, buf.Buf, 32)

	got := NewColUInt128()
	requireNoShortRead(t, buf.Buf, colAware(got, 2))
	requireEqual[UInt128](t, col, got)
}

func TestColInt128_SliceAppendColumn(t *testing.T) {
	col := NewColInt128()
	col.Append(Int128{Lo: 1, Hi: 0})
	col.Append(Int128{Lo: 2, Hi: 0xffffffffffffffff}) // negative

	s, err := col.Slice(1, 1)
	require.NoError(t, err)
	sliced := s.(*ColInt128)
	require.Equal(t, Int128{Lo: 2, Hi: 0xffffffffffffffff}, sliced.Row(0))

	out := col.CloneEmpty().(*ColInt128)
	require.NoError(t, out.AppendColumn(col))
	requireEqual[Int128](t, col, out)

	require.Error(t, out.AppendColumn(NewColUInt128()))
}
