package proto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlock_EncodeDecodeRoundTrip(t *testing.T) {
	var b Block
	ints := NewColInt32()
	ints.Append(1)
	ints.Append(2)
	require.NoError(t, b.Append("n", ints))

	strs := NewColStr()
	strs.Append("a")
	strs.Append("b")
	require.NoError(t, b.Append("s", strs))

	var buf Buffer
	b.EncodeBlock(&buf, ClientProtocolVersion)

	var got Block
	r := NewReader(bytes.NewReader(buf.Buf))
	require.NoError(t, got.DecodeBlock(r, ClientProtocolVersion, nil))

	require.Equal(t, 2, got.Rows)
	require.Equal(t, []string{"n", "s"}, got.ColumnNames())
	require.Equal(t, int32(1), got.Columns[0].Data.(*ColInt32).Row(0))
	require.Equal(t, "b", got.Columns[1].Data.(*ColStr).Row(1))
}

// TestBlock_PreparablePrefixOrder pins down the Array(LowCardinality(X))
// wire order: the dictionary's version marker must precede the array's own
// offsets, the reverse of the order a naive implementation (write the
// column's own framing, then delegate) would produce.
func TestBlock_PreparablePrefixOrder(t *testing.T) {
	arr := NewColArr(NewColLowCardinality(NewColStr()))
	row := NewColStr()
	row.Append("v")
	require.NoError(t, arr.Inner().(*ColLowCardinality).AppendDict(row))
	arr.AppendOffset()

	var b Block
	require.NoError(t, b.Append("arr", arr))

	var buf Buffer
	b.EncodeBlock(&buf, ClientProtocolVersion)

	var got Block
	r := NewReader(bytes.NewReader(buf.Buf))
	require.NoError(t, got.DecodeBlock(r, ClientProtocolVersion, nil))

	gotArr := got.Columns[0].Data.(*ColArr)
	require.Equal(t, 1, gotArr.Rows())
	lc := gotArr.Inner().(*ColLowCardinality)
	require.Equal(t, 1, lc.Rows())
	require.Equal(t, "v", lc.Dict().(*ColStr).Row(int(lc.Index(0))))
}

func TestBlock_EmptyBlockIsEndSentinel(t *testing.T) {
	var b Block
	require.True(t, b.End())
	require.NoError(t, b.Append("n", NewColInt32()))
	require.True(t, b.End(), "zero rows still marks end of stream")
}
