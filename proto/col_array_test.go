package proto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildArrInt32(t *testing.T, rows [][]int32) *ColArr {
	t.Helper()
	arr := NewColArr(NewColInt32())
	for _, row := range rows {
		for _, v := range row {
			arr.Inner().(*ColInt32).Append(v)
		}
		arr.AppendOffset()
	}
	return arr
}

func TestColArr_EncodeDecode(t *testing.T) {
	rows := [][]int32{{1, 2, 3}, {}, {4}}
	arr := buildArrInt32(t, rows)

	var buf Buffer
	arr.EncodeColumn(&buf)

	got := NewColArr(NewColInt32())
	requireNoShortRead(t, buf.Buf, colAware(got, len(rows)))

	require.Equal(t, arr.Rows(), got.Rows())
	for i := range rows {
		begin, end := got.Bounds(i)
		require.Equal(t, rows[i], got.Inner().(*ColInt32).data[begin:end])
	}
}

func TestColArr_Slice(t *testing.T) {
	arr := buildArrInt32(t, [][]int32{{1, 2}, {3}, {4, 5, 6}})

	s, err := arr.Slice(1, 2)
	require.NoError(t, err)
	sliced := s.(*ColArr)
	require.Equal(t, 2, sliced.Rows())

	b0, e0 := sliced.Bounds(0)
	require.Equal(t, []int32{3}, sliced.Inner().(*ColInt32).data[b0:e0])
	b1, e1 := sliced.Bounds(1)
	require.Equal(t, []int32{4, 5, 6}, sliced.Inner().(*ColInt32).data[b1:e1])

	_, err = arr.Slice(2, 5)
	require.Error(t, err)
}

func TestColArr_CloneEmptyAndAppendColumn(t *testing.T) {
	a := buildArrInt32(t, [][]int32{{1, 2}})
	b := buildArrInt32(t, [][]int32{{3}, {4, 5}})

	out := a.CloneEmpty().(*ColArr)
	require.NoError(t, out.AppendColumn(a))
	require.NoError(t, out.AppendColumn(b))

	require.Equal(t, 3, out.Rows())
	b0, e0 := out.Bounds(0)
	require.Equal(t, []int32{1, 2}, out.Inner().(*ColInt32).data[b0:e0])
	b1, e1 := out.Bounds(1)
	require.Equal(t, []int32{3}, out.Inner().(*ColInt32).data[b1:e1])
	b2, e2 := out.Bounds(2)
	require.Equal(t, []int32{4, 5}, out.Inner().(*ColInt32).data[b2:e2])

	require.Error(t, out.AppendColumn(NewColInt32()))
}

func TestColArr_PreparableDelegatesToInner(t *testing.T) {
	lc := NewColLowCardinality(NewColStr())
	arr := NewColArr(lc)

	var buf Buffer
	arr.EncodePrefix(&buf, 0)
	require.NotZero(t, len(buf.Buf), "LowCardinality version marker should be written")

	r := NewReader(bytes.NewReader(buf.Buf))
	require.NoError(t, arr.DecodePrefix(r, 0))
}
