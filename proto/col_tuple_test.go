package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTupleIntStr(t *testing.T, rows []struct {
	I int32
	S string
}) *ColTuple {
	t.Helper()
	tup := NewColTuple(NewColInt32(), NewColStr())
	for _, row := range rows {
		tup.Elem(0).(*ColInt32).Append(row.I)
		tup.Elem(1).(*ColStr).Append(row.S)
		require.NoError(t, tup.AppendRow())
	}
	return tup
}

func TestColTuple_AppendRowValidatesElementCounts(t *testing.T) {
	tup := NewColTuple(NewColInt32(), NewColStr())
	tup.Elem(0).(*ColInt32).Append(1)
	// Elem(1) was never appended to: AppendRow must reject the mismatch.
	require.Error(t, tup.AppendRow())
}

func TestColTuple_EncodeDecode(t *testing.T) {
	rows := []struct {
		I int32
		S string
	}{{1, "a"}, {2, "b"}, {3, "c"}}
	tup := buildTupleIntStr(t, rows)

	var buf Buffer
	tup.EncodeColumn(&buf)

	got := NewColTuple(NewColInt32(), NewColStr())
	requireNoShortRead(t, buf.Buf, colAware(got, len(rows)))
	require.Equal(t, len(rows), got.Rows())
	for i, row := range rows {
		require.Equal(t, row.I, got.Elem(0).(*ColInt32).Row(i))
		require.Equal(t, row.S, got.Elem(1).(*ColStr).Row(i))
	}
}

func TestColTuple_SliceCloneEmptyAppendColumn(t *testing.T) {
	rows := []struct {
		I int32
		S string
	}{{1, "a"}, {2, "b"}, {3, "c"}}
	tup := buildTupleIntStr(t, rows)

	s, err := tup.Slice(1, 2)
	require.NoError(t, err)
	sliced := s.(*ColTuple)
	require.Equal(t, 2, sliced.Rows())
	require.Equal(t, int32(2), sliced.Elem(0).(*ColInt32).Row(0))
	require.Equal(t, "c", sliced.Elem(1).(*ColStr).Row(1))

	out := tup.CloneEmpty().(*ColTuple)
	require.NoError(t, out.AppendColumn(tup))
	require.Equal(t, tup.Rows(), out.Rows())

	require.Error(t, out.AppendColumn(NewColTuple(NewColInt32())))
}

func TestColMap_AppendRowAndRoundTrip(t *testing.T) {
	m := NewColMap(NewColStr(), NewColInt32())

	m.Keys().(*ColStr).Append("a")
	m.Values().(*ColInt32).Append(1)
	m.Keys().(*ColStr).Append("b")
	m.Values().(*ColInt32).Append(2)
	m.AppendRow()

	m.AppendRow() // empty map row

	require.Equal(t, 2, m.Rows())

	var buf Buffer
	m.EncodeColumn(&buf)

	got := NewColMap(NewColStr(), NewColInt32())
	requireNoShortRead(t, buf.Buf, colAware(got, 2))
	require.Equal(t, 2, got.Rows())

	begin, end := got.Bounds(0)
	require.Equal(t, 2, end-begin)
	require.Equal(t, "a", got.Keys().(*ColStr).Row(begin))
	require.Equal(t, int32(1), got.Values().(*ColInt32).Row(begin))

	begin1, end1 := got.Bounds(1)
	require.Equal(t, 0, end1-begin1)
}

func TestColMap_SliceCloneEmptyAppendColumn(t *testing.T) {
	m := NewColMap(NewColStr(), NewColInt32())
	m.Keys().(*ColStr).Append("k1")
	m.Values().(*ColInt32).Append(1)
	m.AppendRow()
	m.Keys().(*ColStr).Append("k2")
	m.Values().(*ColInt32).Append(2)
	m.AppendRow()

	s, err := m.Slice(1, 1)
	require.NoError(t, err)
	sliced := s.(*ColMap)
	require.Equal(t, 1, sliced.Rows())

	out := m.CloneEmpty().(*ColMap)
	require.NoError(t, out.AppendColumn(m))
	require.Equal(t, m.Rows(), out.Rows())
}
