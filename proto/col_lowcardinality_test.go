package proto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func appendDictStr(t *testing.T, lc *ColLowCardinality, v string) {
	t.Helper()
	row := NewColStr()
	row.Append(v)
	require.NoError(t, lc.AppendDict(row))
}

func TestColLowCardinality_AppendDictDeduplicates(t *testing.T) {
	lc := NewColLowCardinality(NewColStr())
	appendDictStr(t, lc, "a")
	appendDictStr(t, lc, "b")
	appendDictStr(t, lc, "a")
	appendDictStr(t, lc, "c")
	appendDictStr(t, lc, "b")

	require.Equal(t, 5, lc.Rows())
	require.Equal(t, 3, lc.Dict().Rows(), "dictionary should hold only the distinct values")
	require.Equal(t, lc.Index(0), lc.Index(2), "repeated value should reuse the same dictionary index")
	require.Equal(t, lc.Index(1), lc.Index(4))
	require.NotEqual(t, lc.Index(0), lc.Index(1))
}

func TestColLowCardinality_EncodeDecodeRoundTrip(t *testing.T) {
	lc := NewColLowCardinality(NewColStr())
	appendDictStr(t, lc, "x")
	appendDictStr(t, lc, "y")
	appendDictStr(t, lc, "x")

	var buf Buffer
	lc.EncodePrefix(&buf, lc.Rows())
	lc.EncodeColumn(&buf)

	got := NewColLowCardinality(NewColStr())
	r := NewReader(bytes.NewReader(buf.Buf))
	require.NoError(t, got.DecodePrefix(r, 3))
	require.NoError(t, got.DecodeColumn(r, 3))

	require.Equal(t, 3, got.Rows())
	require.Equal(t, 2, got.Dict().Rows())
	require.Equal(t, "x", got.Dict().(*ColStr).Row(int(got.Index(0))))
	require.Equal(t, "y", got.Dict().(*ColStr).Row(int(got.Index(1))))
	require.Equal(t, got.Index(0), got.Index(2))
}

func TestColLowCardinality_AppendColumnMergesDictionaries(t *testing.T) {
	a := NewColLowCardinality(NewColStr())
	appendDictStr(t, a, "a")
	appendDictStr(t, a, "b")

	b := NewColLowCardinality(NewColStr())
	appendDictStr(t, b, "b")
	appendDictStr(t, b, "c")

	require.NoError(t, a.AppendColumn(b))
	require.Equal(t, 4, a.Rows())
	require.Equal(t, 3, a.Dict().Rows(), "merged dictionary should dedup the shared \"b\" entry")

	values := make([]string, a.Rows())
	dict := a.Dict().(*ColStr)
	for i := range values {
		values[i] = dict.Row(int(a.Index(i)))
	}
	require.Equal(t, []string{"a", "b", "b", "c"}, values)
}

func TestColLowCardinality_SliceCloneEmpty(t *testing.T) {
	lc := NewColLowCardinality(NewColStr())
	appendDictStr(t, lc, "a")
	appendDictStr(t, lc, "b")
	appendDictStr(t, lc, "a")

	s, err := lc.Slice(1, 2)
	require.NoError(t, err)
	sliced := s.(*ColLowCardinality)
	require.Equal(t, 2, sliced.Rows())

	out := lc.CloneEmpty().(*ColLowCardinality)
	require.Equal(t, 0, out.Rows())
	require.Equal(t, 0, out.Dict().Rows())
}

func TestColNothing_EncodeColumnPanicsOnNonemptyRows(t *testing.T) {
	n := NewColNothing()
	n.rows = 1
	require.Panics(t, func() {
		var buf Buffer
		n.EncodeColumn(&buf)
	})
}

func TestColNothing_SliceAppendColumn(t *testing.T) {
	n := &ColNothing{rows: 5}
	s, err := n.Slice(1, 3)
	require.NoError(t, err)
	require.Equal(t, 3, s.Rows())

	out := n.CloneEmpty().(*ColNothing)
	require.NoError(t, out.AppendColumn(n))
	require.Equal(t, 5, out.Rows())
}
