package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewColNullable_RejectsCompositeInner(t *testing.T) {
	for _, inner := range []Column{
		NewColArr(NewColInt32()),
		NewColMap(NewColStr(), NewColStr()),
		NewColLowCardinality(NewColStr()),
	} {
		_, err := NewColNullable(inner)
		require.Error(t, err, "Nullable(%s) should be rejected", inner.Type())
	}

	nested, err := NewColNullable(NewColStr())
	require.NoError(t, err)
	_, err = NewColNullable(nested)
	require.Error(t, err, "Nullable(Nullable(String)) should be rejected")
}

func TestColNullable_RoundTrip(t *testing.T) {
	col, err := NewColNullable(NewColStr())
	require.NoError(t, err)

	col.Inner().(*ColStr).Append("a")
	col.AppendNonNull()
	col.Inner().(*ColStr).Append("")
	col.AppendNull()
	col.Inner().(*ColStr).Append("c")
	col.AppendNonNull()

	var buf Buffer
	col.EncodeColumn(&buf)

	got, err := NewColNullable(NewColStr())
	require.NoError(t, err)
	requireNoShortRead(t, buf.Buf, colAware(got, 3))

	require.False(t, got.NullableRow(0))
	require.True(t, got.NullableRow(1))
	require.False(t, got.NullableRow(2))
	require.Equal(t, "a", got.Inner().(*ColStr).Row(0))
	require.Equal(t, "c", got.Inner().(*ColStr).Row(2))
}

func TestColNullable_SliceCloneEmptyAppendColumn(t *testing.T) {
	col, err := NewColNullable(NewColInt32())
	require.NoError(t, err)
	col.Inner().(*ColInt32).Append(1)
	col.AppendNonNull()
	col.Inner().(*ColInt32).Append(0)
	col.AppendNull()
	col.Inner().(*ColInt32).Append(3)
	col.AppendNonNull()

	s, err := col.Slice(1, 2)
	require.NoError(t, err)
	sliced := s.(*ColNullable)
	require.Equal(t, 2, sliced.Rows())
	require.True(t, sliced.NullableRow(0))
	require.False(t, sliced.NullableRow(1))

	out := col.CloneEmpty().(*ColNullable)
	require.Equal(t, 0, out.Rows())
	require.NoError(t, out.AppendColumn(col))
	require.Equal(t, col.Rows(), out.Rows())

	other, err := NewColNullable(NewColStr())
	require.NoError(t, err)
	require.Error(t, out.AppendColumn(other))
}
