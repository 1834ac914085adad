package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeoColumns_DistinguishingTypeNames(t *testing.T) {
	require.Equal(t, ColumnTypePoint, newColPoint().Type())
	require.Equal(t, ColumnTypeRing, newColRing().Type())
	require.Equal(t, ColumnTypePolygon, newColPolygon().Type())
	require.Equal(t, ColumnTypeMultiPolygon, newColMultiPolygon().Type())
}

func TestColPoint_RoundTrip(t *testing.T) {
	p := newColPoint()
	p.Elem(0).(*ColFloat64).Append(1.5)
	p.Elem(1).(*ColFloat64).Append(-2.5)
	require.NoError(t, p.AppendRow())

	var buf Buffer
	p.EncodeColumn(&buf)

	got := newColPoint()
	requireNoShortRead(t, buf.Buf, colAware(got, 1))
	require.Equal(t, ColumnTypePoint, got.Type())
	require.Equal(t, 1.5, got.Elem(0).(*ColFloat64).Row(0))
	require.Equal(t, -2.5, got.Elem(1).(*ColFloat64).Row(0))
}

func TestColRing_SliceKeepsTypeName(t *testing.T) {
	ring := newColRing()
	pt := newColPoint()
	pt.Elem(0).(*ColFloat64).Append(1)
	pt.Elem(1).(*ColFloat64).Append(2)
	require.NoError(t, pt.AppendRow())
	require.NoError(t, ring.Inner().AppendColumn(pt))
	ring.AppendOffset()

	s, err := ring.Slice(0, 1)
	require.NoError(t, err)
	require.Equal(t, ColumnTypeRing, s.Type())
}
