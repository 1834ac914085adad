package proto

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/nativeclick/ch-native/internal/chx"
)

// decimalWidth returns the wire width in bytes for a Decimal of the given
// precision, per ClickHouse's Decimal32/64/128/256 storage selection.
func decimalWidth(precision int) int {
	switch {
	case precision <= 9:
		return 4
	case precision <= 18:
		return 8
	case precision <= 38:
		return 16
	default:
		return 32
	}
}

// ColDecimal is a column of Decimal(precision, scale) values. Rows are
// stored as little-endian two's-complement integers of a width selected by
// precision (4/8/16/32 bytes), and exposed as shopspring/decimal values
// scaled by 10^-scale.
type ColDecimal struct {
	data      []byte
	width     int
	precision int
	scale     int
}

// NewColDecimal returns an empty Decimal(precision, scale) column.
func NewColDecimal(precision, scale int) *ColDecimal {
	return &ColDecimal{width: decimalWidth(precision), precision: precision, scale: scale}
}

func (c *ColDecimal) Type() ColumnType {
	return ColumnTypeDecimal.With(itoa64(int64(c.precision)) + ", " + itoa64(int64(c.scale)))
}

func (c *ColDecimal) Rows() int {
	if c.width == 0 {
		return 0
	}
	return len(c.data) / c.width
}

func (c *ColDecimal) Reset() { c.data = c.data[:0] }

// Row returns row i as a decimal.Decimal scaled by 10^-scale.
func (c *ColDecimal) Row(i int) decimal.Decimal {
	raw := c.data[i*c.width : (i+1)*c.width]
	unscaled := new(big.Int).SetBytes(reverseBytes(raw))
	if raw[c.width-1]&0x80 != 0 {
		// Two's-complement negative: subtract 2^(8*width).
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*c.width))
		unscaled.Sub(unscaled, mod)
	}
	return decimal.NewFromBigInt(unscaled, int32(-c.scale))
}

// Append appends v, rescaling it to the column's declared scale.
func (c *ColDecimal) Append(v decimal.Decimal) {
	unscaled := v.Rescale(int32(-c.scale)).Coefficient()
	row := make([]byte, c.width)
	bs := unscaled.Bytes()
	neg := unscaled.Sign() < 0
	if neg {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*c.width))
		twos := new(big.Int).Add(mod, unscaled)
		bs = twos.Bytes()
	}
	for i := 0; i < len(bs) && i < c.width; i++ {
		row[i] = bs[len(bs)-1-i]
	}
	if neg {
		for i := len(bs); i < c.width; i++ {
			row[i] = 0xff
		}
	}
	c.data = append(c.data, row...)
}

func (c *ColDecimal) Slice(begin, n int) (Column, error) {
	if err := checkSlice(begin, n, c.Rows()); err != nil {
		return nil, err
	}
	out := NewColDecimal(c.precision, c.scale)
	out.data = append(out.data, c.data[begin*c.width:(begin+n)*c.width]...)
	return out, nil
}

func (c *ColDecimal) CloneEmpty() Column { return NewColDecimal(c.precision, c.scale) }

func (c *ColDecimal) AppendColumn(other Column) error {
	o, ok := other.(*ColDecimal)
	if !ok {
		return typeMismatch(c, other)
	}
	if o.width != c.width || o.scale != c.scale {
		return chx.Newf(chx.KindTypeMismatch, "append_column: %s is not %s", other.Type(), c.Type())
	}
	c.data = append(c.data, o.data...)
	return nil
}

func (c *ColDecimal) EncodeColumn(b *Buffer) { b.Buf = append(b.Buf, c.data...) }
func (c *ColDecimal) WriteColumn(w *Writer)  { writeColumn(w, c.EncodeColumn) }

func (c *ColDecimal) DecodeColumn(r *Reader, rows int) error {
	if err := checkRows(rows); err != nil {
		return err
	}
	c.data = make([]byte, rows*c.width)
	if len(c.data) == 0 {
		return nil
	}
	return r.ReadFull(c.data)
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
