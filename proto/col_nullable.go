package proto

import "github.com/nativeclick/ch-native/internal/chx"

// ColNullable wraps an inner Column, prefixing each row with a one-byte
// null mask (spec.md §4.5). The inner column still carries a value for
// null rows — callers should not rely on its content for null positions.
type ColNullable struct {
	inner Column
	nulls []bool
}

// NewColNullable wraps inner as Nullable(inner.Type()). ClickHouse forbids
// Nullable from wrapping Array, Map, LowCardinality or another Nullable
// (a nullable low-cardinality string is expressed as
// LowCardinality(Nullable(String)), never the reverse).
func NewColNullable(inner Column) (*ColNullable, error) {
	switch inner.Type().Base() {
	case ColumnTypeArray, ColumnTypeMap, ColumnTypeLowCardinality, ColumnTypeNullable:
		return nil, chx.Newf(chx.KindInvalidArg, "Nullable cannot wrap %s", inner.Type())
	}
	return &ColNullable{inner: inner}, nil
}

func (c *ColNullable) Type() ColumnType { return ColumnTypeNullable.Sub(c.inner.Type()) }
func (c *ColNullable) Rows() int        { return len(c.nulls) }
func (c *ColNullable) Reset() {
	c.nulls = c.nulls[:0]
	c.inner.Reset()
}

// NullableRow returns whether row i is null.
func (c *ColNullable) NullableRow(i int) bool { return c.nulls[i] }

// Inner returns the wrapped column, for typed row access by the caller.
func (c *ColNullable) Inner() Column { return c.inner }

// EncodePrefix forwards to Inner's prefix, if it has one (e.g. a nested
// Tuple carrying a LowCardinality element).
func (c *ColNullable) EncodePrefix(b *Buffer, rows int) {
	if p, ok := c.inner.(Preparable); ok {
		p.EncodePrefix(b, rows)
	}
}

// DecodePrefix is EncodePrefix's decode-side counterpart.
func (c *ColNullable) DecodePrefix(r *Reader, rows int) error {
	if p, ok := c.inner.(Preparable); ok {
		return p.DecodePrefix(r, rows)
	}
	return nil
}

// AppendNull appends a null row. Inner still needs a placeholder value
// (its own zero value works) to keep its row count in step with c's.
func (c *ColNullable) AppendNull() { c.nulls = append(c.nulls, true) }

// AppendNonNull records a non-null row after the caller has appended the
// value itself to Inner().
func (c *ColNullable) AppendNonNull() { c.nulls = append(c.nulls, false) }

func (c *ColNullable) Slice(begin, n int) (Column, error) {
	if err := checkSlice(begin, n, len(c.nulls)); err != nil {
		return nil, err
	}
	inner, err := c.inner.Slice(begin, n)
	if err != nil {
		return nil, err
	}
	out := &ColNullable{inner: inner, nulls: make([]bool, n)}
	copy(out.nulls, c.nulls[begin:begin+n])
	return out, nil
}

func (c *ColNullable) CloneEmpty() Column {
	return &ColNullable{inner: c.inner.CloneEmpty()}
}

func (c *ColNullable) AppendColumn(other Column) error {
	o, ok := other.(*ColNullable)
	if !ok {
		return typeMismatch(c, other)
	}
	if err := c.inner.AppendColumn(o.inner); err != nil {
		return err
	}
	c.nulls = append(c.nulls, o.nulls...)
	return nil
}

func (c *ColNullable) EncodeColumn(b *Buffer) {
	for _, n := range c.nulls {
		if n {
			b.PutByte(1)
		} else {
			b.PutByte(0)
		}
	}
	c.inner.EncodeColumn(b)
}

func (c *ColNullable) WriteColumn(w *Writer) { writeColumn(w, c.EncodeColumn) }

func (c *ColNullable) DecodeColumn(r *Reader, rows int) error {
	if err := checkRows(rows); err != nil {
		return err
	}
	c.nulls = make([]bool, rows)
	for i := range c.nulls {
		b, err := r.Byte()
		if err != nil {
			return err
		}
		c.nulls[i] = b != 0
	}
	return c.inner.DecodeColumn(r, rows)
}
