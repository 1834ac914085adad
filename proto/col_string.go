package proto

import "github.com/nativeclick/ch-native/internal/chx"

// ColStr is a column of String values: each row is a varint length prefix
// followed by its raw UTF-8 bytes, per spec.md §4.5.
type ColStr struct {
	data []string
}

// NewColStr returns an empty String column.
func NewColStr() *ColStr { return &ColStr{} }

func (c *ColStr) Type() ColumnType { return ColumnTypeString }
func (c *ColStr) Rows() int        { return len(c.data) }
func (c *ColStr) Reset()           { c.data = c.data[:0] }
func (c *ColStr) Row(i int) string { return c.data[i] }
func (c *ColStr) Append(v string)  { c.data = append(c.data, v) }
func (c *ColStr) Reserve(n int) {
	if cap(c.data)-len(c.data) < n {
		grown := make([]string, len(c.data), len(c.data)+n)
		copy(grown, c.data)
		c.data = grown
	}
}

func (c *ColStr) Slice(begin, n int) (Column, error) {
	if err := checkSlice(begin, n, len(c.data)); err != nil {
		return nil, err
	}
	out := NewColStr()
	out.data = append(out.data, c.data[begin:begin+n]...)
	return out, nil
}

func (c *ColStr) CloneEmpty() Column { return NewColStr() }

func (c *ColStr) AppendColumn(other Column) error {
	o, ok := other.(*ColStr)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

func (c *ColStr) EncodeColumn(b *Buffer) {
	for _, v := range c.data {
		b.PutString(v)
	}
}

func (c *ColStr) WriteColumn(w *Writer) { writeColumn(w, c.EncodeColumn) }

func (c *ColStr) DecodeColumn(r *Reader, rows int) error {
	if err := checkRows(rows); err != nil {
		return err
	}
	c.data = make([]string, rows)
	for i := range c.data {
		v, err := r.Str()
		if err != nil {
			return err
		}
		c.data[i] = v
	}
	return nil
}

// ColFixedStr is a column of FixedString(n) values: every row occupies
// exactly n bytes, zero-padded, with no length prefix.
type ColFixedStr struct {
	data []byte
	size int
}

// NewColFixedStr returns an empty FixedString(size) column.
func NewColFixedStr(size int) *ColFixedStr { return &ColFixedStr{size: size} }

func (c *ColFixedStr) Type() ColumnType { return ColumnTypeFixedString.With(itoa64(int64(c.size))) }
func (c *ColFixedStr) Rows() int {
	if c.size == 0 {
		return 0
	}
	return len(c.data) / c.size
}
func (c *ColFixedStr) Reset() { c.data = c.data[:0] }

// Row returns a copy of row i's bytes.
func (c *ColFixedStr) Row(i int) []byte {
	out := make([]byte, c.size)
	copy(out, c.data[i*c.size:(i+1)*c.size])
	return out
}

// Append appends v, zero-padding or truncating to size, matching the
// server's own FixedString append semantics.
func (c *ColFixedStr) Append(v []byte) {
	row := make([]byte, c.size)
	copy(row, v)
	c.data = append(c.data, row...)
}

func (c *ColFixedStr) Slice(begin, n int) (Column, error) {
	if err := checkSlice(begin, n, c.Rows()); err != nil {
		return nil, err
	}
	out := NewColFixedStr(c.size)
	out.data = append(out.data, c.data[begin*c.size:(begin+n)*c.size]...)
	return out, nil
}

func (c *ColFixedStr) CloneEmpty() Column { return NewColFixedStr(c.size) }

func (c *ColFixedStr) AppendColumn(other Column) error {
	o, ok := other.(*ColFixedStr)
	if !ok {
		return typeMismatch(c, other)
	}
	if o.size != c.size {
		return chx.Newf(chx.KindTypeMismatch, "append_column: FixedString(%d) is not FixedString(%d)", o.size, c.size)
	}
	c.data = append(c.data, o.data...)
	return nil
}

func (c *ColFixedStr) EncodeColumn(b *Buffer) {
	b.Buf = append(b.Buf, c.data...)
}

func (c *ColFixedStr) WriteColumn(w *Writer) { writeColumn(w, c.EncodeColumn) }

func (c *ColFixedStr) DecodeColumn(r *Reader, rows int) error {
	if err := checkRows(rows); err != nil {
		return err
	}
	c.data = make([]byte, rows*c.size)
	if len(c.data) == 0 {
		return nil
	}
	return r.ReadFull(c.data)
}
