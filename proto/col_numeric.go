package proto

// numericCodec supplies the per-type width and little-endian encode/decode
// used by numericColumn; one codec value is shared by every column of a
// given Go type, so the generic column body does not need a runtime type
// switch to know how wide or how to serialize T.
type numericCodec[T any] struct {
	width int
	get   func(b []byte) T
	put   func(b []byte, v T)
}

// numericColumn is the fixed-width vector column kind (spec.md §4.5): rows
// are laid out back to back with no length prefix, one codec.width bytes
// per row.
type numericColumn[T any] struct {
	data  []T
	typ   ColumnType
	codec numericCodec[T]
}

func newNumericColumn[T any](typ ColumnType, codec numericCodec[T]) *numericColumn[T] {
	return &numericColumn[T]{typ: typ, codec: codec}
}

func (c *numericColumn[T]) Type() ColumnType { return c.typ }
func (c *numericColumn[T]) Rows() int        { return len(c.data) }
func (c *numericColumn[T]) Reset()           { c.data = c.data[:0] }
func (c *numericColumn[T]) Row(i int) T      { return c.data[i] }
func (c *numericColumn[T]) Append(v T)       { c.data = append(c.data, v) }

func (c *numericColumn[T]) AppendArr(vs []T) { c.data = append(c.data, vs...) }

func (c *numericColumn[T]) Reserve(n int) {
	if cap(c.data)-len(c.data) < n {
		grown := make([]T, len(c.data), len(c.data)+n)
		copy(grown, c.data)
		c.data = grown
	}
}

// sliceData returns a copy of the [begin, begin+n) row range, shared by
// every numericColumn-backed kind's Slice implementation.
func (c *numericColumn[T]) sliceData(begin, n int) ([]T, error) {
	if err := checkSlice(begin, n, len(c.data)); err != nil {
		return nil, err
	}
	out := make([]T, n)
	copy(out, c.data[begin:begin+n])
	return out, nil
}

func (c *numericColumn[T]) EncodeColumn(b *Buffer) {
	if len(c.data) == 0 {
		return
	}
	offset := len(b.Buf)
	b.Buf = append(b.Buf, make([]byte, len(c.data)*c.codec.width)...)
	for i, v := range c.data {
		c.codec.put(b.Buf[offset+i*c.codec.width:], v)
	}
}

func (c *numericColumn[T]) WriteColumn(w *Writer) { writeColumn(w, c.EncodeColumn) }

func (c *numericColumn[T]) DecodeColumn(r *Reader, rows int) error {
	if err := checkRows(rows); err != nil {
		return err
	}
	c.data = make([]T, rows)
	if rows == 0 {
		return nil
	}
	buf := make([]byte, rows*c.codec.width)
	if err := r.ReadFull(buf); err != nil {
		return err
	}
	for i := range c.data {
		c.data[i] = c.codec.get(buf[i*c.codec.width:])
	}
	return nil
}
