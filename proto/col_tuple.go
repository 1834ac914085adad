package proto

import "github.com/nativeclick/ch-native/internal/chx"

// ColTuple is a column of Tuple(t1, ..., tn) values, stored as the element
// columns' bodies concatenated one after another (spec.md §4.5); there is
// no separate framing for the tuple itself.
type ColTuple struct {
	elems []Column
	rows  int
}

// NewColTuple wraps elems as Tuple(elems[0].Type(), ...).
func NewColTuple(elems ...Column) *ColTuple {
	return &ColTuple{elems: elems}
}

func (c *ColTuple) Type() ColumnType {
	out := ColumnTypeTuple
	params := ""
	for i, e := range c.elems {
		if i > 0 {
			params += ", "
		}
		params += string(e.Type())
	}
	return out.With(params)
}

func (c *ColTuple) Rows() int { return c.rows }
func (c *ColTuple) Reset() {
	c.rows = 0
	for _, e := range c.elems {
		e.Reset()
	}
}

// Elem returns the i-th element column.
func (c *ColTuple) Elem(i int) Column { return c.elems[i] }

// EncodePrefix runs every element's prefix in order, e.g. for
// Tuple(LowCardinality(String), Int32) the String dictionary's version
// marker is written before any element body.
func (c *ColTuple) EncodePrefix(b *Buffer, rows int) {
	for _, e := range c.elems {
		if p, ok := e.(Preparable); ok {
			p.EncodePrefix(b, rows)
		}
	}
}

// DecodePrefix is EncodePrefix's decode-side counterpart.
func (c *ColTuple) DecodePrefix(r *Reader, rows int) error {
	for _, e := range c.elems {
		if p, ok := e.(Preparable); ok {
			if err := p.DecodePrefix(r, rows); err != nil {
				return err
			}
		}
	}
	return nil
}

// AppendRow closes the current row once the caller has appended one value
// to every element column returned by Elem, validating that each element
// actually grew by exactly one row (the same row-count check Block.Append
// uses across a whole block, applied here across a tuple's elements).
func (c *ColTuple) AppendRow() error {
	for i, e := range c.elems {
		if e.Rows() != c.rows+1 {
			return chx.Newf(chx.KindValidation, "tuple element %d has %d rows, expected %d", i, e.Rows(), c.rows+1)
		}
	}
	c.rows++
	return nil
}

func (c *ColTuple) Slice(begin, n int) (Column, error) {
	if err := checkSlice(begin, n, c.rows); err != nil {
		return nil, err
	}
	out := &ColTuple{elems: make([]Column, len(c.elems)), rows: n}
	for i, e := range c.elems {
		s, err := e.Slice(begin, n)
		if err != nil {
			return nil, err
		}
		out.elems[i] = s
	}
	return out, nil
}

func (c *ColTuple) CloneEmpty() Column {
	elems := make([]Column, len(c.elems))
	for i, e := range c.elems {
		elems[i] = e.CloneEmpty()
	}
	return &ColTuple{elems: elems}
}

func (c *ColTuple) AppendColumn(other Column) error {
	o, ok := other.(*ColTuple)
	if !ok {
		return typeMismatch(c, other)
	}
	if len(o.elems) != len(c.elems) {
		return typeMismatch(c, other)
	}
	for i, e := range c.elems {
		if err := e.AppendColumn(o.elems[i]); err != nil {
			return err
		}
	}
	c.rows += o.rows
	return nil
}

func (c *ColTuple) EncodeColumn(b *Buffer) {
	for _, e := range c.elems {
		e.EncodeColumn(b)
	}
}

func (c *ColTuple) WriteColumn(w *Writer) { writeColumn(w, c.EncodeColumn) }

func (c *ColTuple) DecodeColumn(r *Reader, rows int) error {
	if err := checkRows(rows); err != nil {
		return err
	}
	if len(c.elems) == 0 {
		return chx.New(chx.KindProtocol, "tuple column has no elements")
	}
	for _, e := range c.elems {
		if err := e.DecodeColumn(r, rows); err != nil {
			return err
		}
	}
	c.rows = rows
	return nil
}

// ColMap is Map(key, value), serialized identically to
// Array(Tuple(key, value)): one set of cumulative offsets, then the
// concatenated (key, value) pairs (spec.md §4.5).
type ColMap struct {
	arr *ColArr
}

// NewColMap wraps key/value columns as Map(key.Type(), value.Type()).
func NewColMap(key, value Column) *ColMap {
	return &ColMap{arr: NewColArr(NewColTuple(key, value))}
}

func (c *ColMap) Type() ColumnType {
	tuple := c.arr.Inner().(*ColTuple)
	return ColumnTypeMap.With(string(tuple.Elem(0).Type()) + ", " + string(tuple.Elem(1).Type()))
}

func (c *ColMap) Rows() int                          { return c.arr.Rows() }
func (c *ColMap) Reset()                             { c.arr.Reset() }
func (c *ColMap) Bounds(i int) (begin, end int)       { return c.arr.Bounds(i) }
func (c *ColMap) EncodeColumn(b *Buffer)              { c.arr.EncodeColumn(b) }
func (c *ColMap) WriteColumn(w *Writer)               { writeColumn(w, c.EncodeColumn) }
func (c *ColMap) DecodeColumn(r *Reader, rows int) error {
	return c.arr.DecodeColumn(r, rows)
}

// Keys returns the backing key column.
func (c *ColMap) Keys() Column { return c.arr.Inner().(*ColTuple).Elem(0) }

// Values returns the backing value column.
func (c *ColMap) Values() Column { return c.arr.Inner().(*ColTuple).Elem(1) }

// AppendRow closes the current map row once the caller has appended each
// entry's key/value pair to Keys()/Values() directly.
func (c *ColMap) AppendRow() {
	c.arr.AppendOffset()
}

func (c *ColMap) EncodePrefix(b *Buffer, rows int) { c.arr.EncodePrefix(b, rows) }
func (c *ColMap) DecodePrefix(r *Reader, rows int) error { return c.arr.DecodePrefix(r, rows) }

func (c *ColMap) Slice(begin, n int) (Column, error) {
	s, err := c.arr.Slice(begin, n)
	if err != nil {
		return nil, err
	}
	return &ColMap{arr: s.(*ColArr)}, nil
}

func (c *ColMap) CloneEmpty() Column {
	return &ColMap{arr: c.arr.CloneEmpty().(*ColArr)}
}

func (c *ColMap) AppendColumn(other Column) error {
	o, ok := other.(*ColMap)
	if !ok {
		return typeMismatch(c, other)
	}
	return c.arr.AppendColumn(o.arr)
}
