package proto

import "github.com/nativeclick/ch-native/internal/chx"

// ColArr is a column of Array(inner) values. Rows are stored as a single
// set of cumulative offsets (offsets[i] is the total element count across
// rows 0..i) plus the inner column holding every element of every row
// concatenated. Offsets are varints on this core's single unified
// read/write path (spec.md §4.5's "parse_from_buffer" convention) — this
// client never implements the alternate non-rewindable u64-LE skip path,
// since every read here goes through a fully buffered block.
type ColArr struct {
	inner   Column
	offsets []uint64
}

// NewColArr wraps inner as Array(inner.Type()).
func NewColArr(inner Column) *ColArr {
	return &ColArr{inner: inner}
}

func (c *ColArr) Type() ColumnType { return ColumnTypeArray.Sub(c.inner.Type()) }
func (c *ColArr) Rows() int        { return len(c.offsets) }
func (c *ColArr) Reset() {
	c.offsets = c.offsets[:0]
	c.inner.Reset()
}

// Bounds returns the [begin, end) element range for row i within Inner.
func (c *ColArr) Bounds(i int) (begin, end int) {
	if i == 0 {
		return 0, int(c.offsets[0])
	}
	return int(c.offsets[i-1]), int(c.offsets[i])
}

// Inner returns the backing element column.
func (c *ColArr) Inner() Column { return c.inner }

// AppendOffset closes the current row after its elements have been
// appended to Inner(), recording the cumulative element count so far —
// the array-building counterpart to DecodeColumn's offset reconstruction.
func (c *ColArr) AppendOffset() {
	c.offsets = append(c.offsets, uint64(c.inner.Rows()))
}

// EncodePrefix delegates to Inner's prefix, if it has one (e.g. a
// LowCardinality dictionary version marker). This must run before the
// array's own offsets are written: for Array(LowCardinality(X)) the
// version marker precedes the offsets on the wire, the reverse of the
// order EncodeColumn's own body is written in
// (original_source/src/column/array.rs's save_prefix).
func (c *ColArr) EncodePrefix(b *Buffer, rows int) {
	if p, ok := c.inner.(Preparable); ok {
		p.EncodePrefix(b, rows)
	}
}

// DecodePrefix is EncodePrefix's decode-side counterpart.
func (c *ColArr) DecodePrefix(r *Reader, rows int) error {
	if p, ok := c.inner.(Preparable); ok {
		return p.DecodePrefix(r, rows)
	}
	return nil
}

func (c *ColArr) Slice(begin, n int) (Column, error) {
	if err := checkSlice(begin, n, len(c.offsets)); err != nil {
		return nil, err
	}
	elemBegin := 0
	if begin > 0 {
		elemBegin = int(c.offsets[begin-1])
	}
	elemEnd := 0
	if begin+n > 0 {
		elemEnd = int(c.offsets[begin+n-1])
	}
	inner, err := c.inner.Slice(elemBegin, elemEnd-elemBegin)
	if err != nil {
		return nil, err
	}
	out := &ColArr{inner: inner, offsets: make([]uint64, n)}
	for i := range out.offsets {
		out.offsets[i] = c.offsets[begin+i] - uint64(elemBegin)
	}
	return out, nil
}

func (c *ColArr) CloneEmpty() Column { return NewColArr(c.inner.CloneEmpty()) }

func (c *ColArr) AppendColumn(other Column) error {
	o, ok := other.(*ColArr)
	if !ok {
		return typeMismatch(c, other)
	}
	if err := c.inner.AppendColumn(o.inner); err != nil {
		return err
	}
	base := uint64(0)
	if len(c.offsets) > 0 {
		base = c.offsets[len(c.offsets)-1]
	}
	for _, off := range o.offsets {
		c.offsets = append(c.offsets, base+off)
	}
	return nil
}

func (c *ColArr) EncodeColumn(b *Buffer) {
	for _, off := range c.offsets {
		b.PutUVarInt(off)
	}
	c.inner.EncodeColumn(b)
}

func (c *ColArr) WriteColumn(w *Writer) { writeColumn(w, c.EncodeColumn) }

func (c *ColArr) DecodeColumn(r *Reader, rows int) error {
	if err := checkRows(rows); err != nil {
		return err
	}
	c.offsets = make([]uint64, rows)
	var prev uint64
	for i := range c.offsets {
		off, err := r.UVarInt()
		if err != nil {
			return err
		}
		if off < prev {
			return chx.New(chx.KindProtocol, "array offsets must be non-decreasing")
		}
		c.offsets[i] = off
		prev = off
	}
	total := 0
	if rows > 0 {
		total = int(c.offsets[rows-1])
	}
	return c.inner.DecodeColumn(r, total)
}
