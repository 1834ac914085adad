package proto

import (
	"github.com/go-faster/city"

	"github.com/nativeclick/ch-native/internal/chx"
)

// lowCardinalityVersion is the only dictionary-format version this core
// writes and accepts, per spec.md's simplified LowCardinality contract
// (see DESIGN.md for why the server's richer index-width-negotiated format
// is out of scope).
const lowCardinalityVersion = 1

// dictKey is the dual 64-bit hash of a dictionary candidate's encoded row
// bytes (spec.md §4.5), computed with the same CityHash variant this core
// already uses for compression checksums (compress/checksum.go).
type dictKey struct{ h1, h2 uint64 }

func hashDictKey(b []byte) dictKey {
	u := city.CH128(b)
	return dictKey{h1: u.Low, h2: u.High}
}

// ColLowCardinality is a column of LowCardinality(inner) values: a version
// marker, the distinct-value dictionary (itself an `inner`-typed column),
// and one UInt64 index per row into that dictionary (spec.md §4.5). The
// dictionary is append-only: AppendDict deduplicates candidate rows via a
// dual-hash lookup before growing it, so a LowCardinality column can be
// built for insert rather than only ever decoded off the wire.
type ColLowCardinality struct {
	dict    Column
	indices []uint64
	unique  map[dictKey]uint64
}

// NewColLowCardinality wraps inner as the dictionary's element column.
func NewColLowCardinality(inner Column) *ColLowCardinality {
	return &ColLowCardinality{dict: inner, unique: make(map[dictKey]uint64)}
}

func (c *ColLowCardinality) Type() ColumnType {
	return ColumnTypeLowCardinality.Sub(c.dict.Type())
}

func (c *ColLowCardinality) Rows() int { return len(c.indices) }
func (c *ColLowCardinality) Reset() {
	c.indices = c.indices[:0]
	for k := range c.unique {
		delete(c.unique, k)
	}
	c.dict.Reset()
}

// Dict returns the backing dictionary column.
func (c *ColLowCardinality) Dict() Column { return c.dict }

// Index returns row i's index into Dict.
func (c *ColLowCardinality) Index(i int) uint64 { return c.indices[i] }

// AppendDict appends one row for this column's index list, deduplicating
// against the dictionary built so far. candidate must be a one-row column
// of the same kind as Dict (build it via Dict().CloneEmpty() and a single
// typed Append); its encoded bytes are hashed with a dual 64-bit CityHash
// (spec.md §4.5) to detect an existing dictionary entry before growing the
// dictionary.
func (c *ColLowCardinality) AppendDict(candidate Column) error {
	if candidate.Rows() != 1 {
		return chx.Newf(chx.KindInvalidArg, "AppendDict expects exactly one row, got %d", candidate.Rows())
	}
	idx, err := c.mergeDictRow(candidate)
	if err != nil {
		return err
	}
	c.indices = append(c.indices, idx)
	return nil
}

func (c *ColLowCardinality) EncodePrefix(b *Buffer, rows int) { b.PutUInt64(lowCardinalityVersion) }

func (c *ColLowCardinality) DecodePrefix(r *Reader, rows int) error {
	version, err := r.UInt64()
	if err != nil {
		return err
	}
	if version != lowCardinalityVersion {
		return chx.Newf(chx.KindNotImplemented, "unsupported LowCardinality dictionary version %d", version)
	}
	return nil
}

func (c *ColLowCardinality) EncodeColumn(b *Buffer) {
	b.PutUInt64(uint64(c.dict.Rows()))
	c.dict.EncodeColumn(b)
	for _, idx := range c.indices {
		b.PutUInt64(idx)
	}
}

func (c *ColLowCardinality) WriteColumn(w *Writer) { writeColumn(w, c.EncodeColumn) }

func (c *ColLowCardinality) DecodeColumn(r *Reader, rows int) error {
	if err := checkRows(rows); err != nil {
		return err
	}
	dictSize, err := r.UInt64()
	if err != nil {
		return err
	}
	if err := c.dict.DecodeColumn(r, int(dictSize)); err != nil {
		return err
	}
	c.indices = make([]uint64, rows)
	for i := range c.indices {
		idx, err := r.UInt64()
		if err != nil {
			return err
		}
		if idx >= dictSize {
			return chx.Newf(chx.KindProtocol, "LowCardinality index %d out of range [0,%d)", idx, dictSize)
		}
		c.indices[i] = idx
	}
	return nil
}

func (c *ColLowCardinality) Slice(begin, n int) (Column, error) {
	if err := checkSlice(begin, n, len(c.indices)); err != nil {
		return nil, err
	}
	out := NewColLowCardinality(c.dict)
	out.indices = append(out.indices, c.indices[begin:begin+n]...)
	for k, v := range c.unique {
		out.unique[k] = v
	}
	return out, nil
}

// CloneEmpty returns a new LowCardinality column with a fresh, empty
// dictionary of the same element type; c's dictionary is not copied.
func (c *ColLowCardinality) CloneEmpty() Column { return NewColLowCardinality(c.dict.CloneEmpty()) }

// AppendColumn merges other's dictionary into c's (deduplicating via the
// same dual-hash lookup AppendDict uses) and appends other's rows,
// translated through the merged dictionary's indices.
func (c *ColLowCardinality) AppendColumn(other Column) error {
	o, ok := other.(*ColLowCardinality)
	if !ok {
		return typeMismatch(c, other)
	}
	remap := make([]uint64, o.dict.Rows())
	for i := range remap {
		row, err := o.dict.Slice(i, 1)
		if err != nil {
			return err
		}
		idx, err := c.mergeDictRow(row)
		if err != nil {
			return err
		}
		remap[i] = idx
	}
	for _, idx := range o.indices {
		c.indices = append(c.indices, remap[idx])
	}
	return nil
}

// mergeDictRow adds row (a one-row column of Dict's kind) to the
// dictionary if no equal entry exists yet, and returns its index either
// way. Unlike AppendDict, it does not record a row on this column's own
// index list.
func (c *ColLowCardinality) mergeDictRow(row Column) (uint64, error) {
	var buf Buffer
	row.EncodeColumn(&buf)
	key := hashDictKey(buf.Buf)
	if idx, ok := c.unique[key]; ok {
		return idx, nil
	}
	idx := uint64(c.dict.Rows())
	if err := c.dict.AppendColumn(row); err != nil {
		return 0, err
	}
	c.unique[key] = idx
	return idx, nil
}

// ColNothing is the zero-width Nothing column: its body is padding only,
// never read back as a value (spec.md §4.5).
type ColNothing struct {
	rows int
}

// NewColNothing returns an empty Nothing column.
func NewColNothing() *ColNothing { return &ColNothing{} }

func (c *ColNothing) Type() ColumnType { return ColumnTypeNothing }
func (c *ColNothing) Rows() int        { return c.rows }
func (c *ColNothing) Reset()           { c.rows = 0 }

// EncodeColumn panics for a nonempty Nothing column: spec.md §4.5 forbids
// serializing a Nothing column's body, and EncodeColumn has no error
// return to fail through. A zero-row Nothing column encodes to nothing,
// which is always safe.
func (c *ColNothing) EncodeColumn(b *Buffer) {
	if c.rows > 0 {
		panic(chx.Newf(chx.KindProtocol, "Nothing column body cannot be serialized (%d rows)", c.rows))
	}
}

func (c *ColNothing) WriteColumn(w *Writer) { writeColumn(w, c.EncodeColumn) }
func (c *ColNothing) DecodeColumn(r *Reader, rows int) error {
	if err := checkRows(rows); err != nil {
		return err
	}
	if rows > 0 {
		// One padding byte per row; the values are discarded.
		if err := r.ReadFull(make([]byte, rows)); err != nil {
			return err
		}
	}
	c.rows = rows
	return nil
}

func (c *ColNothing) Slice(begin, n int) (Column, error) {
	if err := checkSlice(begin, n, c.rows); err != nil {
		return nil, err
	}
	return &ColNothing{rows: n}, nil
}

func (c *ColNothing) CloneEmpty() Column { return NewColNothing() }

func (c *ColNothing) AppendColumn(other Column) error {
	o, ok := other.(*ColNothing)
	if !ok {
		return typeMismatch(c, other)
	}
	c.rows += o.rows
	return nil
}
