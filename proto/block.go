package proto

import "github.com/nativeclick/ch-native/internal/chx"

// ColumnEntry is one named column within a Block.
type ColumnEntry struct {
	Name string
	Data Column
}

// Block is an ordered set of named columns sharing a row count, plus the
// optional BlockInfo preamble (spec.md §3.4). The zero value is an empty
// block, which also serves as the end-of-stream sentinel for insert data.
type Block struct {
	Info    BlockInfo
	Columns []ColumnEntry
	Rows    int
}

// End reports whether b is the empty block (zero columns or zero rows),
// the end-of-stream sentinel on the wire for insert data.
func (b *Block) End() bool {
	return len(b.Columns) == 0 || b.Rows == 0
}

// Append adds a named column to the block, failing with a Validation error
// if its row count disagrees with columns already present.
func (b *Block) Append(name string, col Column) error {
	if len(b.Columns) > 0 && col.Rows() != b.Rows {
		return chx.Newf(chx.KindValidation, "column %q has %d rows, block has %d", name, col.Rows(), b.Rows)
	}
	if len(b.Columns) == 0 {
		b.Rows = col.Rows()
	}
	b.Columns = append(b.Columns, ColumnEntry{Name: name, Data: col})
	return nil
}

// ColumnNames returns the block's column names in order.
func (b *Block) ColumnNames() []string {
	names := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		names[i] = c.Name
	}
	return names
}

// EncodeBlock writes b to buf per the block-stream wire format (spec.md
// §4.6), gated by the negotiated server revision.
func (b *Block) EncodeBlock(buf *Buffer, revision int) {
	b.Info.EncodeAware(buf, revision)
	buf.PutUVarInt(uint64(len(b.Columns)))
	buf.PutUVarInt(uint64(b.Rows))
	for _, c := range b.Columns {
		buf.PutString(c.Name)
		buf.PutString(string(c.Data.Type()))
		if FeatureCustomSerialization.In(revision) {
			buf.PutByte(0)
		}
		if p, ok := c.Data.(Preparable); ok {
			p.EncodePrefix(buf, b.Rows)
		}
		if b.Rows > 0 {
			c.Data.EncodeColumn(buf)
		}
	}
}

// DecodeBlock reads a Block from r per the block-stream wire format. When
// result is non-nil, it controls how each named column is materialized
// (see Result); a nil result constructs a fresh Column from the
// server-reported type name for every column.
func (b *Block) DecodeBlock(r *Reader, revision int, result Result) error {
	if err := b.Info.DecodeAware(r, revision); err != nil {
		return err
	}
	nCols, err := r.Int()
	if err != nil {
		return err
	}
	nRows, err := r.Int()
	if err != nil {
		return err
	}
	b.Columns = make([]ColumnEntry, 0, nCols)
	b.Rows = nRows
	for i := 0; i < nCols; i++ {
		name, err := r.Str()
		if err != nil {
			return err
		}
		typeName, err := r.Str()
		if err != nil {
			return err
		}
		if FeatureCustomSerialization.In(revision) {
			flag, err := r.Byte()
			if err != nil {
				return err
			}
			if flag != 0 {
				return chx.New(chx.KindNotImplemented, "custom column serialization not supported")
			}
		}
		col, err := resolveResultColumn(result, name, typeName)
		if err != nil {
			return err
		}
		if p, ok := col.(Preparable); ok {
			if err := p.DecodePrefix(r, nRows); err != nil {
				return err
			}
		}
		if nRows > 0 {
			if err := col.DecodeColumn(r, nRows); err != nil {
				return err
			}
		}
		b.Columns = append(b.Columns, ColumnEntry{Name: name, Data: col})
	}
	return nil
}
