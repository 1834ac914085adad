package proto

import "github.com/nativeclick/ch-native/internal/chx"

// Column is the common contract every column kind satisfies: encode/decode
// its wire representation, report its row count, reset/grow for reuse
// across blocks, and slice/clone/merge for the block-fragmentation and
// insert-building paths, per spec.md §3.3 and §4.5.
type Column interface {
	Type() ColumnType
	Rows() int
	Reset()
	EncodeColumn(b *Buffer)
	DecodeColumn(r *Reader, rows int) error
	WriteColumn(w *Writer)

	// Slice returns the [begin, begin+n) row range as a new column of the
	// same concrete kind, failing with KindInvalidArg if the range is out
	// of bounds.
	Slice(begin, n int) (Column, error)
	// CloneEmpty returns a new, zero-row column of the same concrete kind
	// and type parameters (width, scale, timezone, enum members, ...).
	CloneEmpty() Column
	// AppendColumn appends other's rows to this column, failing with
	// KindTypeMismatch if other is not the same concrete kind.
	AppendColumn(other Column) error
}

// ColInput is the subset of Column exercised by a query's input columns.
type ColInput interface {
	EncodeColumn(b *Buffer)
	WriteColumn(w *Writer)
}

// ColumnOf is satisfied by a Column whose rows can be read back as Go
// values of type T.
type ColumnOf[T any] interface {
	Column
	Row(i int) T
}

// writeColumn is the common WriteColumn body: queue the column's encoded
// bytes on the writer's scratch buffer without flushing, so a caller can
// batch several columns before one Flush.
func writeColumn(w *Writer, encode func(b *Buffer)) {
	w.ChainBuffer(encode)
}

// Preparable is implemented by columns whose wire form needs an
// encoder/decoder-side prefix beyond the bare column body. LowCardinality
// writes its dictionary version; Array, Nullable, Tuple and Map implement it
// by forwarding to their element columns.
type Preparable interface {
	EncodePrefix(b *Buffer, rows int)
	DecodePrefix(r *Reader, rows int) error
}

// Arrayable is implemented by columns that can report/consume per-row
// element counts for use as an Array's backing column.
type Arrayable interface {
	Column
	Reserve(n int)
}

// checkRows fails fast on a negative (corrupt) row count before an
// allocation proportional to it is attempted; it sets no upper bound.
func checkRows(rows int) error {
	if rows < 0 {
		return chx.Newf(chx.KindProtocol, "negative row count %d", rows)
	}
	return nil
}

// checkSlice validates a Slice(begin, n) request against size, the
// column's current row count.
func checkSlice(begin, n, size int) error {
	if begin < 0 || n < 0 || begin+n > size {
		return chx.Newf(chx.KindInvalidArg, "slice out of bounds: begin=%d, n=%d, size=%d", begin, n, size)
	}
	return nil
}

// typeMismatch builds the AppendColumn error for a concrete-kind mismatch.
func typeMismatch(want Column, got Column) error {
	return chx.Newf(chx.KindTypeMismatch, "append_column: column is %T, other is %T", want, got)
}
