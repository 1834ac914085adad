package proto

import "encoding/binary"

// ColDateTime is a column of DateTime([tz]) values: a little-endian uint32
// of Unix seconds per row. The timezone, if any, is carried only in the
// column's Type name for display and is not part of the wire body.
type ColDateTime struct {
	numericColumn[uint32]
	tz string
}

// NewColDateTime returns an empty DateTime column, optionally with a named
// timezone.
func NewColDateTime(tz string) *ColDateTime {
	typ := ColumnTypeDateTime
	if tz != "" {
		typ = typ.With("'" + tz + "'")
	}
	return &ColDateTime{
		numericColumn: *newNumericColumn[uint32](typ, numericCodec[uint32]{
			width: 4,
			get:   binary.LittleEndian.Uint32,
			put:   func(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) },
		}),
		tz: tz,
	}
}

func (c *ColDateTime) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColDateTime(c.tz)
	out.data = data
	return out, nil
}
func (c *ColDateTime) CloneEmpty() Column { return NewColDateTime(c.tz) }
func (c *ColDateTime) AppendColumn(other Column) error {
	o, ok := other.(*ColDateTime)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColDateTime64 is a column of DateTime64(precision[, tz]) values: a
// little-endian int64 of ticks (10^precision subsecond units) since the
// Unix epoch per row.
type ColDateTime64 struct {
	numericColumn[int64]
	precision int
	tz        string
}

// NewColDateTime64 returns an empty DateTime64(precision[, tz]) column.
func NewColDateTime64(precision int, tz string) *ColDateTime64 {
	params := itoa64(int64(precision))
	if tz != "" {
		params += ", '" + tz + "'"
	}
	return &ColDateTime64{
		numericColumn: *newNumericColumn[int64](ColumnTypeDateTime64.With(params), numericCodec[int64]{
			width: 8,
			get:   func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) },
			put:   func(b []byte, v int64) { binary.LittleEndian.PutUint64(b, uint64(v)) },
		}),
		precision: precision,
		tz:        tz,
	}
}

func (c *ColDateTime64) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColDateTime64(c.precision, c.tz)
	out.data = data
	return out, nil
}
func (c *ColDateTime64) CloneEmpty() Column { return NewColDateTime64(c.precision, c.tz) }
func (c *ColDateTime64) AppendColumn(other Column) error {
	o, ok := other.(*ColDateTime64)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColUUID is a column of UUID values: 16 bytes per row, the wire layout
// used by ClickHouse (two little-endian uint64 halves, not RFC 4122 byte
// order).
type ColUUID struct {
	numericColumn[[2]uint64]
}

// NewColUUID returns an empty UUID column.
func NewColUUID() *ColUUID {
	return &ColUUID{*newNumericColumn[[2]uint64](ColumnTypeUUID, numericCodec[[2]uint64]{
		width: 16,
		get: func(b []byte) [2]uint64 {
			return [2]uint64{binary.LittleEndian.Uint64(b[0:8]), binary.LittleEndian.Uint64(b[8:16])}
		},
		put: func(b []byte, v [2]uint64) {
			binary.LittleEndian.PutUint64(b[0:8], v[0])
			binary.LittleEndian.PutUint64(b[8:16], v[1])
		},
	})}
}

func (c *ColUUID) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColUUID()
	out.data = data
	return out, nil
}
func (c *ColUUID) CloneEmpty() Column { return NewColUUID() }
func (c *ColUUID) AppendColumn(other Column) error {
	o, ok := other.(*ColUUID)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColIPv4 is a column of IPv4 values: a little-endian uint32 per row.
type ColIPv4 struct{ numericColumn[uint32] }

// NewColIPv4 returns an empty IPv4 column.
func NewColIPv4() *ColIPv4 {
	return &ColIPv4{*newNumericColumn[uint32](ColumnTypeIPv4, numericCodec[uint32]{
		width: 4,
		get:   binary.LittleEndian.Uint32,
		put:   func(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) },
	})}
}

func (c *ColIPv4) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColIPv4()
	out.data = data
	return out, nil
}
func (c *ColIPv4) CloneEmpty() Column { return NewColIPv4() }
func (c *ColIPv4) AppendColumn(other Column) error {
	o, ok := other.(*ColIPv4)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColIPv6 is a column of IPv6 values: 16 raw address bytes per row.
type ColIPv6 struct{ numericColumn[[16]byte] }

// NewColIPv6 returns an empty IPv6 column.
func NewColIPv6() *ColIPv6 {
	return &ColIPv6{*newNumericColumn[[16]byte](ColumnTypeIPv6, numericCodec[[16]byte]{
		width: 16,
		get:   func(b []byte) (v [16]byte) { copy(v[:], b[:16]); return },
		put:   func(b []byte, v [16]byte) { copy(b[:16], v[:]) },
	})}
}

func (c *ColIPv6) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColIPv6()
	out.data = data
	return out, nil
}
func (c *ColIPv6) CloneEmpty() Column { return NewColIPv6() }
func (c *ColIPv6) AppendColumn(other Column) error {
	o, ok := other.(*ColIPv6)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}
