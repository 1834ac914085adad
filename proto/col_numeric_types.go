package proto

import (
	"encoding/binary"
	"math"
)

// ColInt8 is a column of Int8 values.
type ColInt8 struct{ numericColumn[int8] }

// NewColInt8 returns an empty Int8 column.
func NewColInt8() *ColInt8 {
	return &ColInt8{*newNumericColumn[int8](ColumnTypeInt8, numericCodec[int8]{
		width: 1,
		get:   func(b []byte) int8 { return int8(b[0]) },
		put:   func(b []byte, v int8) { b[0] = byte(v) },
	})}
}

func (c *ColInt8) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColInt8()
	out.data = data
	return out, nil
}
func (c *ColInt8) CloneEmpty() Column { return NewColInt8() }
func (c *ColInt8) AppendColumn(other Column) error {
	o, ok := other.(*ColInt8)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColUInt8 is a column of UInt8 values.
type ColUInt8 struct{ numericColumn[uint8] }

// NewColUInt8 returns an empty UInt8 column.
func NewColUInt8() *ColUInt8 {
	return &ColUInt8{*newNumericColumn[uint8](ColumnTypeUInt8, numericCodec[uint8]{
		width: 1,
		get:   func(b []byte) uint8 { return b[0] },
		put:   func(b []byte, v uint8) { b[0] = v },
	})}
}

func (c *ColUInt8) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColUInt8()
	out.data = data
	return out, nil
}
func (c *ColUInt8) CloneEmpty() Column { return NewColUInt8() }
func (c *ColUInt8) AppendColumn(other Column) error {
	o, ok := other.(*ColUInt8)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColInt16 is a column of Int16 values.
type ColInt16 struct{ numericColumn[int16] }

// NewColInt16 returns an empty Int16 column.
func NewColInt16() *ColInt16 {
	return &ColInt16{*newNumericColumn[int16](ColumnTypeInt16, numericCodec[int16]{
		width: 2,
		get:   func(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) },
		put:   func(b []byte, v int16) { binary.LittleEndian.PutUint16(b, uint16(v)) },
	})}
}

func (c *ColInt16) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColInt16()
	out.data = data
	return out, nil
}
func (c *ColInt16) CloneEmpty() Column { return NewColInt16() }
func (c *ColInt16) AppendColumn(other Column) error {
	o, ok := other.(*ColInt16)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColUInt16 is a column of UInt16 values.
type ColUInt16 struct{ numericColumn[uint16] }

// NewColUInt16 returns an empty UInt16 column.
func NewColUInt16() *ColUInt16 {
	return &ColUInt16{*newNumericColumn[uint16](ColumnTypeUInt16, numericCodec[uint16]{
		width: 2,
		get:   binary.LittleEndian.Uint16,
		put:   func(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) },
	})}
}

func (c *ColUInt16) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColUInt16()
	out.data = data
	return out, nil
}
func (c *ColUInt16) CloneEmpty() Column { return NewColUInt16() }
func (c *ColUInt16) AppendColumn(other Column) error {
	o, ok := other.(*ColUInt16)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColInt32 is a column of Int32 values.
type ColInt32 struct{ numericColumn[int32] }

// NewColInt32 returns an empty Int32 column.
func NewColInt32() *ColInt32 {
	return &ColInt32{*newNumericColumn[int32](ColumnTypeInt32, numericCodec[int32]{
		width: 4,
		get:   func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) },
		put:   func(b []byte, v int32) { binary.LittleEndian.PutUint32(b, uint32(v)) },
	})}
}

func (c *ColInt32) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColInt32()
	out.data = data
	return out, nil
}
func (c *ColInt32) CloneEmpty() Column { return NewColInt32() }
func (c *ColInt32) AppendColumn(other Column) error {
	o, ok := other.(*ColInt32)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColUInt32 is a column of UInt32 values.
type ColUInt32 struct{ numericColumn[uint32] }

// NewColUInt32 returns an empty UInt32 column.
func NewColUInt32() *ColUInt32 {
	return &ColUInt32{*newNumericColumn[uint32](ColumnTypeUInt32, numericCodec[uint32]{
		width: 4,
		get:   binary.LittleEndian.Uint32,
		put:   func(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) },
	})}
}

func (c *ColUInt32) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColUInt32()
	out.data = data
	return out, nil
}
func (c *ColUInt32) CloneEmpty() Column { return NewColUInt32() }
func (c *ColUInt32) AppendColumn(other Column) error {
	o, ok := other.(*ColUInt32)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColInt64 is a column of Int64 values.
type ColInt64 struct{ numericColumn[int64] }

// NewColInt64 returns an empty Int64 column.
func NewColInt64() *ColInt64 {
	return &ColInt64{*newNumericColumn[int64](ColumnTypeInt64, numericCodec[int64]{
		width: 8,
		get:   func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) },
		put:   func(b []byte, v int64) { binary.LittleEndian.PutUint64(b, uint64(v)) },
	})}
}

func (c *ColInt64) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColInt64()
	out.data = data
	return out, nil
}
func (c *ColInt64) CloneEmpty() Column { return NewColInt64() }
func (c *ColInt64) AppendColumn(other Column) error {
	o, ok := other.(*ColInt64)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColUInt64 is a column of UInt64 values.
type ColUInt64 struct{ numericColumn[uint64] }

// NewColUInt64 returns an empty UInt64 column.
func NewColUInt64() *ColUInt64 {
	return &ColUInt64{*newNumericColumn[uint64](ColumnTypeUInt64, numericCodec[uint64]{
		width: 8,
		get:   binary.LittleEndian.Uint64,
		put:   func(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) },
	})}
}

func (c *ColUInt64) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColUInt64()
	out.data = data
	return out, nil
}
func (c *ColUInt64) CloneEmpty() Column { return NewColUInt64() }
func (c *ColUInt64) AppendColumn(other Column) error {
	o, ok := other.(*ColUInt64)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColFloat32 is a column of Float32 values.
type ColFloat32 struct{ numericColumn[float32] }

// NewColFloat32 returns an empty Float32 column.
func NewColFloat32() *ColFloat32 {
	return &ColFloat32{*newNumericColumn[float32](ColumnTypeFloat32, numericCodec[float32]{
		width: 4,
		get:   func(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) },
		put:   func(b []byte, v float32) { binary.LittleEndian.PutUint32(b, math.Float32bits(v)) },
	})}
}

func (c *ColFloat32) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColFloat32()
	out.data = data
	return out, nil
}
func (c *ColFloat32) CloneEmpty() Column { return NewColFloat32() }
func (c *ColFloat32) AppendColumn(other Column) error {
	o, ok := other.(*ColFloat32)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColFloat64 is a column of Float64 values.
type ColFloat64 struct{ numericColumn[float64] }

// NewColFloat64 returns an empty Float64 column.
func NewColFloat64() *ColFloat64 {
	return &ColFloat64{*newNumericColumn[float64](ColumnTypeFloat64, numericCodec[float64]{
		width: 8,
		get:   func(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) },
		put:   func(b []byte, v float64) { binary.LittleEndian.PutUint64(b, math.Float64bits(v)) },
	})}
}

func (c *ColFloat64) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColFloat64()
	out.data = data
	return out, nil
}
func (c *ColFloat64) CloneEmpty() Column { return NewColFloat64() }
func (c *ColFloat64) AppendColumn(other Column) error {
	o, ok := other.(*ColFloat64)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColDate is a column of Date values, stored as the number of days since
// the Unix epoch in a little-endian uint16.
type ColDate struct{ numericColumn[uint16] }

// NewColDate returns an empty Date column.
func NewColDate() *ColDate {
	return &ColDate{*newNumericColumn[uint16](ColumnTypeDate, numericCodec[uint16]{
		width: 2,
		get:   binary.LittleEndian.Uint16,
		put:   func(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) },
	})}
}

func (c *ColDate) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColDate()
	out.data = data
	return out, nil
}
func (c *ColDate) CloneEmpty() Column { return NewColDate() }
func (c *ColDate) AppendColumn(other Column) error {
	o, ok := other.(*ColDate)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColDate32 is a column of Date32 values, stored as the (signed) number of
// days since the Unix epoch in a little-endian int32.
type ColDate32 struct{ numericColumn[int32] }

// NewColDate32 returns an empty Date32 column.
func NewColDate32() *ColDate32 {
	return &ColDate32{*newNumericColumn[int32](ColumnTypeDate32, numericCodec[int32]{
		width: 4,
		get:   func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) },
		put:   func(b []byte, v int32) { binary.LittleEndian.PutUint32(b, uint32(v)) },
	})}
}

func (c *ColDate32) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColDate32()
	out.data = data
	return out, nil
}
func (c *ColDate32) CloneEmpty() Column { return NewColDate32() }
func (c *ColDate32) AppendColumn(other Column) error {
	o, ok := other.(*ColDate32)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// UInt128 is a 128-bit unsigned value, stored as two little-endian 64-bit
// halves on the wire (Lo first), matching ch-go's representation.
type UInt128 struct{ Lo, Hi uint64 }

// ColUInt128 is a column of UInt128 values.
type ColUInt128 struct{ numericColumn[UInt128] }

// NewColUInt128 returns an empty UInt128 column.
func NewColUInt128() *ColUInt128 {
	return &ColUInt128{*newNumericColumn[UInt128](ColumnTypeUInt128, numericCodec[UInt128]{
		width: 16,
		get: func(b []byte) UInt128 {
			return UInt128{Lo: binary.LittleEndian.Uint64(b[0:8]), Hi: binary.LittleEndian.Uint64(b[8:16])}
		},
		put: func(b []byte, v UInt128) {
			binary.LittleEndian.PutUint64(b[0:8], v.Lo)
			binary.LittleEndian.PutUint64(b[8:16], v.Hi)
		},
	})}
}

func (c *ColUInt128) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColUInt128()
	out.data = data
	return out, nil
}
func (c *ColUInt128) CloneEmpty() Column { return NewColUInt128() }
func (c *ColUInt128) AppendColumn(other Column) error {
	o, ok := other.(*ColUInt128)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// Int128 is a 128-bit signed value in two's complement, stored as two
// little-endian 64-bit halves on the wire (Lo first); Hi's top bit is the
// sign bit, matching ch-go's representation.
type Int128 struct{ Lo, Hi uint64 }

// ColInt128 is a column of Int128 values.
type ColInt128 struct{ numericColumn[Int128] }

// NewColInt128 returns an empty Int128 column.
func NewColInt128() *ColInt128 {
	return &ColInt128{*newNumericColumn[Int128](ColumnTypeInt128, numericCodec[Int128]{
		width: 16,
		get: func(b []byte) Int128 {
			return Int128{Lo: binary.LittleEndian.Uint64(b[0:8]), Hi: binary.LittleEndian.Uint64(b[8:16])}
		},
		put: func(b []byte, v Int128) {
			binary.LittleEndian.PutUint64(b[0:8], v.Lo)
			binary.LittleEndian.PutUint64(b[8:16], v.Hi)
		},
	})}
}

func (c *ColInt128) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColInt128()
	out.data = data
	return out, nil
}
func (c *ColInt128) CloneEmpty() Column { return NewColInt128() }
func (c *ColInt128) AppendColumn(other Column) error {
	o, ok := other.(*ColInt128)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}
