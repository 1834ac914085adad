package proto

import "encoding/binary"

// ColEnum8 is a column of Enum8 values: one signed byte per row holding the
// numeric value of one of the type's declared name/value pairs.
type ColEnum8 struct {
	numericColumn[int8]
	ast *TypeAst
}

// NewColEnum8 returns an empty Enum8 column for the given parsed enum type.
func NewColEnum8(ast *TypeAst) *ColEnum8 {
	return &ColEnum8{
		numericColumn: *newNumericColumn[int8](ColumnType(ast.CanonicalName()), numericCodec[int8]{
			width: 1,
			get:   func(b []byte) int8 { return int8(b[0]) },
			put:   func(b []byte, v int8) { b[0] = byte(v) },
		}),
		ast: ast,
	}
}

// Name returns the enum member name for row i's stored value, or "" if the
// value is not one of the type's declared members.
func (c *ColEnum8) Name(i int) string {
	v := int64(c.Row(i))
	for _, item := range c.ast.Children {
		if item.Value == v {
			return item.String
		}
	}
	return ""
}

func (c *ColEnum8) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColEnum8(c.ast)
	out.data = data
	return out, nil
}
func (c *ColEnum8) CloneEmpty() Column { return NewColEnum8(c.ast) }
func (c *ColEnum8) AppendColumn(other Column) error {
	o, ok := other.(*ColEnum8)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}

// ColEnum16 is a column of Enum16 values: one little-endian int16 per row.
type ColEnum16 struct {
	numericColumn[int16]
	ast *TypeAst
}

// NewColEnum16 returns an empty Enum16 column for the given parsed enum type.
func NewColEnum16(ast *TypeAst) *ColEnum16 {
	return &ColEnum16{
		numericColumn: *newNumericColumn[int16](ColumnType(ast.CanonicalName()), numericCodec[int16]{
			width: 2,
			get:   func(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) },
			put:   func(b []byte, v int16) { binary.LittleEndian.PutUint16(b, uint16(v)) },
		}),
		ast: ast,
	}
}

// Name returns the enum member name for row i's stored value, or "" if the
// value is not one of the type's declared members.
func (c *ColEnum16) Name(i int) string {
	v := int64(c.Row(i))
	for _, item := range c.ast.Children {
		if item.Value == v {
			return item.String
		}
	}
	return ""
}

func (c *ColEnum16) Slice(begin, n int) (Column, error) {
	data, err := c.sliceData(begin, n)
	if err != nil {
		return nil, err
	}
	out := NewColEnum16(c.ast)
	out.data = data
	return out, nil
}
func (c *ColEnum16) CloneEmpty() Column { return NewColEnum16(c.ast) }
func (c *ColEnum16) AppendColumn(other Column) error {
	o, ok := other.(*ColEnum16)
	if !ok {
		return typeMismatch(c, other)
	}
	c.data = append(c.data, o.data...)
	return nil
}
