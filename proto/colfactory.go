package proto

import "github.com/nativeclick/ch-native/internal/chx"

// NewColumn builds an empty Column matching ast, recursively constructing
// composite kinds from their children. Used when a block's column types
// are learned from the wire rather than supplied by the caller.
func NewColumn(ast *TypeAst) (Column, error) {
	switch ast.Code {
	case TypeCodeVoid:
		return NewColNothing(), nil
	case TypeCodeInt8:
		return NewColInt8(), nil
	case TypeCodeUInt8:
		return NewColUInt8(), nil
	case TypeCodeInt16:
		return NewColInt16(), nil
	case TypeCodeUInt16:
		return NewColUInt16(), nil
	case TypeCodeInt32:
		return NewColInt32(), nil
	case TypeCodeUInt32:
		return NewColUInt32(), nil
	case TypeCodeInt64:
		return NewColInt64(), nil
	case TypeCodeUInt64:
		return NewColUInt64(), nil
	case TypeCodeInt128:
		return NewColInt128(), nil
	case TypeCodeUInt128:
		return NewColUInt128(), nil
	case TypeCodeFloat32:
		return NewColFloat32(), nil
	case TypeCodeFloat64:
		return NewColFloat64(), nil
	case TypeCodeString:
		return NewColStr(), nil
	case TypeCodeFixedString:
		return NewColFixedStr(int(ast.Value)), nil
	case TypeCodeDate:
		return NewColDate(), nil
	case TypeCodeDate32:
		return NewColDate32(), nil
	case TypeCodeDateTime:
		return NewColDateTime(ast.String), nil
	case TypeCodeDateTime64:
		return NewColDateTime64(int(ast.Value), ast.String), nil
	case TypeCodeUUID:
		return NewColUUID(), nil
	case TypeCodeIPv4:
		return NewColIPv4(), nil
	case TypeCodeIPv6:
		return NewColIPv6(), nil
	case TypeCodeDecimal:
		if ast.Value > 38 {
			return nil, chx.Newf(chx.KindNotImplemented, "Decimal with precision %d (256-bit) not implemented", ast.Value)
		}
		scale := 0
		if len(ast.Children) > 0 {
			scale = int(ast.Children[0].Value)
		}
		return NewColDecimal(int(ast.Value), scale), nil
	case TypeCodeEnum8:
		return NewColEnum8(ast), nil
	case TypeCodeEnum16:
		return NewColEnum16(ast), nil
	case TypeCodeArray:
		inner, err := NewColumn(ast.Children[0])
		if err != nil {
			return nil, err
		}
		return NewColArr(inner), nil
	case TypeCodeNullable:
		inner, err := NewColumn(ast.Children[0])
		if err != nil {
			return nil, err
		}
		return NewColNullable(inner)
	case TypeCodeLowCardinality:
		inner, err := NewColumn(ast.Children[0])
		if err != nil {
			return nil, err
		}
		return NewColLowCardinality(inner), nil
	case TypeCodeMap:
		key, err := NewColumn(ast.Children[0])
		if err != nil {
			return nil, err
		}
		val, err := NewColumn(ast.Children[1])
		if err != nil {
			return nil, err
		}
		return NewColMap(key, val), nil
	case TypeCodeTuple:
		elems := make([]Column, len(ast.Children))
		for i, child := range ast.Children {
			col, err := NewColumn(child)
			if err != nil {
				return nil, err
			}
			elems[i] = col
		}
		return NewColTuple(elems...), nil
	case TypeCodeNothing:
		return NewColNothing(), nil
	case TypeCodePoint:
		return newColPoint(), nil
	case TypeCodeRing:
		return newColRing(), nil
	case TypeCodePolygon:
		return newColPolygon(), nil
	case TypeCodeMultiPolygon:
		return newColMultiPolygon(), nil
	default:
		return nil, chx.Newf(chx.KindNotImplemented, "column kind %s not implemented", ast.Code)
	}
}

// NewColumnByName parses name and constructs the matching Column.
func NewColumnByName(name string) (Column, error) {
	ast, err := ParseTypeCached(name)
	if err != nil {
		return nil, err
	}
	return NewColumn(ast)
}
