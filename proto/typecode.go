package proto

// TypeCode is the closed sum of simple/composite type kinds a column can
// carry, per spec.md §3.1.
type TypeCode byte

const (
	TypeCodeVoid TypeCode = iota
	TypeCodeInt8
	TypeCodeInt16
	TypeCodeInt32
	TypeCodeInt64
	TypeCodeInt128
	TypeCodeUInt8
	TypeCodeUInt16
	TypeCodeUInt32
	TypeCodeUInt64
	TypeCodeUInt128
	TypeCodeFloat32
	TypeCodeFloat64
	TypeCodeString
	TypeCodeFixedString
	TypeCodeDate
	TypeCodeDate32
	TypeCodeDateTime
	TypeCodeDateTime64
	TypeCodeUUID
	TypeCodeIPv4
	TypeCodeIPv6
	TypeCodeDecimal
	TypeCodeEnum8
	TypeCodeEnum16
	TypeCodeArray
	TypeCodeNullable
	TypeCodeTuple
	TypeCodeLowCardinality
	TypeCodeMap
	TypeCodePoint
	TypeCodeRing
	TypeCodePolygon
	TypeCodeMultiPolygon
	TypeCodeNothing
)

func (t TypeCode) String() string {
	switch t {
	case TypeCodeVoid:
		return "Void"
	case TypeCodeInt8:
		return "Int8"
	case TypeCodeInt16:
		return "Int16"
	case TypeCodeInt32:
		return "Int32"
	case TypeCodeInt64:
		return "Int64"
	case TypeCodeInt128:
		return "Int128"
	case TypeCodeUInt8:
		return "UInt8"
	case TypeCodeUInt16:
		return "UInt16"
	case TypeCodeUInt32:
		return "UInt32"
	case TypeCodeUInt64:
		return "UInt64"
	case TypeCodeUInt128:
		return "UInt128"
	case TypeCodeFloat32:
		return "Float32"
	case TypeCodeFloat64:
		return "Float64"
	case TypeCodeString:
		return "String"
	case TypeCodeFixedString:
		return "FixedString"
	case TypeCodeDate:
		return "Date"
	case TypeCodeDate32:
		return "Date32"
	case TypeCodeDateTime:
		return "DateTime"
	case TypeCodeDateTime64:
		return "DateTime64"
	case TypeCodeUUID:
		return "UUID"
	case TypeCodeIPv4:
		return "IPv4"
	case TypeCodeIPv6:
		return "IPv6"
	case TypeCodeDecimal:
		return "Decimal"
	case TypeCodeEnum8:
		return "Enum8"
	case TypeCodeEnum16:
		return "Enum16"
	case TypeCodeArray:
		return "Array"
	case TypeCodeNullable:
		return "Nullable"
	case TypeCodeTuple:
		return "Tuple"
	case TypeCodeLowCardinality:
		return "LowCardinality"
	case TypeCodeMap:
		return "Map"
	case TypeCodePoint:
		return "Point"
	case TypeCodeRing:
		return "Ring"
	case TypeCodePolygon:
		return "Polygon"
	case TypeCodeMultiPolygon:
		return "MultiPolygon"
	case TypeCodeNothing:
		return "Nothing"
	default:
		return "Unknown"
	}
}

// StorageSizeBytes returns the fixed per-row byte width of code, and false
// for variable-length kinds, per spec.md §4.4. The code alone does not
// carry a parametric kind's width, so FixedString and Decimal also report
// false here.
func (t TypeCode) StorageSizeBytes() (int, bool) {
	switch t {
	case TypeCodeInt8, TypeCodeUInt8:
		return 1, true
	case TypeCodeInt16, TypeCodeUInt16, TypeCodeDate:
		return 2, true
	case TypeCodeInt32, TypeCodeUInt32, TypeCodeFloat32, TypeCodeDate32, TypeCodeDateTime, TypeCodeIPv4:
		return 4, true
	case TypeCodeInt64, TypeCodeUInt64, TypeCodeFloat64, TypeCodeDateTime64:
		return 8, true
	case TypeCodeInt128, TypeCodeUInt128, TypeCodeUUID, TypeCodeIPv6:
		return 16, true
	default:
		return 0, false
	}
}
