package proto

import "strings"

// ColumnType is the canonical textual name of a type, e.g. "Array(Nullable(String))",
// "DateTime('UTC')", "Decimal(18, 4)". It is a plain string so callers can
// compare/construct it cheaply; ParseType turns it into a TypeAst when
// structural inspection is needed.
type ColumnType string

// Common simple type names, matching the canonical grammar in spec.md §3.1.
const (
	ColumnTypeNone     ColumnType = ""
	ColumnTypeVoid     ColumnType = "Void"
	ColumnTypeInt8     ColumnType = "Int8"
	ColumnTypeInt16    ColumnType = "Int16"
	ColumnTypeInt32    ColumnType = "Int32"
	ColumnTypeInt64    ColumnType = "Int64"
	ColumnTypeInt128   ColumnType = "Int128"
	ColumnTypeUInt8    ColumnType = "UInt8"
	ColumnTypeUInt16   ColumnType = "UInt16"
	ColumnTypeUInt32   ColumnType = "UInt32"
	ColumnTypeUInt64   ColumnType = "UInt64"
	ColumnTypeUInt128  ColumnType = "UInt128"
	ColumnTypeFloat32  ColumnType = "Float32"
	ColumnTypeFloat64  ColumnType = "Float64"
	ColumnTypeString   ColumnType = "String"
	ColumnTypeFixedString ColumnType = "FixedString"
	ColumnTypeDate     ColumnType = "Date"
	ColumnTypeDate32   ColumnType = "Date32"
	ColumnTypeDateTime ColumnType = "DateTime"
	ColumnTypeDateTime64 ColumnType = "DateTime64"
	ColumnTypeUUID     ColumnType = "UUID"
	ColumnTypeIPv4     ColumnType = "IPv4"
	ColumnTypeIPv6     ColumnType = "IPv6"
	ColumnTypeDecimal  ColumnType = "Decimal"
	ColumnTypeEnum8    ColumnType = "Enum8"
	ColumnTypeEnum16   ColumnType = "Enum16"
	ColumnTypeArray    ColumnType = "Array"
	ColumnTypeNullable ColumnType = "Nullable"
	ColumnTypeTuple    ColumnType = "Tuple"
	ColumnTypeLowCardinality ColumnType = "LowCardinality"
	ColumnTypeMap      ColumnType = "Map"
	ColumnTypePoint    ColumnType = "Point"
	ColumnTypeRing     ColumnType = "Ring"
	ColumnTypePolygon  ColumnType = "Polygon"
	ColumnTypeMultiPolygon ColumnType = "MultiPolygon"
	ColumnTypeNothing  ColumnType = "Nothing"
)

// Array wraps t as "Array(t)".
func (t ColumnType) Array() ColumnType {
	return ColumnTypeArray.Sub(t)
}

// Sub appends "(elem)" to t, e.g. ColumnTypeArray.Sub(ColumnTypeInt16) ==
// "Array(Int16)".
func (t ColumnType) Sub(elem ColumnType) ColumnType {
	return ColumnType(string(t) + "(" + string(elem) + ")")
}

// With appends a raw parenthesized parameter, e.g.
// ColumnTypeDateTime.With("UTC") == "DateTime(UTC)" (callers needing quotes
// pass them already quoted).
func (t ColumnType) With(param string) ColumnType {
	return ColumnType(string(t) + "(" + param + ")")
}

// IsArray reports whether t is an Array(...) type.
func (t ColumnType) IsArray() bool {
	return strings.HasPrefix(string(t), "Array(") && strings.HasSuffix(string(t), ")")
}

// IsNullable reports whether t is a Nullable(...) type.
func (t ColumnType) IsNullable() bool {
	return strings.HasPrefix(string(t), "Nullable(") && strings.HasSuffix(string(t), ")")
}

// Elem returns the element type of an Array(...) type, or ColumnTypeNone if
// t is not an array.
func (t ColumnType) Elem() ColumnType {
	if !t.IsArray() {
		return ColumnTypeNone
	}
	return ColumnType(string(t)[len("Array(") : len(t)-1])
}

// Base returns the type name before any parenthesized parameter list, e.g.
// "Decimal(18, 4)".Base() == "Decimal".
func (t ColumnType) Base() ColumnType {
	if i := strings.IndexByte(string(t), '('); i >= 0 {
		return t[:i]
	}
	return t
}

// Conflicts reports whether t and other name structurally incompatible
// types. Two blank types never conflict (treated as "undetermined"); two
// equal strings never conflict; an Enum and its storage integer type never
// conflict (an enum is interchangeable with its numeric representation on
// append); otherwise differing base names conflict. For matching base names
// only the parameters of Array, Nullable, LowCardinality and Map are
// compared; parameters of other bases (Tuple, FixedString, ...) never
// cause a conflict. A DateTime with timezone never
// conflicts with a DateTime without one: the timezone only affects display.
func (t ColumnType) Conflicts(other ColumnType) bool {
	if t == "" && other == "" {
		return false
	}
	if t == "" || other == "" {
		return true
	}
	if t == other {
		return false
	}
	tb, ob := t.Base(), other.Base()
	if enumIntPair(tb, ob) || enumIntPair(ob, tb) {
		return false
	}
	if tb == ColumnTypeDateTime && ob == ColumnTypeDateTime {
		return false
	}
	if isDecimalBase(tb) && isDecimalBase(ob) {
		// Decimal32/64/128/256 are precision-selected aliases of the same
		// family as Decimal(p, s); this check does not validate precision
		// agreement, only that both sides are some flavor of Decimal.
		return false
	}
	if tb != ob {
		return true
	}
	// Same composite base: compare element lists structurally when both
	// sides carry one (e.g. Array, Map); a bare base with no parameters
	// (like "Enum8" without items) is compatible with any parametrized
	// form of the same base.
	tp, tHas := parenArgs(string(t))
	op, oHas := parenArgs(string(other))
	if !tHas || !oHas {
		return false
	}
	if tb == ColumnTypeMap {
		ta := splitTopLevel(tp)
		oa := splitTopLevel(op)
		if len(ta) != len(oa) {
			return true
		}
		for i := range ta {
			if ColumnType(strings.TrimSpace(ta[i])).Conflicts(ColumnType(strings.TrimSpace(oa[i]))) {
				return true
			}
		}
		return false
	}
	if tb == ColumnTypeArray || tb == ColumnTypeNullable || tb == ColumnTypeLowCardinality {
		return ColumnType(tp).Conflicts(ColumnType(op))
	}
	return false
}

// enumIntPair reports whether enumBase is an Enum kind whose storage width
// matches intBase exactly (Enum8 <-> Int8, Enum16 <-> Int16); appending an
// Int32 to an Enum16 column, for instance, is still a conflict.
func enumIntPair(enumBase, intBase ColumnType) bool {
	switch {
	case enumBase == ColumnTypeEnum8 && intBase == ColumnTypeInt8:
		return true
	case enumBase == ColumnTypeEnum16 && intBase == ColumnTypeInt16:
		return true
	default:
		return false
	}
}

func isDecimalBase(b ColumnType) bool {
	switch b {
	case ColumnTypeDecimal, "Decimal32", "Decimal64", "Decimal128", "Decimal256":
		return true
	default:
		return false
	}
}

func parenArgs(s string) (string, bool) {
	i := strings.IndexByte(s, '(')
	if i < 0 || !strings.HasSuffix(s, ")") {
		return "", false
	}
	return s[i+1 : len(s)-1], true
}

// splitTopLevel splits s on top-level commas (not nested inside parens).
func splitTopLevel(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}
