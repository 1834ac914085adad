package proto

// TypeMeta classifies an AST node the way the textual grammar groups type
// forms, per spec.md §3.2.
type TypeMeta byte

const (
	MetaTerminal TypeMeta = iota
	MetaArray
	MetaNullable
	MetaTuple
	MetaEnum
	MetaLowCardinality
	MetaSimpleAggregateFunction
	MetaMap
	MetaNumber
	MetaString
	MetaAssign
	MetaNull
)

// TypeAst is a parsed node of the textual type grammar.
type TypeAst struct {
	Meta     TypeMeta
	Code     TypeCode
	Name     string
	Value    int64
	String   string
	Children []*TypeAst
}

// CanonicalName renders the AST back to its canonical textual form, e.g.
// "Array(Nullable(String))", "Decimal(18, 4)", "Enum8('a' = 1, 'b' = 2)".
func (a *TypeAst) CanonicalName() string {
	if a == nil {
		return ""
	}
	switch a.Meta {
	case MetaArray:
		return "Array(" + a.Children[0].CanonicalName() + ")"
	case MetaNullable:
		return "Nullable(" + a.Children[0].CanonicalName() + ")"
	case MetaLowCardinality:
		return "LowCardinality(" + a.Children[0].CanonicalName() + ")"
	case MetaMap:
		return "Map(" + a.Children[0].CanonicalName() + ", " + a.Children[1].CanonicalName() + ")"
	case MetaTuple:
		out := "Tuple("
		for i, c := range a.Children {
			if i > 0 {
				out += ", "
			}
			out += c.CanonicalName()
		}
		return out + ")"
	case MetaEnum:
		out := a.Name + "("
		for i, c := range a.Children {
			if i > 0 {
				out += ", "
			}
			out += "'" + c.String + "' = " + itoa64(c.Value)
		}
		return out + ")"
	default:
		switch a.Name {
		case "FixedString":
			return "FixedString(" + itoa64(a.Value) + ")"
		case "DateTime":
			if a.String != "" {
				return "DateTime('" + a.String + "')"
			}
			return "DateTime"
		case "DateTime64":
			if a.String != "" {
				return "DateTime64(" + itoa64(a.Value) + ", '" + a.String + "')"
			}
			return "DateTime64(" + itoa64(a.Value) + ")"
		case "Decimal":
			return "Decimal(" + itoa64(a.Value) + ", " + itoa64(a.Children[0].Value) + ")"
		default:
			return a.Name
		}
	}
}

func itoa64(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
