package proto

import (
	"strconv"
	"strings"

	"github.com/nativeclick/ch-native/internal/chx"
)

var simpleTypeCodes = map[string]TypeCode{
	"Void":         TypeCodeVoid,
	"void":         TypeCodeVoid,
	"Int8":         TypeCodeInt8,
	"Int16":        TypeCodeInt16,
	"Int32":        TypeCodeInt32,
	"Int64":        TypeCodeInt64,
	"Int128":       TypeCodeInt128,
	"UInt8":        TypeCodeUInt8,
	"UInt16":       TypeCodeUInt16,
	"UInt32":       TypeCodeUInt32,
	"UInt64":       TypeCodeUInt64,
	"UInt128":      TypeCodeUInt128,
	"Float32":      TypeCodeFloat32,
	"Float64":      TypeCodeFloat64,
	"String":       TypeCodeString,
	"Date":         TypeCodeDate,
	"Date32":       TypeCodeDate32,
	"UUID":         TypeCodeUUID,
	"IPv4":         TypeCodeIPv4,
	"IPv6":         TypeCodeIPv6,
	"Point":        TypeCodePoint,
	"Ring":         TypeCodeRing,
	"Polygon":      TypeCodePolygon,
	"MultiPolygon": TypeCodeMultiPolygon,
	"Nothing":      TypeCodeNothing,
}

// typeParser is a recursive-descent parser over the token stream, following
// the usual convention that p.tok always holds a token that has been
// produced by the lexer but not yet consumed; advance() consumes it and
// loads the next one.
type typeParser struct {
	lex *typeLexer
	tok token
	raw string
}

// ParseType parses a textual type name into an AST, per the grammar in
// spec.md §3.2. Parsing fails on unbalanced parentheses, empty input, or a
// terminal whose name does not resolve to a known type (the literal
// lowercase "void" and the canonical "Void" both resolve to TypeCodeVoid;
// any other unrecognized bare name is rejected).
func ParseType(name string) (*TypeAst, error) {
	if strings.TrimSpace(name) == "" {
		return nil, chx.New(chx.KindProtocol, "empty type name")
	}
	p := &typeParser{lex: newTypeLexer(name), raw: name}
	p.advance()
	ast, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.typ != tokEOS {
		return nil, chx.Newf(chx.KindProtocol, "trailing input after type %q", name)
	}
	return ast, nil
}

func (p *typeParser) advance() { p.tok = p.lex.next() }

func (p *typeParser) expect(t tokenType) error {
	if p.tok.typ != t {
		return chx.Newf(chx.KindProtocol, "unexpected token %q in type %q", p.tok.value, p.raw)
	}
	return nil
}

// parseExpr parses one type expression; p.tok must be the expression's
// leading token on entry, and is left as the token following the whole
// expression on return.
func (p *typeParser) parseExpr() (*TypeAst, error) {
	if p.tok.typ == tokInvalid {
		return nil, chx.Newf(chx.KindProtocol, "invalid character %q in type %q", p.tok.value, p.raw)
	}
	if err := p.expect(tokName); err != nil {
		return nil, err
	}
	name := p.tok.value
	node := &TypeAst{Meta: MetaTerminal, Name: name}
	p.advance()

	if p.tok.typ != tokLPar {
		code, ok := simpleTypeCodes[name]
		if !ok {
			return nil, chx.Newf(chx.KindProtocol, "unknown type %q", name)
		}
		node.Code = code
		return node, nil
	}

	p.advance() // consume '('

	var err error
	switch name {
	case "Array":
		node.Meta, node.Code = MetaArray, TypeCodeArray
		err = p.parseSingleChild(node)
	case "Nullable":
		node.Meta, node.Code = MetaNullable, TypeCodeNullable
		if err = p.parseSingleChild(node); err == nil {
			switch node.Children[0].Code {
			case TypeCodeArray, TypeCodeMap, TypeCodeLowCardinality, TypeCodeNullable:
				err = chx.Newf(chx.KindProtocol, "Nullable may not wrap %s", node.Children[0].Name)
			}
		}
	case "LowCardinality":
		node.Meta, node.Code = MetaLowCardinality, TypeCodeLowCardinality
		err = p.parseSingleChild(node)
	case "Map":
		node.Meta, node.Code = MetaMap, TypeCodeMap
		err = p.parseMapArgs(node)
	case "Tuple":
		node.Meta, node.Code = MetaTuple, TypeCodeTuple
		err = p.parseTupleArgs(node)
	case "SimpleAggregateFunction":
		node.Meta = MetaSimpleAggregateFunction
		err = p.parseSimpleAggFunc(node)
	case "Enum8", "Enum16":
		node.Meta = MetaEnum
		if name == "Enum8" {
			node.Code = TypeCodeEnum8
		} else {
			node.Code = TypeCodeEnum16
		}
		err = p.parseEnumItems(node)
	case "FixedString":
		node.Code = TypeCodeFixedString
		err = p.parseFixedString(node)
	case "DateTime":
		node.Code = TypeCodeDateTime
		err = p.parseDateTime(node)
	case "DateTime64":
		node.Code = TypeCodeDateTime64
		err = p.parseDateTime64(node)
	case "Decimal":
		node.Code = TypeCodeDecimal
		err = p.parseDecimal(node)
	default:
		err = chx.Newf(chx.KindProtocol, "unknown parametric type %q", name)
	}
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRPar); err != nil {
		return nil, err
	}
	p.advance() // consume ')'
	return node, nil
}

func (p *typeParser) parseSingleChild(node *TypeAst) error {
	child, err := p.parseExpr()
	if err != nil {
		return err
	}
	node.Children = []*TypeAst{child}
	return nil
}

func (p *typeParser) parseMapArgs(node *TypeAst) error {
	key, err := p.parseExpr()
	if err != nil {
		return err
	}
	if err := p.expect(tokComma); err != nil {
		return err
	}
	p.advance()
	val, err := p.parseExpr()
	if err != nil {
		return err
	}
	node.Children = []*TypeAst{key, val}
	return nil
}

func (p *typeParser) parseTupleArgs(node *TypeAst) error {
	for {
		child, err := p.parseExpr()
		if err != nil {
			return err
		}
		node.Children = append(node.Children, child)
		if p.tok.typ != tokComma {
			break
		}
		p.advance()
	}
	return nil
}

func (p *typeParser) parseSimpleAggFunc(node *TypeAst) error {
	if err := p.expect(tokName); err != nil {
		return err
	}
	node.String = p.tok.value
	p.advance()
	for p.tok.typ == tokComma {
		p.advance()
		child, err := p.parseExpr()
		if err != nil {
			return err
		}
		node.Children = append(node.Children, child)
	}
	return nil
}

func (p *typeParser) parseEnumItems(node *TypeAst) error {
	for {
		if err := p.expect(tokQuotedString); err != nil {
			return err
		}
		item := &TypeAst{Meta: MetaString, String: unquote(p.tok.value)}
		p.advance()
		if err := p.expect(tokAssign); err != nil {
			return err
		}
		p.advance()
		if err := p.expect(tokNumber); err != nil {
			return err
		}
		v, err := strconv.ParseInt(p.tok.value, 10, 64)
		if err != nil {
			return chx.Newf(chx.KindProtocol, "bad enum value %q", p.tok.value)
		}
		item.Value = v
		node.Children = append(node.Children, item)
		p.advance()
		if p.tok.typ != tokComma {
			break
		}
		p.advance()
	}
	return checkUniqueEnumItems(node)
}

func checkUniqueEnumItems(node *TypeAst) error {
	names := make(map[string]struct{}, len(node.Children))
	values := make(map[int64]struct{}, len(node.Children))
	for _, item := range node.Children {
		if _, ok := names[item.String]; ok {
			return chx.Newf(chx.KindProtocol, "duplicate enum name %q", item.String)
		}
		names[item.String] = struct{}{}
		if _, ok := values[item.Value]; ok {
			return chx.Newf(chx.KindProtocol, "duplicate enum value %d", item.Value)
		}
		values[item.Value] = struct{}{}
	}
	return nil
}

func (p *typeParser) parseFixedString(node *TypeAst) error {
	if err := p.expect(tokNumber); err != nil {
		return err
	}
	v, err := strconv.ParseInt(p.tok.value, 10, 64)
	if err != nil || v < 0 {
		return chx.Newf(chx.KindProtocol, "bad FixedString size %q", p.tok.value)
	}
	node.Value = v
	p.advance()
	return nil
}

func (p *typeParser) parseDateTime(node *TypeAst) error {
	if p.tok.typ == tokQuotedString {
		node.String = unquote(p.tok.value)
		p.advance()
	}
	return nil
}

func (p *typeParser) parseDateTime64(node *TypeAst) error {
	if err := p.expect(tokNumber); err != nil {
		return err
	}
	v, err := strconv.ParseInt(p.tok.value, 10, 64)
	if err != nil || v < 0 || v > 9 {
		return chx.Newf(chx.KindProtocol, "bad DateTime64 precision %q", p.tok.value)
	}
	node.Value = v
	p.advance()
	if p.tok.typ == tokComma {
		p.advance()
		if err := p.expect(tokQuotedString); err != nil {
			return err
		}
		node.String = unquote(p.tok.value)
		p.advance()
	}
	return nil
}

func (p *typeParser) parseDecimal(node *TypeAst) error {
	if err := p.expect(tokNumber); err != nil {
		return err
	}
	prec, err := strconv.ParseInt(p.tok.value, 10, 64)
	if err != nil || prec < 1 || prec > 76 {
		return chx.Newf(chx.KindProtocol, "bad Decimal precision %q", p.tok.value)
	}
	node.Value = prec
	p.advance()
	if err := p.expect(tokComma); err != nil {
		return err
	}
	p.advance()
	if err := p.expect(tokNumber); err != nil {
		return err
	}
	scale, err := strconv.ParseInt(p.tok.value, 10, 64)
	if err != nil || scale < 0 || scale > prec {
		return chx.Newf(chx.KindProtocol, "bad Decimal scale %q", p.tok.value)
	}
	node.Children = []*TypeAst{{Meta: MetaNumber, Value: scale}}
	p.advance()
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `\'`, `'`)
}
