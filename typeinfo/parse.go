package typeinfo

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError is returned when a type string is malformed.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed type string %q at offset %d: %s", e.Input, e.Offset, e.Msg)
}

// Parse parses a single type string.
func Parse(s string) (TypeInfo, error) {
	p := newTypeParser(s)
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != typeTokenEOF {
		return nil, p.errorf(tok, "unexpected %q after type", tok.text)
	}
	return t, nil
}

// ParseList parses a list of types separated by ',', ';' or ':'. An empty or
// blank string is an empty list.
func ParseList(s string) ([]TypeInfo, error) {
	p := newTypeParser(s)
	var types []TypeInfo

	for p.peek().kind != typeTokenEOF {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)

		switch tok := p.peek(); {
		case tok.kind == typeTokenEOF:
		case tok.isSeparator():
			p.next()
			if p.peek().kind == typeTokenEOF {
				return nil, p.errorf(p.peek(), "expected type after %q", tok.text)
			}
		default:
			return nil, p.errorf(tok, "expected separator but found %q", tok.text)
		}
	}

	return types, nil
}

// MustParse is like Parse but panics on error. It simplifies the declaration
// of types in tests and package-level variables.
func MustParse(s string) TypeInfo {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

type typeTokenKind int8

const (
	typeTokenEOF typeTokenKind = iota
	typeTokenWord
	typeTokenPunct
)

type typeToken struct {
	kind   typeTokenKind
	text   string
	offset int
}

func (t typeToken) is(punct string) bool { return t.kind == typeTokenPunct && t.text == punct }

func (t typeToken) isSeparator() bool { return t.is(",") || t.is(";") || t.is(":") }

func isTypePunct(c byte) bool {
	switch c {
	case '<', '>', '(', ')', ',', ':', ';':
		return true
	}
	return false
}

func tokenizeType(s string) []typeToken {
	var tokens []typeToken
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isTypePunct(c):
			tokens = append(tokens, typeToken{kind: typeTokenPunct, text: s[i : i+1], offset: i})
			i++
		default:
			j := i
			for j < len(s) && !isTypePunct(s[j]) {
				j++
			}
			tokens = append(tokens, typeToken{kind: typeTokenWord, text: strings.TrimSpace(s[i:j]), offset: i})
			i = j
		}
	}
	return append(tokens, typeToken{kind: typeTokenEOF, offset: len(s)})
}

type typeParser struct {
	input  string
	tokens []typeToken
	index  int
}

func newTypeParser(s string) *typeParser {
	return &typeParser{input: s, tokens: tokenizeType(s)}
}

func (p *typeParser) peek() typeToken { return p.tokens[p.index] }

func (p *typeParser) next() typeToken {
	tok := p.tokens[p.index]
	if tok.kind != typeTokenEOF {
		p.index++
	}
	return tok
}

func (p *typeParser) errorf(tok typeToken, msg string, args ...interface{}) error {
	return &ParseError{Input: p.input, Offset: tok.offset, Msg: fmt.Sprintf(msg, args...)}
}

func (p *typeParser) expect(punct string) error {
	if tok := p.next(); !tok.is(punct) {
		return p.errorf(tok, "expected %q but found %s", punct, describeToken(tok))
	}
	return nil
}

func describeToken(tok typeToken) string {
	if tok.kind == typeTokenEOF {
		return "end of input"
	}
	return strconv.Quote(tok.text)
}

func (p *typeParser) parseType() (TypeInfo, error) {
	tok := p.next()
	if tok.kind != typeTokenWord {
		return nil, p.errorf(tok, "expected type name but found %s", describeToken(tok))
	}

	switch name := strings.ToLower(tok.text); name {
	case "array":
		return p.parseList()
	case "map":
		return p.parseMap()
	case "struct":
		return p.parseStruct()
	case "uniontype":
		return p.parseUnion()
	case charTypeName, varcharTypeName:
		return p.parseCharacter(tok, name)
	case decimalTypeName:
		return p.parseDecimal(tok)
	default:
		if t, ok := primitives[name]; ok {
			return t, nil
		}
		return nil, p.errorf(tok, "unknown type %q", tok.text)
	}
}

func (p *typeParser) parseList() (TypeInfo, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}
	return ListOf(elem), nil
}

func (p *typeParser) parseMap() (TypeInfo, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}
	key, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(","); err != nil {
		return nil, err
	}
	value, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}
	return MapOf(key, value), nil
}

func (p *typeParser) parseStruct() (TypeInfo, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}

	var names []string
	var types []TypeInfo

	if p.peek().is(">") {
		p.next()
		return StructOf(names, types), nil
	}

	for {
		tok := p.next()
		if tok.kind != typeTokenWord {
			return nil, p.errorf(tok, "expected struct field name but found %s", describeToken(tok))
		}
		if err := p.expect(":"); err != nil {
			return nil, err
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		names = append(names, tok.text)
		types = append(types, t)

		switch sep := p.next(); {
		case sep.is(","):
		case sep.is(">"):
			return StructOf(names, types), nil
		default:
			return nil, p.errorf(sep, "expected \",\" or \">\" but found %s", describeToken(sep))
		}
	}
}

func (p *typeParser) parseUnion() (TypeInfo, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}
	var types []TypeInfo
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)

		switch sep := p.next(); {
		case sep.is(","):
		case sep.is(">"):
			return UnionOf(types...), nil
		default:
			return nil, p.errorf(sep, "expected \",\" or \">\" but found %s", describeToken(sep))
		}
	}
}

// parseParams reads an optional "(n[,m...])" suffix of primitive types.
func (p *typeParser) parseParams() ([]int, error) {
	if !p.peek().is("(") {
		return nil, nil
	}
	p.next()

	var params []int
	for {
		tok := p.next()
		n, err := strconv.Atoi(tok.text)
		if tok.kind != typeTokenWord || err != nil {
			return nil, p.errorf(tok, "expected integer type parameter but found %s", describeToken(tok))
		}
		params = append(params, n)

		switch sep := p.next(); {
		case sep.is(","):
		case sep.is(")"):
			return params, nil
		default:
			return nil, p.errorf(sep, "expected \",\" or \")\" but found %s", describeToken(sep))
		}
	}
}

func (p *typeParser) parseCharacter(at typeToken, name string) (TypeInfo, error) {
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if len(params) != 1 {
		return nil, p.errorf(at, "%s type requires exactly one length parameter", name)
	}
	maxLength := maxVarcharLength
	if name == charTypeName {
		maxLength = maxCharLength
	}
	if length := params[0]; length < 1 || length > maxLength {
		return nil, p.errorf(at, "%s length %d out of range [1,%d]", name, length, maxLength)
	}
	if name == charTypeName {
		return Char(params[0]), nil
	}
	return Varchar(params[0]), nil
}

func (p *typeParser) parseDecimal(at typeToken) (TypeInfo, error) {
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	precision, scale := DefaultDecimalPrecision, DefaultDecimalScale
	switch len(params) {
	case 0:
	case 1:
		precision = params[0]
	case 2:
		precision, scale = params[0], params[1]
	default:
		return nil, p.errorf(at, "decimal type takes at most two parameters")
	}

	if precision < 1 || precision > MaxDecimalPrecision {
		return nil, p.errorf(at, "decimal precision %d out of range [1,%d]", precision, MaxDecimalPrecision)
	}
	if scale < 0 || scale > precision {
		return nil, p.errorf(at, "decimal scale %d out of range [0,%d]", scale, precision)
	}
	return Decimal(precision, scale), nil
}
