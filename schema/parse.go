package schema

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SyntaxError is returned by Parse when the input is not a valid printed
// schema.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parquet schema %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parse reads a message in the format written by Print and PrintIndent.
//
// Whitespace is not significant, names are any run of characters other than
// whitespace and the punctuation characters {}();
func Parse(text string) (*Message, error) {
	p := &parser{tokens: tokenize(text)}
	m, err := p.parseMessage()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, p.errorf(tok, "unexpected %q after end of message", tok.text)
	}
	return m, nil
}

type tokenKind int8

const (
	tokenEOF tokenKind = iota
	tokenWord
	tokenPunct
)

type token struct {
	kind   tokenKind
	text   string
	line   int
	column int
}

func isPunct(r rune) bool {
	switch r {
	case '{', '}', '(', ')', ';', ',':
		return true
	}
	return false
}

func tokenize(text string) []token {
	var tokens []token
	line, column := 1, 0
	start, startColumn := -1, 0

	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, token{kind: tokenWord, text: text[start:end], line: line, column: startColumn})
			start = -1
		}
	}

	for i, r := range text {
		column++
		switch {
		case unicode.IsSpace(r):
			flush(i)
			if r == '\n' {
				line, column = line+1, 0
			}
		case isPunct(r):
			flush(i)
			tokens = append(tokens, token{kind: tokenPunct, text: string(r), line: line, column: column})
		default:
			if start < 0 {
				start, startColumn = i, column
			}
		}
	}

	flush(len(text))
	return append(tokens, token{kind: tokenEOF, line: line, column: column + 1})
}

type parser struct {
	tokens []token
	offset int
}

func (p *parser) peek() token { return p.tokens[p.offset] }

func (p *parser) next() token {
	tok := p.tokens[p.offset]
	if tok.kind != tokenEOF {
		p.offset++
	}
	return tok
}

func (p *parser) errorf(tok token, msg string, args ...interface{}) error {
	return &SyntaxError{Line: tok.line, Column: tok.column, Msg: fmt.Sprintf(msg, args...)}
}

func (p *parser) expect(text string) error {
	if tok := p.next(); tok.text != text || tok.kind == tokenEOF {
		return p.errorf(tok, "expected %q but found %s", text, describe(tok))
	}
	return nil
}

func (p *parser) word(what string) (string, error) {
	tok := p.next()
	if tok.kind != tokenWord {
		return "", p.errorf(tok, "expected %s but found %s", what, describe(tok))
	}
	return tok.text, nil
}

func describe(tok token) string {
	if tok.kind == tokenEOF {
		return "end of input"
	}
	return strconv.Quote(tok.text)
}

func (p *parser) parseMessage() (*Message, error) {
	if err := p.expect("message"); err != nil {
		return nil, err
	}
	name := ""
	if tok := p.peek(); tok.kind == tokenWord {
		name = p.next().text
	}
	fields, err := p.parseFields()
	if err != nil {
		return nil, err
	}
	return NewMessage(name, fields...), nil
}

func (p *parser) parseFields() ([]Node, error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	var fields []Node
	for {
		if tok := p.peek(); tok.kind == tokenPunct && tok.text == "}" {
			p.next()
			return fields, nil
		}
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
}

func (p *parser) parseField() (Node, error) {
	tok := p.next()
	repetition, ok := lookupRepetition(strings.ToLower(tok.text))
	if !ok || tok.kind != tokenWord {
		return nil, p.errorf(tok, "expected field repetition but found %s", describe(tok))
	}

	typeName, err := p.word("field type")
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(typeName, "group") {
		name, err := p.word("group name")
		if err != nil {
			return nil, err
		}
		annotation, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		children, err := p.parseFields()
		if err != nil {
			return nil, err
		}
		return WithRepetition(Annotated(Group(name, children...), annotation), repetition), nil
	}

	typ, err := p.parseType(tok, typeName)
	if err != nil {
		return nil, err
	}
	name, err := p.word("field name")
	if err != nil {
		return nil, err
	}
	annotation, err := p.parseAnnotation()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return WithRepetition(Annotated(Leaf(name, typ), annotation), repetition), nil
}

func (p *parser) parseType(at token, name string) (Type, error) {
	kind, ok := lookupKind(strings.ToLower(name))
	if !ok {
		return nil, p.errorf(at, "unknown primitive type %q", name)
	}
	switch kind {
	case Boolean:
		return BooleanType, nil
	case Int32:
		return Int32Type, nil
	case Int64:
		return Int64Type, nil
	case Int96:
		return Int96Type, nil
	case Float:
		return FloatType, nil
	case Double:
		return DoubleType, nil
	case ByteArray:
		return ByteArrayType, nil
	}

	if err := p.expect("("); err != nil {
		return nil, err
	}
	tok := p.next()
	length, err := strconv.Atoi(tok.text)
	if err != nil || length <= 0 {
		return nil, p.errorf(tok, "invalid fixed_len_byte_array length %s", describe(tok))
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return FixedLenByteArrayType(length), nil
}

// parseAnnotation reads an optional "(NAME)" or "(NAME(args,...))" suffix.
func (p *parser) parseAnnotation() (Annotation, error) {
	if tok := p.peek(); tok.kind != tokenPunct || tok.text != "(" {
		return NoAnnotation, nil
	}
	p.next()

	name, err := p.word("annotation")
	if err != nil {
		return NoAnnotation, err
	}
	annotation := new(strings.Builder)
	annotation.WriteString(name)

	if tok := p.peek(); tok.kind == tokenPunct && tok.text == "(" {
		p.next()
		annotation.WriteString("(")
		for {
			tok := p.next()
			switch {
			case tok.kind == tokenEOF:
				return NoAnnotation, p.errorf(tok, "unterminated annotation %q", annotation.String())
			case tok.text == ")":
				annotation.WriteString(")")
			case tok.kind == tokenPunct && tok.text != ",":
				return NoAnnotation, p.errorf(tok, "unexpected %q in annotation", tok.text)
			default:
				annotation.WriteString(tok.text)
				continue
			}
			break
		}
	}

	if err := p.expect(")"); err != nil {
		return NoAnnotation, err
	}
	return Annotation(annotation.String()), nil
}
