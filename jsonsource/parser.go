// Package jsonsource builds an ast.Node tree from raw JSON document
// bytes, the plain-JSON counterpart to the yamlsource package.
//
// encoding/json's token decoder only reports how many bytes have been
// consumed AFTER a token is read, never where the token started, so it
// cannot drive the offset invariants the ast package depends on
// without reconstructing token boundaries by hand anyway. This package
// instead scans the bytes directly — still stdlib only, just without
// the indirection through encoding/json.Decoder.
package jsonsource

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/kaptinlin/astschema/ast"
)

// Parse builds an ast.Node tree for the root value in src. It fails on
// malformed JSON; the tree is otherwise immutable once returned.
func Parse(src []byte) (*ast.Node, error) {
	p := &parser{src: src}
	p.skipWhitespace()
	node, err := p.parseValue(nil)
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("jsonsource: unexpected trailing data at offset %d", p.pos)
	}
	return node, nil
}

type parser struct {
	src []byte
	pos int
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) parseValue(parent *ast.Node) (*ast.Node, error) {
	start := p.pos
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("jsonsource: unexpected end of input at offset %d", start)
	}
	switch {
	case c == '{':
		return p.parseObject(parent)
	case c == '[':
		return p.parseArray(parent)
	case c == '"':
		s, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.Node{Kind: ast.KindString, Offset: uint32(start), Length: uint32(p.pos - start), StringValue: s, Parent: parent}, nil
	case c == 't' || c == 'f':
		return p.parseBool(parent, start)
	case c == 'n':
		return p.parseNull(parent, start)
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber(parent, start)
	default:
		return nil, fmt.Errorf("jsonsource: unexpected character %q at offset %d", c, start)
	}
}

func (p *parser) parseObject(parent *ast.Node) (*ast.Node, error) {
	start := p.pos
	node := &ast.Node{Kind: ast.KindObject, Offset: uint32(start), Parent: parent}
	p.pos++ // '{'
	p.skipWhitespace()

	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		node.Length = uint32(p.pos - start)
		return node, nil
	}

	for {
		p.skipWhitespace()
		propStart := p.pos
		if c, ok := p.peek(); !ok || c != '"' {
			return nil, fmt.Errorf("jsonsource: expected property key at offset %d", p.pos)
		}
		keyStart := p.pos
		keyStr, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		keyNode := &ast.Node{Kind: ast.KindString, Offset: uint32(keyStart), Length: uint32(p.pos - keyStart), StringValue: keyStr}

		p.skipWhitespace()
		colonOffset := int32(-1)
		if c, ok := p.peek(); ok && c == ':' {
			colonOffset = int32(p.pos)
			p.pos++
		} else {
			return nil, fmt.Errorf("jsonsource: expected ':' at offset %d", p.pos)
		}
		p.skipWhitespace()

		propNode := &ast.Node{Kind: ast.KindProperty, Offset: uint32(propStart), Parent: node, ColonOffset: colonOffset}
		valueNode, err := p.parseValue(propNode)
		if err != nil {
			return nil, err
		}
		keyNode.Parent = propNode
		propNode.Key = keyNode
		propNode.Value = valueNode
		propNode.Length = uint32(p.pos) - propNode.Offset
		node.Properties = append(node.Properties, propNode)

		p.skipWhitespace()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("jsonsource: unexpected end of object at offset %d", p.pos)
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == '}' {
			p.pos++
			break
		}
		return nil, fmt.Errorf("jsonsource: expected ',' or '}' at offset %d", p.pos)
	}

	node.Length = uint32(p.pos - start)
	return node, nil
}

func (p *parser) parseArray(parent *ast.Node) (*ast.Node, error) {
	start := p.pos
	node := &ast.Node{Kind: ast.KindArray, Offset: uint32(start), Parent: parent}
	p.pos++ // '['
	p.skipWhitespace()

	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		node.Length = uint32(p.pos - start)
		return node, nil
	}

	for {
		p.skipWhitespace()
		item, err := p.parseValue(node)
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, item)

		p.skipWhitespace()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("jsonsource: unexpected end of array at offset %d", p.pos)
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == ']' {
			p.pos++
			break
		}
		return nil, fmt.Errorf("jsonsource: expected ',' or ']' at offset %d", p.pos)
	}

	node.Length = uint32(p.pos - start)
	return node, nil
}

func (p *parser) parseBool(parent *ast.Node, start int) (*ast.Node, error) {
	if strings.HasPrefix(string(p.src[p.pos:]), "true") {
		p.pos += 4
		return &ast.Node{Kind: ast.KindBoolean, Offset: uint32(start), Length: 4, BoolValue: true, Parent: parent}, nil
	}
	if strings.HasPrefix(string(p.src[p.pos:]), "false") {
		p.pos += 5
		return &ast.Node{Kind: ast.KindBoolean, Offset: uint32(start), Length: 5, BoolValue: false, Parent: parent}, nil
	}
	return nil, fmt.Errorf("jsonsource: invalid literal at offset %d", start)
}

func (p *parser) parseNull(parent *ast.Node, start int) (*ast.Node, error) {
	if strings.HasPrefix(string(p.src[p.pos:]), "null") {
		p.pos += 4
		return &ast.Node{Kind: ast.KindNull, Offset: uint32(start), Length: 4, Parent: parent}, nil
	}
	return nil, fmt.Errorf("jsonsource: invalid literal at offset %d", start)
}

func (p *parser) parseNumber(parent *ast.Node, start int) (*ast.Node, error) {
	isInteger := true
	if c, _ := p.peek(); c == '-' {
		p.pos++
	}
	for {
		c, ok := p.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	if c, ok := p.peek(); ok && c == '.' {
		isInteger = false
		p.pos++
		for {
			c, ok := p.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			p.pos++
		}
	}
	if c, ok := p.peek(); ok && (c == 'e' || c == 'E') {
		isInteger = false
		p.pos++
		if c, ok := p.peek(); ok && (c == '+' || c == '-') {
			p.pos++
		}
		for {
			c, ok := p.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			p.pos++
		}
	}

	lexeme := string(p.src[start:p.pos])
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return nil, fmt.Errorf("jsonsource: invalid number %q at offset %d: %w", lexeme, start, err)
	}
	return &ast.Node{Kind: ast.KindNumber, Offset: uint32(start), Length: uint32(p.pos - start), NumberValue: v, IsInteger: isInteger, Parent: parent}, nil
}

// parseStringLiteral consumes a quoted JSON string starting at p.pos
// and returns its decoded value; p.pos ends just past the closing
// quote.
func (p *parser) parseStringLiteral() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	var sb strings.Builder
	for {
		c, ok := p.peek()
		if !ok {
			return "", fmt.Errorf("jsonsource: unterminated string starting at offset %d", start)
		}
		if c == '"' {
			p.pos++
			return sb.String(), nil
		}
		if c != '\\' {
			r, size := utf8.DecodeRune(p.src[p.pos:])
			sb.WriteRune(r)
			p.pos += size
			continue
		}
		p.pos++
		esc, ok := p.peek()
		if !ok {
			return "", fmt.Errorf("jsonsource: unterminated escape at offset %d", p.pos)
		}
		switch esc {
		case '"', '\\', '/':
			sb.WriteByte(esc)
			p.pos++
		case 'b':
			sb.WriteByte('\b')
			p.pos++
		case 'f':
			sb.WriteByte('\f')
			p.pos++
		case 'n':
			sb.WriteByte('\n')
			p.pos++
		case 'r':
			sb.WriteByte('\r')
			p.pos++
		case 't':
			sb.WriteByte('\t')
			p.pos++
		case 'u':
			r, err := p.parseUnicodeEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
		default:
			return "", fmt.Errorf("jsonsource: invalid escape %q at offset %d", esc, p.pos)
		}
	}
}

func (p *parser) parseUnicodeEscape() (rune, error) {
	p.pos++ // 'u'
	hi, err := p.readHex4()
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(rune(hi)) {
		if p.pos+1 < len(p.src) && p.src[p.pos] == '\\' && p.src[p.pos+1] == 'u' {
			mark := p.pos
			p.pos += 2
			lo, err := p.readHex4()
			if err == nil {
				if r := utf16.DecodeRune(rune(hi), rune(lo)); r != utf8.RuneError {
					return r, nil
				}
			}
			p.pos = mark
		}
		return utf8.RuneError, nil
	}
	return rune(hi), nil
}

func (p *parser) readHex4() (uint32, error) {
	if p.pos+4 > len(p.src) {
		return 0, fmt.Errorf("jsonsource: truncated \\u escape at offset %d", p.pos)
	}
	v, err := strconv.ParseUint(string(p.src[p.pos:p.pos+4]), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("jsonsource: invalid \\u escape at offset %d: %w", p.pos, err)
	}
	p.pos += 4
	return uint32(v), nil
}
