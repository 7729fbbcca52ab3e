package cond

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Pattern is a compiled window condition. It is immutable after Parse.
type Pattern struct {
	source string
	root   node
}

// String returns the original condition text the pattern was parsed from.
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.source
}

// SyntaxError reports where and why a condition string failed to parse.
type SyntaxError struct {
	Text   string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("condition %q: %s at offset %d", e.Text, e.Msg, e.Offset)
}

type node interface{ isNode() }

type logicalNode struct {
	op    string // "&&" or "||"
	left  node
	right node
}

type negateNode struct {
	child node
}

type predicateNode struct {
	target string
	client bool // target@ refers to the client window
	index  int  // property index, -1 for unindexed
	op     string
	value  value
}

type value struct {
	str     string
	num     int64
	boolean bool
	kind    valueKind
}

type valueKind int

const (
	valueNone valueKind = iota // existence test, no operator given
	valueString
	valueInt
	valueBool
)

func (logicalNode) isNode()   {}
func (negateNode) isNode()    {}
func (predicateNode) isNode() {}

var operators = []string{"*=", "^=", "%=", "~=", ">=", "<=", "!=", "=", ">", "<"}

// Parse compiles a single condition string. The empty string is rejected.
func Parse(text string) (*Pattern, error) {
	p := &parser{text: text}
	p.skipSpace()
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.text) {
		return nil, p.errorf("unexpected trailing input")
	}
	return &Pattern{source: text, root: root}, nil
}

type parser struct {
	text string
	pos  int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Text: p.text, Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.text) && unicode.IsSpace(rune(p.text[p.pos])) {
		p.pos++
	}
}

func (p *parser) consume(tok string) bool {
	if strings.HasPrefix(p.text[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if !p.consume("||") {
			return left, nil
		}
		p.skipSpace()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = logicalNode{op: "||", left: left, right: right}
	}
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if !p.consume("&&") {
			return left, nil
		}
		p.skipSpace()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = logicalNode{op: "&&", left: left, right: right}
	}
}

func (p *parser) parseTerm() (node, error) {
	p.skipSpace()
	if p.consume("!") {
		child, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return negateNode{child: child}, nil
	}
	if p.consume("(") {
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.consume(")") {
			return nil, p.errorf("missing closing parenthesis")
		}
		return inner, nil
	}
	return p.parsePredicate()
}

func (p *parser) parsePredicate() (node, error) {
	target := p.scanIdent()
	if target == "" {
		return nil, p.errorf("expected a property name")
	}
	pred := predicateNode{target: target, index: -1}

	if p.consume("[") {
		p.skipSpace()
		idx := p.scanDigits()
		if idx == "" {
			return nil, p.errorf("expected property index")
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 {
			return nil, p.errorf("invalid property index %q", idx)
		}
		pred.index = n
		p.skipSpace()
		if !p.consume("]") {
			return nil, p.errorf("missing closing bracket")
		}
	}
	if p.consume("@") {
		pred.client = true
	}

	p.skipSpace()
	op := p.scanOperator()
	if op == "" {
		// Bare target: existence test.
		return pred, nil
	}
	pred.op = op

	p.skipSpace()
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	pred.value = val
	return pred, nil
}

func (p *parser) scanIdent() string {
	start := p.pos
	for p.pos < len(p.text) {
		c := p.text[p.pos]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' && p.pos > start {
			p.pos++
			continue
		}
		break
	}
	return p.text[start:p.pos]
}

func (p *parser) scanDigits() string {
	start := p.pos
	for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
		p.pos++
	}
	return p.text[start:p.pos]
}

func (p *parser) scanOperator() string {
	for _, op := range operators {
		if p.consume(op) {
			return op
		}
	}
	return ""
}

func (p *parser) parseValue() (value, error) {
	if p.pos >= len(p.text) {
		return value{}, p.errorf("expected a value")
	}
	switch c := p.text[p.pos]; {
	case c == '\'' || c == '"':
		s, err := p.scanQuoted(c)
		if err != nil {
			return value{}, err
		}
		return value{str: s, kind: valueString}, nil
	case c == '-' || c >= '0' && c <= '9':
		start := p.pos
		if c == '-' {
			p.pos++
		}
		digits := p.scanDigits()
		if digits == "" {
			return value{}, p.errorf("expected a number")
		}
		n, err := strconv.ParseInt(p.text[start:p.pos], 10, 64)
		if err != nil {
			return value{}, p.errorf("invalid number %q", p.text[start:p.pos])
		}
		return value{num: n, kind: valueInt}, nil
	default:
		word := p.scanIdent()
		switch word {
		case "true":
			return value{boolean: true, kind: valueBool}, nil
		case "false":
			return value{boolean: false, kind: valueBool}, nil
		}
		return value{}, p.errorf("expected a quoted string, number, or boolean")
	}
}

func (p *parser) scanQuoted(quote byte) (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.text) {
		c := p.text[p.pos]
		switch c {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.text) {
				return "", p.errorf("unterminated escape")
			}
			switch esc := p.text[p.pos]; esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(esc)
			}
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf("unterminated string")
}
