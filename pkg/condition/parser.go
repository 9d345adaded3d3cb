package condition

import (
	"strconv"
	"strings"
)

// Parse turns an expression without placeholders into an AST.
func Parse(expr string) (Node, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{src: expr, toks: toks}
	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected "+describe(t))
	}
	return n, nil
}

type parser struct {
	src  string
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) accept(kind tokenKind, text string) bool {
	if t := p.peek(); t.kind == kind && t.text == text {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(kind tokenKind, text string) error {
	if p.accept(kind, text) {
		return nil
	}
	t := p.peek()
	return p.errorf(t, "expected "+text+", found "+describe(t))
}

func (p *parser) errorf(t token, msg string) error {
	return &SyntaxError{Expr: p.src, Pos: t.pos, Msg: msg}
}

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.accept(tokOp, "||") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: "||", Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseCompare()
	if err != nil {
		return nil, err
	}
	for p.accept(tokOp, "&&") {
		right, err := p.parseCompare()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: "&&", Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseCompare() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	t := p.peek()
	if t.kind != tokOp || !isComparison(t.text) {
		return left, nil
	}
	p.next()
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return Binary{Op: t.text, Left: left, Right: right}, nil
}

// parseUnary binds "!" tighter than comparisons: "!a === b" is "(!a) === b".
func (p *parser) parseUnary() (Node, error) {
	if p.accept(tokOp, "!") {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	}
	return p.parsePrimary()
}

func isComparison(op string) bool {
	switch op {
	case "===", "!==", "==", "!=", "<", "<=", ">", ">=":
		return true
	}
	return false
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokString:
		return Literal{Value: t.text}, nil
	case tokNumber:
		return parseNumber(p, t)
	case tokIdent:
		switch strings.ToLower(t.text) {
		case "true":
			return Literal{Value: true}, nil
		case "false":
			return Literal{Value: false}, nil
		case "null":
			return Literal{Value: nil}, nil
		}
		if !p.accept(tokPunct, "(") {
			return nil, p.errorf(t, "unknown identifier "+t.text)
		}
		args, err := p.parseItems(")")
		if err != nil {
			return nil, err
		}
		return Call{Name: t.text, Args: args}, nil
	case tokPunct:
		switch t.text {
		case "(":
			n, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(tokPunct, ")"); err != nil {
				return nil, err
			}
			return n, nil
		case "[":
			items, err := p.parseItems("]")
			if err != nil {
				return nil, err
			}
			return List{Items: items}, nil
		case "{":
			return p.parseMap()
		}
	}
	return nil, p.errorf(t, "unexpected "+describe(t))
}

// parseItems reads a comma separated expression list up to the closing token.
func (p *parser) parseItems(closing string) ([]Node, error) {
	var items []Node
	if p.accept(tokPunct, closing) {
		return items, nil
	}
	for {
		n, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		items = append(items, n)
		if p.accept(tokPunct, closing) {
			return items, nil
		}
		if err := p.expect(tokPunct, ","); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseMap() (Node, error) {
	m := Map{}
	if p.accept(tokPunct, "}") {
		return m, nil
	}
	for {
		k, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokPunct, ":"); err != nil {
			return nil, err
		}
		v, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		m.Keys = append(m.Keys, k)
		m.Values = append(m.Values, v)
		if p.accept(tokPunct, "}") {
			return m, nil
		}
		if err := p.expect(tokPunct, ","); err != nil {
			return nil, err
		}
	}
}

func parseNumber(p *parser, t token) (Node, error) {
	if i, err := strconv.Atoi(t.text); err == nil {
		return Literal{Value: i}, nil
	}
	f, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return nil, p.errorf(t, "malformed number "+t.text)
	}
	return Literal{Value: f}, nil
}

func describe(t token) string {
	if t.kind == tokEOF {
		return "end of expression"
	}
	return strconv.Quote(t.text)
}
