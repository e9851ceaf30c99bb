// Package query provides a textual syntax for assertions.
//
//	expr     := implies
//	implies  := or [ "->" implies ]
//	or       := and { "||" and }
//	and      := unary { "&&" unary }
//	unary    := "!" unary | quant | cmp
//	quant    := ("forall"|"exists") var "in" ("nodes"|"edges") ":" expr
//	cmp      := term [ ("=" | ">" | ">=" | "<" | "<=") term { "=" term } ]
//	term     := "(" expr ")" | number | string | var | "null" | "true" | "false"
//	          | ("label"|"edgelabel"|"current") "(" expr ")"
//	          | ("connected"|"adjacent") "(" expr "," expr "," expr ")"
//	var      := "$" word
//
// The String method of every assertion renders this syntax.
package query

import (
	"github.com/mandelsoft/kgassert/pkg/assertion"
	"github.com/mandelsoft/kgassert/pkg/scanner"
)

type parser struct {
	scanner.Scanner
}

func newParser(in string) *parser {
	return &parser{scanner.NewScanner(in)}
}

// Parse parses an assertion.
func Parse(in string) (assertion.Assertion, error) {
	f, err := ParseFunction(in)
	if err != nil {
		return nil, err
	}
	return assertion.AsAssertion(f), nil
}

// ParseFunction parses any function, for example a label lookup.
func ParseFunction(in string) (assertion.Function, error) {
	p := newParser(in)

	f, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.EOF() {
		return nil, p.Errorf("unexpected character %q", string(p.Current()))
	}
	return f, nil
}

// MustParse is like Parse but panics on syntax errors.
func MustParse(in string) assertion.Assertion {
	a, err := Parse(in)
	if err != nil {
		panic(err)
	}
	return a
}

////////////////////////////////////////////////////////////////////////////////

func (p *parser) parseExpression() (assertion.Function, error) {
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	p.SkipBlanks()
	return f, nil
}

func (p *parser) parseImplies() (assertion.Function, error) {
	o1, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.SkipBlanks()
	if !p.ConsumeToken("->") {
		return o1, nil
	}
	o2, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	return assertion.Implies(o1, o2), nil
}

func (p *parser) parseOr() (assertion.Function, error) {
	return p.parseConnective("||", p.parseAnd, assertion.Or)
}

func (p *parser) parseAnd() (assertion.Function, error) {
	return p.parseConnective("&&", p.parseUnary, assertion.And)
}

func (p *parser) parseConnective(op string, operand func() (assertion.Function, error), create func(...any) assertion.Assertion) (assertion.Function, error) {
	o1, err := operand()
	if err != nil {
		return nil, err
	}
	ops := []any{o1}
	for {
		p.SkipBlanks()
		if !p.ConsumeToken(op) {
			break
		}
		o2, err := operand()
		if err != nil {
			return nil, err
		}
		ops = append(ops, o2)
	}
	if len(ops) == 1 {
		return o1, nil
	}
	return create(ops...), nil
}

func (p *parser) parseUnary() (assertion.Function, error) {
	p.SkipBlanks()
	if p.Current() == '!' && p.Peek() != '=' {
		p.Next()
		o, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return assertion.Not(o), nil
	}
	for _, m := range []assertion.Mode{assertion.FORALL, assertion.EXISTS} {
		if p.ConsumeKeyword(string(m)) {
			return p.parseQuantifier(m)
		}
	}
	return p.parseComparison()
}

func (p *parser) parseQuantifier(mode assertion.Mode) (assertion.Function, error) {
	p.SkipBlanks()
	v, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	p.SkipBlanks()
	if !p.ConsumeKeyword("in") {
		return nil, p.Errorf("'in' expected after quantifier variable %s", v.Name)
	}
	p.SkipBlanks()
	var domain assertion.Domain
	switch {
	case p.ConsumeKeyword(string(assertion.NODES)):
		domain = assertion.NODES
	case p.ConsumeKeyword(string(assertion.EDGES)):
		domain = assertion.EDGES
	default:
		return nil, p.Errorf("quantifier domain (nodes or edges) expected")
	}
	p.SkipBlanks()
	if err := p.ConsumeRune(':'); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	q, err := assertion.NewQuantifier(mode, domain, v.Name, body)
	if err != nil {
		return nil, p.Errorf("%s", err)
	}
	return q, nil
}

var comparisons = []assertion.Operator{assertion.GE, assertion.LE, assertion.GT, assertion.LT}

func (p *parser) parseComparison() (assertion.Function, error) {
	o1, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	p.SkipBlanks()
	for _, op := range comparisons {
		if p.ConsumeToken(string(op)) {
			o2, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			return assertion.NewNumberComparison(op, o1, o2)
		}
	}

	ops := []any{o1}
	for {
		p.SkipBlanks()
		if !p.ConsumeToken("=") {
			break
		}
		o, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	if len(ops) == 1 {
		return o1, nil
	}
	return assertion.NewEquals(ops...)
}

func (p *parser) parseTerm() (assertion.Function, error) {
	n := p.SkipBlanks()
	switch {
	case p.EOF():
		return nil, p.Errorf("unexpected end of expression")
	case n == '(':
		p.Next()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.ConsumeRune(')'); err != nil {
			return nil, err
		}
		return e, nil
	case n == '"':
		s, err := p.Quoted()
		if err != nil {
			return nil, err
		}
		return assertion.Const(s), nil
	case n == '$':
		return p.parseVariable()
	case n == '-' || ('0' <= n && n <= '9'):
		v, err := p.Number()
		if err != nil {
			return nil, err
		}
		return assertion.Const(v), nil
	case scanner.IsWordRune(n):
		return p.parseName()
	default:
		return nil, p.Errorf("unexpected character %q for operand", string(n))
	}
}

func (p *parser) parseVariable() (*assertion.Variable, error) {
	if err := p.ConsumeRune('$'); err != nil {
		return nil, err
	}
	name := p.Word()
	if name == "" {
		return nil, p.Errorf("variable name expected")
	}
	return assertion.Var(name), nil
}

func (p *parser) parseName() (assertion.Function, error) {
	name := p.Word()
	switch name {
	case "null":
		return assertion.Const(nil), nil
	case "true":
		return assertion.Const(true), nil
	case "false":
		return assertion.Const(false), nil
	case "label", "edgelabel", "current":
		args, err := p.parseArguments(name, 1)
		if err != nil {
			return nil, err
		}
		switch name {
		case "label":
			return assertion.L(args[0]), nil
		case "edgelabel":
			return assertion.EL(args[0]), nil
		default:
			return assertion.Cur(args[0]), nil
		}
	case "connected", "adjacent":
		args, err := p.parseArguments(name, 3)
		if err != nil {
			return nil, err
		}
		if name == "connected" {
			return assertion.Connected(args[0], args[1], args[2]), nil
		}
		return assertion.ConnectedUndir(args[0], args[1], args[2]), nil
	default:
		return nil, p.Errorf("unknown identifier %q", name)
	}
}

func (p *parser) parseArguments(name string, n int) ([]assertion.Function, error) {
	p.SkipBlanks()
	if err := p.ConsumeRune('('); err != nil {
		return nil, err
	}
	var args []assertion.Function
	for {
		a, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.Current() != ',' {
			break
		}
		p.Next()
	}
	if err := p.ConsumeRune(')'); err != nil {
		return nil, err
	}
	if len(args) != n {
		return nil, p.Errorf("%s requires %d argument(s), but found %d", name, n, len(args))
	}
	return args, nil
}
