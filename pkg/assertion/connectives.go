package assertion

import (
	"fmt"
	"strings"
)

type Conjunction struct {
	Operands []Assertion
}

func (c *Conjunction) function()  {}
func (c *Conjunction) assertion() {}

func (c *Conjunction) String() string {
	return connective(c.Operands, " && ", "true")
}

type Disjunction struct {
	Operands []Assertion
}

func (c *Disjunction) function()  {}
func (c *Disjunction) assertion() {}

func (c *Disjunction) String() string {
	return connective(c.Operands, " || ", "false")
}

func connective(ops []Assertion, sep string, empty string) string {
	if len(ops) == 0 {
		return empty
	}
	s := make([]string, len(ops))
	for i, o := range ops {
		s[i] = o.String()
	}
	return "(" + strings.Join(s, sep) + ")"
}

// And creates a conjunction. Operands being conjunctions themselves
// contribute their operands directly. A single operand is returned as it is.
func And(ops ...any) Assertion {
	list := assertions(ops)
	if len(list) == 1 {
		return list[0]
	}
	var flat []Assertion
	for _, o := range list {
		if c, ok := o.(*Conjunction); ok {
			flat = append(flat, c.Operands...)
		} else {
			flat = append(flat, o)
		}
	}
	return &Conjunction{Operands: flat}
}

// Or creates a disjunction, flattening direct disjunction operands.
func Or(ops ...any) Assertion {
	list := assertions(ops)
	if len(list) == 1 {
		return list[0]
	}
	var flat []Assertion
	for _, o := range list {
		if d, ok := o.(*Disjunction); ok {
			flat = append(flat, d.Operands...)
		} else {
			flat = append(flat, o)
		}
	}
	return &Disjunction{Operands: flat}
}

type Negation struct {
	Operand Assertion
}

func (n *Negation) function()  {}
func (n *Negation) assertion() {}

func (n *Negation) String() string {
	return fmt.Sprintf("!%s", n.Operand)
}

func Not(op any) Assertion {
	return &Negation{Operand: AsAssertion(op)}
}

// Implies is the material implication, expressed as !left || right.
func Implies(left, right any) Assertion {
	return Or(Not(left), right)
}
