package assertion

import (
	"fmt"
)

// Equals holds if all operands are pairwise equal under the cross-type
// equality of graph.Equal. It is evaluated as chain, stopping at the first
// unequal neighbour pair.
type Equals struct {
	Operands []Function
}

func NewEquals(ops ...any) (*Equals, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("equality requires at least one operand")
	}
	return &Equals{Operands: operands(ops)}, nil
}

// Eq is like NewEquals but panics if no operand is given.
func Eq(ops ...any) *Equals {
	e, err := NewEquals(ops...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Equals) function()  {}
func (e *Equals) assertion() {}

func (e *Equals) String() string {
	if len(e.Operands) == 1 {
		return fmt.Sprintf("(%s = %s)", e.Operands[0], e.Operands[0])
	}
	return "(" + join(e.Operands, " = ") + ")"
}

////////////////////////////////////////////////////////////////////////////////

type Operator string

const (
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="
)

func (o Operator) holds(c int) bool {
	switch o {
	case GT:
		return c > 0
	case GE:
		return c >= 0
	case LT:
		return c < 0
	case LE:
		return c <= 0
	}
	return false
}

// NumberComparison compares two numeric operands. It is false if one of
// them does not evaluate to a number.
type NumberComparison struct {
	Operator Operator
	Left     Function
	Right    Function
}

func NewNumberComparison(op Operator, left, right any) (*NumberComparison, error) {
	switch op {
	case GT, GE, LT, LE:
	default:
		return nil, fmt.Errorf("invalid comparison operator %q", op)
	}
	return &NumberComparison{Operator: op, Left: Operand(left), Right: Operand(right)}, nil
}

func compare(op Operator, left, right any) *NumberComparison {
	c, err := NewNumberComparison(op, left, right)
	if err != nil {
		panic(err)
	}
	return c
}

func Gt(left, right any) *NumberComparison {
	return compare(GT, left, right)
}

func Ge(left, right any) *NumberComparison {
	return compare(GE, left, right)
}

func Lt(left, right any) *NumberComparison {
	return compare(LT, left, right)
}

func Le(left, right any) *NumberComparison {
	return compare(LE, left, right)
}

func (c *NumberComparison) function()  {}
func (c *NumberComparison) assertion() {}

func (c *NumberComparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left, c.Operator, c.Right)
}
