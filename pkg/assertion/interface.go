// Package assertion provides first-order assertions over knowledge graphs.
//
// An assertion is a tree built once from a closed set of node kinds:
// constants, variable references, label lookups, Boolean connectives,
// quantifiers over nodes or edges, comparisons and edge patterns.
// It can then be evaluated any number of times against different graphs
// and valuations with Check (assertions) or Evaluate (all functions).
//
// Operands given as plain Go values are converted uniformly: a string
// starting with the variable sentinel '$' denotes a variable reference,
// every other string is a text constant, Function values are taken as they
// are and all remaining values are converted with graph.ValueOf.
//
// Evaluation never fails. Unbound variables evaluate to null, comparisons
// of non-numeric values are false, and null never matches a pattern.
// The cost of nested quantifiers grows with the domain size to the power of
// the nesting depth; limiting it is up to the caller.
package assertion

import (
	"fmt"
	"strings"

	"github.com/mandelsoft/kgassert/pkg/graph"
)

// Sentinel marks a string operand as variable reference.
const Sentinel = "$"

// Function is a node of an assertion tree producing a value.
type Function interface {
	fmt.Stringer
	function()
}

// Assertion is a Function producing a boolean value.
type Assertion interface {
	Function
	assertion()
}

// IsVariable checks whether a string operand denotes a variable reference.
func IsVariable(s string) bool {
	return len(s) > len(Sentinel) && strings.HasPrefix(s, Sentinel)
}

// VariableName normalizes a variable name to carry the sentinel.
func VariableName(name string) string {
	if strings.HasPrefix(name, Sentinel) {
		return name
	}
	return Sentinel + name
}

// Operand converts a Go value into a Function.
func Operand(o any) Function {
	switch v := o.(type) {
	case Function:
		return v
	case string:
		if IsVariable(v) {
			return Var(v)
		}
		return Const(v)
	default:
		return Const(v)
	}
}

// AsAssertion converts an operand into an assertion. Functions which are
// no assertions hold if they evaluate to the boolean value true.
func AsAssertion(o any) Assertion {
	f := Operand(o)
	if a, ok := f.(Assertion); ok {
		return a
	}
	return &Truth{Operand: f}
}

func operands(ops []any) []Function {
	r := make([]Function, len(ops))
	for i, o := range ops {
		r[i] = Operand(o)
	}
	return r
}

func assertions(ops []any) []Assertion {
	r := make([]Assertion, len(ops))
	for i, o := range ops {
		r[i] = AsAssertion(o)
	}
	return r
}

func join(list []Function, sep string) string {
	s := make([]string, len(list))
	for i, f := range list {
		s[i] = f.String()
	}
	return strings.Join(s, sep)
}

////////////////////////////////////////////////////////////////////////////////

// Constant always evaluates to its value.
type Constant struct {
	Value graph.Value
}

func Const(v any) *Constant {
	return &Constant{Value: graph.ValueOf(v)}
}

func (c *Constant) function() {}

func (c *Constant) String() string {
	switch c.Value.Kind() {
	case graph.KindNode, graph.KindEdge, graph.KindOpaque:
		return fmt.Sprintf("<%s %s>", c.Value.Kind(), c.Value)
	default:
		return c.Value.Quoted()
	}
}

// Variable evaluates to the value bound to its name, or null.
type Variable struct {
	Name string
}

func Var(name string) *Variable {
	return &Variable{Name: VariableName(name)}
}

func (v *Variable) function() {}

func (v *Variable) String() string {
	return v.Name
}

// LabelOf evaluates to the data of the node its operand evaluates to.
// For everything else it is null.
type LabelOf struct {
	Operand Function
}

// L is a short hand for a LabelOf function.
func L(ref any) *LabelOf {
	return &LabelOf{Operand: Operand(ref)}
}

func (l *LabelOf) function() {}

func (l *LabelOf) String() string {
	return fmt.Sprintf("label(%s)", l.Operand)
}

// EdgeLabelOf evaluates to the label of the edge its operand evaluates to.
type EdgeLabelOf struct {
	Operand Function
}

func EL(ref any) *EdgeLabelOf {
	return &EdgeLabelOf{Operand: Operand(ref)}
}

func (l *EdgeLabelOf) function() {}

func (l *EdgeLabelOf) String() string {
	return fmt.Sprintf("edgelabel(%s)", l.Operand)
}

// Current resolves a node or edge evaluated by its operand in the graph
// under evaluation. A node is looked up by its id, so a node bound while
// evaluating some graph yields its state in the current one. It is null
// if the graph does not contain the entity.
type Current struct {
	Operand Function
}

func Cur(ref any) *Current {
	return &Current{Operand: Operand(ref)}
}

func (c *Current) function() {}

func (c *Current) String() string {
	return fmt.Sprintf("current(%s)", c.Operand)
}

// Truth holds if its operand evaluates to true.
type Truth struct {
	Operand Function
}

func (t *Truth) function()  {}
func (t *Truth) assertion() {}

func (t *Truth) String() string {
	return t.Operand.String()
}
