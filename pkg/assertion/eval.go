package assertion

import (
	"fmt"

	"github.com/mandelsoft/kgassert/pkg/graph"
	"github.com/mandelsoft/kgassert/pkg/valuation"
)

// Check evaluates an assertion for a graph. If no valuation is given,
// the empty one is used.
func Check(a Assertion, g *graph.Graph, nu ...valuation.Valuation) bool {
	r := holds(a, g, firstValuation(nu))
	log.Trace("checked {{assertion}} on {{graph}}: {{result}}", "assertion", a, "graph", g.Id(), "result", r)
	return r
}

// Evaluate evaluates any function for a graph.
func Evaluate(f Function, g *graph.Graph, nu ...valuation.Valuation) graph.Value {
	return evaluate(f, g, firstValuation(nu))
}

func firstValuation(nu []valuation.Valuation) valuation.Valuation {
	if len(nu) > 0 {
		return nu[0]
	}
	return valuation.Empty()
}

func evaluate(f Function, g *graph.Graph, nu valuation.Valuation) graph.Value {
	switch o := f.(type) {
	case *Constant:
		return o.Value
	case *Variable:
		return nu.Lookup(o.Name)
	case *LabelOf:
		if n, ok := evaluate(o.Operand, g, nu).AsNode(); ok {
			return n.Data
		}
		return graph.Null
	case *EdgeLabelOf:
		if e, ok := evaluate(o.Operand, g, nu).AsEdge(); ok {
			return e.Label
		}
		return graph.Null
	case *Current:
		v := evaluate(o.Operand, g, nu)
		if n, ok := v.AsNode(); ok {
			if c, ok := g.Node(n.ID); ok {
				return graph.NodeRef(c)
			}
		}
		if e, ok := v.AsEdge(); ok {
			if g.HasEdge(e.From, e.Label, e.To) {
				return v
			}
		}
		return graph.Null
	case Assertion:
		return graph.Bool(holds(o, g, nu))
	default:
		panic(fmt.Sprintf("unknown function type %T", f))
	}
}

func holds(a Assertion, g *graph.Graph, nu valuation.Valuation) bool {
	switch o := a.(type) {
	case *Truth:
		return evaluate(o.Operand, g, nu).Truthy()
	case *Conjunction:
		for _, c := range o.Operands {
			if !holds(c, g, nu) {
				return false
			}
		}
		return true
	case *Disjunction:
		for _, c := range o.Operands {
			if holds(c, g, nu) {
				return true
			}
		}
		return false
	case *Negation:
		return !holds(o.Operand, g, nu)
	case *Quantifier:
		return quantify(o, g, nu)
	case *Equals:
		prev := evaluate(o.Operands[0], g, nu)
		for _, op := range o.Operands[1:] {
			next := evaluate(op, g, nu)
			if !graph.Equal(prev, next) {
				return false
			}
			prev = next
		}
		return true
	case *NumberComparison:
		c, ok := graph.Compare(evaluate(o.Left, g, nu), evaluate(o.Right, g, nu))
		return ok && o.Operator.holds(c)
	case *ConnectedBy:
		from := evaluate(o.From, g, nu)
		label := evaluate(o.Label, g, nu)
		to := evaluate(o.To, g, nu)
		if g.Matches(from, label, to) {
			return true
		}
		return !o.Directed && g.Matches(to, label, from)
	default:
		panic(fmt.Sprintf("unknown assertion type %T", a))
	}
}

func quantify(q *Quantifier, g *graph.Graph, nu valuation.Valuation) bool {
	var domain []graph.Value
	switch q.Domain {
	case NODES:
		for _, n := range g.Nodes() {
			domain = append(domain, graph.NodeRef(n))
		}
	case EDGES:
		for _, e := range g.Edges() {
			domain = append(domain, graph.EdgeRef(e))
		}
	}
	// forall stops at the first element not satisfying the body,
	// exists at the first one satisfying it.
	stop := q.Mode == EXISTS
	for _, v := range domain {
		if holds(q.Body, g, nu.Bind(q.Variable, v)) == stop {
			return stop
		}
	}
	return !stop
}
