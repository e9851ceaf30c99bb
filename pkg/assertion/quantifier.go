package assertion

import (
	"fmt"
)

type Domain string

const (
	NODES Domain = "nodes"
	EDGES Domain = "edges"
)

type Mode string

const (
	FORALL Mode = "forall"
	EXISTS Mode = "exists"
)

// Quantifier binds its variable to every node or edge of the graph and
// evaluates its body. Over an empty domain FORALL holds and EXISTS does not.
type Quantifier struct {
	Mode     Mode
	Domain   Domain
	Variable string
	Body     Assertion
}

// NewQuantifier creates a quantifier. The variable name gets the
// variable sentinel if it does not carry it already.
func NewQuantifier(mode Mode, domain Domain, variable string, body any) (*Quantifier, error) {
	switch mode {
	case FORALL, EXISTS:
	default:
		return nil, fmt.Errorf("invalid quantifier mode %q", mode)
	}
	switch domain {
	case NODES, EDGES:
	default:
		return nil, fmt.Errorf("invalid quantifier domain %q", domain)
	}
	if variable == "" || variable == Sentinel {
		return nil, fmt.Errorf("quantifier requires a variable name")
	}
	if body == nil {
		return nil, fmt.Errorf("quantifier for %s requires a body", variable)
	}
	return &Quantifier{
		Mode:     mode,
		Domain:   domain,
		Variable: VariableName(variable),
		Body:     AsAssertion(body),
	}, nil
}

func quantifier(mode Mode, domain Domain, variable string, body any) *Quantifier {
	q, err := NewQuantifier(mode, domain, variable, body)
	if err != nil {
		panic(err)
	}
	return q
}

func ForAllNodes(variable string, body any) *Quantifier {
	return quantifier(FORALL, NODES, variable, body)
}

func ExistsNode(variable string, body any) *Quantifier {
	return quantifier(EXISTS, NODES, variable, body)
}

func ForAllEdges(variable string, body any) *Quantifier {
	return quantifier(FORALL, EDGES, variable, body)
}

func ExistsEdge(variable string, body any) *Quantifier {
	return quantifier(EXISTS, EDGES, variable, body)
}

func (q *Quantifier) function()  {}
func (q *Quantifier) assertion() {}

func (q *Quantifier) String() string {
	return fmt.Sprintf("(%s %s in %s: %s)", q.Mode, q.Variable, q.Domain, q.Body)
}
