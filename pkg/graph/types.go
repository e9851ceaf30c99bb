package graph

import (
	"cmp"
	"fmt"

	"github.com/google/uuid"
)

// Id identifies a graph. It is chosen by whoever creates the graph.
type Id string

// NewId provides a random graph id for callers without an own naming scheme.
func NewId() Id {
	return Id(uuid.NewString())
}

// DerivedId is the id of the given generation of a graph derived from origin.
func DerivedId(origin Id, generation int) Id {
	return Id(fmt.Sprintf("%s@%d", origin, generation))
}

////////////////////////////////////////////////////////////////////////////////

type Node struct {
	ID   int64
	Data Value
}

func NewNode(id int64, data any) Node {
	return Node{ID: id, Data: ValueOf(data)}
}

func (n Node) String() string {
	return fmt.Sprintf("%d:%s", n.ID, n.Data)
}

func CompareNode(a, b Node) int {
	return cmp.Compare(a.ID, b.ID)
}

////////////////////////////////////////////////////////////////////////////////

type Edge struct {
	From  int64
	Label Value
	To    int64
}

func NewEdge(from int64, label any, to int64) Edge {
	return Edge{From: from, Label: ValueOf(label), To: to}
}

// Is checks for the identical triple.
func (e Edge) Is(from int64, label Value, to int64) bool {
	return e.From == from && e.To == to && Identical(e.Label, label)
}

// Touches checks whether the node is one of the edge's ends.
func (e Edge) Touches(id int64) bool {
	return e.From == id || e.To == id
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-[%s]->%d", e.From, e.Label, e.To)
}

func CompareEdge(a, b Edge) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	if c := cmp.Compare(a.To, b.To); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Label.Kind(), b.Label.Kind()); c != 0 {
		return c
	}
	return cmp.Compare(a.Label.Quoted(), b.Label.Quoted())
}
