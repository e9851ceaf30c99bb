package update

import (
	"fmt"

	"github.com/mandelsoft/kgassert/pkg/graph"
)

type AddEdge struct {
	Edge graph.Edge
}

var _ Update = (*AddEdge)(nil)

func NewAddEdge(from int64, label any, to int64) *AddEdge {
	return &AddEdge{Edge: graph.NewEdge(from, label, to)}
}

func (u *AddEdge) Apply(g *graph.Graph) *graph.Graph {
	return apply(u, g)
}

func (u *AddEdge) ApplyTo(g *graph.Graph) {
	g.Add(u.Edge)
}

func (u *AddEdge) String() string {
	return fmt.Sprintf("add edge %s", u.Edge)
}

////////////////////////////////////////////////////////////////////////////////

type DeleteEdge struct {
	Edge graph.Edge
}

var _ Update = (*DeleteEdge)(nil)

func NewDeleteEdge(from int64, label any, to int64) *DeleteEdge {
	return &DeleteEdge{Edge: graph.NewEdge(from, label, to)}
}

func (u *DeleteEdge) Apply(g *graph.Graph) *graph.Graph {
	return apply(u, g)
}

func (u *DeleteEdge) ApplyTo(g *graph.Graph) {
	g.DeleteEdge(u.Edge.From, u.Edge.Label, u.Edge.To)
}

func (u *DeleteEdge) String() string {
	return fmt.Sprintf("delete edge %s", u.Edge)
}

////////////////////////////////////////////////////////////////////////////////

// SetEdgeLabel replaces the label of an edge. A missing edge is
// created with the new label.
type SetEdgeLabel struct {
	Edge  graph.Edge
	Label graph.Value
}

var _ Update = (*SetEdgeLabel)(nil)

func NewSetEdgeLabel(from int64, label any, to int64, newlabel any) *SetEdgeLabel {
	return &SetEdgeLabel{Edge: graph.NewEdge(from, label, to), Label: graph.ValueOf(newlabel)}
}

func (u *SetEdgeLabel) Apply(g *graph.Graph) *graph.Graph {
	return apply(u, g)
}

func (u *SetEdgeLabel) ApplyTo(g *graph.Graph) {
	g.SetEdgeLabel(u.Edge.From, u.Edge.Label, u.Edge.To, u.Label)
}

func (u *SetEdgeLabel) String() string {
	return fmt.Sprintf("relabel edge %s to %s", u.Edge, u.Label.Quoted())
}
