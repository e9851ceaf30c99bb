package update

import (
	"fmt"

	"github.com/mandelsoft/kgassert/pkg/graph"
)

// AddNode inserts a node, replacing an existing one with the same id.
type AddNode struct {
	ID   int64
	Data graph.Value
}

var _ Update = (*AddNode)(nil)

func NewAddNode(id int64, data any) *AddNode {
	return &AddNode{ID: id, Data: graph.ValueOf(data)}
}

func (u *AddNode) Apply(g *graph.Graph) *graph.Graph {
	return apply(u, g)
}

func (u *AddNode) ApplyTo(g *graph.Graph) {
	g.AddNode(u.ID, u.Data)
}

func (u *AddNode) String() string {
	return fmt.Sprintf("add node %d (%s)", u.ID, u.Data.Quoted())
}

////////////////////////////////////////////////////////////////////////////////

// DeleteNode removes a node together with all its edges.
// A missing node is ignored.
type DeleteNode struct {
	ID int64
}

var _ Update = (*DeleteNode)(nil)

func NewDeleteNode(id int64) *DeleteNode {
	return &DeleteNode{ID: id}
}

func (u *DeleteNode) Apply(g *graph.Graph) *graph.Graph {
	return apply(u, g)
}

func (u *DeleteNode) ApplyTo(g *graph.Graph) {
	g.DeleteNode(u.ID)
}

func (u *DeleteNode) String() string {
	return fmt.Sprintf("delete node %d", u.ID)
}

////////////////////////////////////////////////////////////////////////////////

// SetNodeData replaces the data of a node. The node is created if it
// does not exist.
type SetNodeData struct {
	ID   int64
	Data graph.Value
}

var _ Update = (*SetNodeData)(nil)

func NewSetNodeData(id int64, data any) *SetNodeData {
	return &SetNodeData{ID: id, Data: graph.ValueOf(data)}
}

func (u *SetNodeData) Apply(g *graph.Graph) *graph.Graph {
	return apply(u, g)
}

func (u *SetNodeData) ApplyTo(g *graph.Graph) {
	g.SetNodeData(u.ID, u.Data)
}

func (u *SetNodeData) String() string {
	return fmt.Sprintf("set node %d to %s", u.ID, u.Data.Quoted())
}
