package assertion

import (
	"fmt"
)

// ConnectedBy holds if the graph contains an edge matching the pattern
// given by its operands (see graph.Graph.Matches). An undirected pattern
// also accepts the edge in the reverse direction.
type ConnectedBy struct {
	Directed bool
	From     Function
	Label    Function
	To       Function
}

func Connected(from, label, to any) *ConnectedBy {
	return &ConnectedBy{Directed: true, From: Operand(from), Label: Operand(label), To: Operand(to)}
}

func ConnectedUndir(from, label, to any) *ConnectedBy {
	return &ConnectedBy{Directed: false, From: Operand(from), Label: Operand(label), To: Operand(to)}
}

func (c *ConnectedBy) function()  {}
func (c *ConnectedBy) assertion() {}

func (c *ConnectedBy) String() string {
	name := "connected"
	if !c.Directed {
		name = "adjacent"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", name, c.From, c.Label, c.To)
}
