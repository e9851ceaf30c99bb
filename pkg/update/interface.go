// Package update provides copy-on-write modifications of knowledge graphs.
//
// Applying an update never modifies the graph it is applied to. It
// duplicates the graph once and performs the modification on the copy.
// Batches perform all their updates on a single copy.
package update

import (
	"github.com/mandelsoft/kgassert/pkg/graph"
)

type Update interface {
	// Apply provides a modified duplicate of the given graph.
	Apply(g *graph.Graph) *graph.Graph
	// ApplyTo modifies the given graph in place.
	ApplyTo(g *graph.Graph)

	String() string
}

func apply(u Update, g *graph.Graph) *graph.Graph {
	n := g.Duplicate()
	u.ApplyTo(n)
	log.Debug("applied {{update}} to {{graph}} giving {{result}}", "update", u, "graph", g.Id(), "result", n.Id())
	return n
}

// ApplyAll applies a sequence of updates one after the other and returns
// the snapshot created by every step.
func ApplyAll(g *graph.Graph, updates ...Update) []*graph.Graph {
	r := make([]*graph.Graph, 0, len(updates))
	for _, u := range updates {
		g = u.Apply(g)
		r = append(r, g)
	}
	return r
}
