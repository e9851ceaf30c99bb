package graph

import (
	"fmt"
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/kgassert/pkg/utils"
)

// Graph is a labeled multigraph of integer-identified nodes.
// It is owned exclusively by whoever holds the reference. Builder calls
// modify the graph in place, derived snapshots are created with Duplicate.
// A graph may be read concurrently as long as nobody modifies it.
type Graph struct {
	id         Id
	origin     Id
	generation int
	nodes      map[int64]Node
	edges      map[int64]sets.Set[Edge]
}

func New(id Id) *Graph {
	return &Graph{
		id:     id,
		origin: id,
		nodes:  map[int64]Node{},
		edges:  map[int64]sets.Set[Edge]{},
	}
}

func (g *Graph) Id() Id {
	return g.id
}

// Origin is the id of the graph this one has been derived from by
// (a sequence of) Duplicate calls. For a fresh graph it is its own id.
func (g *Graph) Origin() Id {
	return g.origin
}

// Generation is the number of duplication steps separating the graph from its origin.
func (g *Graph) Generation() int {
	return g.generation
}

// AddNode inserts or replaces a node.
func (g *Graph) AddNode(id int64, data any) *Graph {
	g.SetNodeData(id, data)
	return g
}

// Add inserts or replaces nodes and adds edges given as Node or Edge values.
func (g *Graph) Add(elems ...any) *Graph {
	for _, e := range elems {
		switch o := e.(type) {
		case Node:
			g.nodes[o.ID] = o
		case Edge:
			g.addEdge(o)
		default:
			panic(fmt.Sprintf("unsupported graph element %T", e))
		}
	}
	return g
}

// SetNodeData inserts or replaces the node instance with the given id.
// Incident edges are not touched.
func (g *Graph) SetNodeData(id int64, data any) Node {
	n := NewNode(id, data)
	g.nodes[id] = n
	return n
}

// AddEdge adds an edge. Adding an already existing triple is a no-op.
func (g *Graph) AddEdge(from int64, label any, to int64) *Graph {
	g.addEdge(NewEdge(from, label, to))
	return g
}

// Connect is a synonym for AddEdge.
func (g *Graph) Connect(from int64, label any, to int64) *Graph {
	return g.AddEdge(from, label, to)
}

func (g *Graph) addEdge(e Edge) {
	set := g.edges[e.From]
	if set == nil {
		set = sets.New[Edge]()
		g.edges[e.From] = set
	}
	set.Insert(e)
}

// SetEdgeLabel replaces the label of the given edge triple. A missing
// edge is created with the new label.
func (g *Graph) SetEdgeLabel(from int64, label any, to int64, newlabel any) Edge {
	g.DeleteEdge(from, label, to)
	e := NewEdge(from, newlabel, to)
	g.addEdge(e)
	return e
}

// DeleteEdge removes the edge with the given triple and reports whether
// there was such an edge.
func (g *Graph) DeleteEdge(from int64, label any, to int64) bool {
	set := g.edges[from]
	if set == nil {
		return false
	}
	e := NewEdge(from, label, to)
	if !set.Has(e) {
		return false
	}
	set.Delete(e)
	if set.Len() == 0 {
		delete(g.edges, from)
	}
	return true
}

// DeleteNode removes the node and all edges it is part of.
// It reports whether the node existed.
func (g *Graph) DeleteNode(id int64) bool {
	if _, ok := g.nodes[id]; !ok {
		return false
	}
	delete(g.nodes, id)
	cnt := 0
	if set := g.edges[id]; set != nil {
		cnt = set.Len()
		delete(g.edges, id)
	}
	for from, set := range g.edges {
		for e := range set {
			if e.To == id {
				set.Delete(e)
				cnt++
			}
		}
		if set.Len() == 0 {
			delete(g.edges, from)
		}
	}
	if cnt > 0 {
		log.Debug("deleted node {{node}} of graph {{graph}} with {{count}} incident edges", "node", id, "graph", g.id, "count", cnt)
	}
	return true
}

// Duplicate provides a new graph with the same content but independent
// containers. Node and edge values are shared by value.
func (g *Graph) Duplicate() *Graph {
	n := &Graph{
		id:         DerivedId(g.origin, g.generation+1),
		origin:     g.origin,
		generation: g.generation + 1,
		nodes:      make(map[int64]Node, len(g.nodes)),
		edges:      make(map[int64]sets.Set[Edge], len(g.edges)),
	}
	for id, node := range g.nodes {
		n.nodes[id] = node
	}
	for from, set := range g.edges {
		n.edges[from] = set.Clone()
	}
	return n
}

////////////////////////////////////////////////////////////////////////////////

func (g *Graph) Node(id int64) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) HasNode(id int64) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) HasEdge(from int64, label any, to int64) bool {
	set := g.edges[from]
	return set != nil && set.Has(NewEdge(from, label, to))
}

// Nodes returns all nodes in unspecified order.
func (g *Graph) Nodes() []Node {
	r := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		r = append(r, n)
	}
	return r
}

// Edges returns all edges in unspecified order.
func (g *Graph) Edges() []Edge {
	var r []Edge
	for _, set := range g.edges {
		r = append(r, set.UnsortedList()...)
	}
	return r
}

// EdgesFrom returns the edges leaving the given node.
func (g *Graph) EdgesFrom(id int64) []Edge {
	set := g.edges[id]
	if set == nil {
		return nil
	}
	return set.UnsortedList()
}

// SortedNodes returns the nodes ordered by id.
func (g *Graph) SortedNodes() []Node {
	r := g.Nodes()
	slices.SortFunc(r, CompareNode)
	return r
}

// SortedEdges returns the edges in a deterministic order.
func (g *Graph) SortedEdges() []Edge {
	r := g.Edges()
	slices.SortFunc(r, CompareEdge)
	return r
}

// Size is the number of nodes.
func (g *Graph) Size() int {
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	cnt := 0
	for _, set := range g.edges {
		cnt += set.Len()
	}
	return cnt
}

func (g *Graph) IsEmpty() bool {
	return len(g.nodes) == 0 && len(g.edges) == 0
}

// Equal compares the content of two graphs, ignoring their ids.
func (g *Graph) Equal(o *Graph) bool {
	if g == o {
		return true
	}
	if o == nil || len(g.nodes) != len(o.nodes) || g.EdgeCount() != o.EdgeCount() {
		return false
	}
	for id, n := range g.nodes {
		if on, ok := o.nodes[id]; !ok || on != n {
			return false
		}
	}
	for from, set := range g.edges {
		oset := o.edges[from]
		if oset == nil || !oset.Equal(set) {
			return false
		}
	}
	return true
}

type digest struct {
	Nodes []string `json:"nodes"`
	Edges []string `json:"edges"`
}

// Digest is a content hash of the graph, independent of its id.
func (g *Graph) Digest() string {
	d := digest{
		Nodes: []string{},
		Edges: []string{},
	}
	for _, n := range g.SortedNodes() {
		d.Nodes = append(d.Nodes, fmt.Sprintf("%d:%s:%s", n.ID, n.Data.Kind(), n.Data.Quoted()))
	}
	for _, e := range g.SortedEdges() {
		d.Edges = append(d.Edges, fmt.Sprintf("%d:%d:%s:%s", e.From, e.To, e.Label.Kind(), e.Label.Quoted()))
	}
	return utils.HashData(d)
}

func (g *Graph) String() string {
	return fmt.Sprintf("%s(%d nodes, %d edges)", g.id, g.Size(), g.EdgeCount())
}
