package graph

// Matches is the graph pattern predicate. Every position is either a
// concrete entity (a Node for from and to, an Edge for the label) or a
// pattern value. Patterns select every node (or edge) whose data (or label)
// is Equal to the pattern. The result is true if there is a combination of
// candidates where the edge leaves the from node and enters the to node.
// A null argument in any position never matches.
func (g *Graph) Matches(from, label, to any) bool {
	vfrom, vlabel, vto := ValueOf(from), ValueOf(label), ValueOf(to)
	if vfrom.IsNull() || vlabel.IsNull() || vto.IsNull() {
		return false
	}

	setFrom := g.nodeCandidates(vfrom)
	if len(setFrom) == 0 {
		return false
	}
	setTo := g.nodeCandidates(vto)
	if len(setTo) == 0 {
		return false
	}
	setEdge := g.edgeCandidates(vlabel)

	for _, e := range setEdge {
		if _, ok := setFrom[e.From]; !ok {
			continue
		}
		if _, ok := setTo[e.To]; ok {
			return true
		}
	}
	return false
}

// nodeCandidates maps candidate node ids to the candidate nodes.
// Keying by id is valid because ids are unique in a graph and the join
// condition only compares ids.
func (g *Graph) nodeCandidates(v Value) map[int64]Node {
	if n, ok := v.AsNode(); ok {
		return map[int64]Node{n.ID: n}
	}
	r := map[int64]Node{}
	for id, n := range g.nodes {
		if Equal(n.Data, v) {
			r[id] = n
		}
	}
	return r
}

func (g *Graph) edgeCandidates(v Value) []Edge {
	if e, ok := v.AsEdge(); ok {
		return []Edge{e}
	}
	var r []Edge
	for _, set := range g.edges {
		for e := range set {
			if Equal(e.Label, v) {
				r = append(r, e)
			}
		}
	}
	return r
}
