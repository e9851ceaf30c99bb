package dot

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/mandelsoft/kgassert/pkg/graph"
)

// Render writes a graph description. Nodes and edges are written in a
// deterministic order, so equal graphs are rendered identically.
func Render(g *graph.Graph, w io.Writer) error {
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, "digraph G {")
	for _, n := range g.SortedNodes() {
		fmt.Fprintf(b, "%d [label=%s];\n", n.ID, label(n.Data))
	}
	for _, e := range g.SortedEdges() {
		fmt.Fprintf(b, "%d -> %d [label=%s];\n", e.From, e.To, label(e.Label))
	}
	fmt.Fprintln(b, "}")
	return b.Flush()
}

// label renders a value so that Coerce restores it. Integral floating
// point numbers keep a decimal point.
func label(v graph.Value) string {
	switch v.Kind() {
	case graph.KindNull:
		return `""`
	case graph.KindFloat:
		f, _ := v.Number()
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return strconv.Quote(strconv.FormatFloat(f, 'f', 1, 64))
		}
	}
	return strconv.Quote(v.String())
}
