// Package generator creates random knowledge graphs.
// Generation is deterministic for a given seed.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/goombaio/namegenerator"
	krand "k8s.io/apimachinery/pkg/util/rand"

	"github.com/mandelsoft/kgassert/pkg/graph"
)

type Config struct {
	// Nodes is the number of nodes.
	Nodes int `json:"nodes"`
	// Edges is the requested number of edges. It is limited by the number
	// of possible distinct edges.
	Edges int `json:"edges"`
	// Labels is the number of distinct node data values, at least one.
	// Node data are integers from 0 to Labels-1.
	Labels int `json:"labels,omitempty"`
	// EdgeLabels is the number of distinct edge labels (see Label), at least one.
	EdgeLabels int `json:"edgeLabels,omitempty"`
	// Names uses generated names instead of integers as node data.
	Names bool `json:"names,omitempty"`
	// Loops permits edges from a node to itself.
	Loops bool `json:"loops,omitempty"`
	// Seed is the random seed. If zero, the current time is used.
	Seed int64 `json:"seed,omitempty"`
}

// Label provides the n-th edge label.
func Label(n int) graph.Value {
	return graph.Text(fmt.Sprintf("e%d", n))
}

type Generator struct {
	config Config
	rand   *rand.Rand
	data   []graph.Value
}

func New(cfg Config) *Generator {
	cfg.Nodes = max(cfg.Nodes, 0)
	cfg.Edges = max(cfg.Edges, 0)
	cfg.Labels = max(cfg.Labels, 1)
	cfg.EdgeLabels = max(cfg.EdgeLabels, 1)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g := &Generator{
		config: cfg,
		rand:   rand.New(rand.NewSource(cfg.Seed)),
	}
	if cfg.Names {
		names := namegenerator.NewNameGenerator(cfg.Seed)
		for len(g.data) < cfg.Labels {
			g.data = append(g.data, graph.Text(names.Generate()))
		}
	} else {
		for i := 0; i < cfg.Labels; i++ {
			g.data = append(g.data, graph.Int(int64(i)))
		}
	}
	return g
}

func (g *Generator) Config() Config {
	return g.config
}

// NodeData provides the possible node data values.
func (g *Generator) NodeData() []graph.Value {
	return append([]graph.Value(nil), g.data...)
}

// Generate creates the next random graph. Without an id a random one is chosen.
func (g *Generator) Generate(id ...graph.Id) *graph.Graph {
	gid := graph.Id("random-" + krand.String(8))
	if len(id) > 0 && id[0] != "" {
		gid = id[0]
	}
	r := graph.New(gid)
	n := int64(g.config.Nodes)
	for i := int64(0); i < n; i++ {
		r.AddNode(i, g.data[g.rand.Intn(len(g.data))])
	}

	possible := int64(g.config.EdgeLabels) * n * n
	if !g.config.Loops {
		possible -= int64(g.config.EdgeLabels) * n
	}
	target := min(int64(g.config.Edges), possible)
	for int64(r.EdgeCount()) < target {
		from := g.rand.Int63n(n)
		to := g.rand.Int63n(n)
		if from == to && !g.config.Loops {
			continue
		}
		r.AddEdge(from, Label(g.rand.Intn(g.config.EdgeLabels)), to)
	}
	log.Debug("generated graph {{graph}} with {{nodes}} nodes and {{edges}} edges", "graph", gid, "nodes", r.Size(), "edges", r.EdgeCount())
	return r
}
