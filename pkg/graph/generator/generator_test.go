package generator_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/kgassert/pkg/assertion"
	"github.com/mandelsoft/kgassert/pkg/graph"

	me "github.com/mandelsoft/kgassert/pkg/graph/generator"
)

var _ = Describe("generator", func() {
	It("is deterministic", func() {
		cfg := me.Config{Nodes: 10, Edges: 20, Labels: 4, EdgeLabels: 2, Seed: 42}
		a := me.New(cfg).Generate()
		b := me.New(cfg).Generate()
		Expect(a.Id()).NotTo(Equal(b.Id()))
		Expect(strings.HasPrefix(string(a.Id()), "random-")).To(BeTrue())
		Expect(a.Equal(b)).To(BeTrue())
		Expect(a.Size()).To(Equal(10))
		Expect(a.EdgeCount()).To(Equal(20))
	})

	It("respects the configuration", func() {
		g := me.New(me.Config{Nodes: 5, Edges: 100, Labels: 2, Seed: 1}).Generate("g")
		Expect(g.Id()).To(Equal(graph.Id("g")))
		Expect(g.EdgeCount()).To(Equal(20))
		for _, e := range g.Edges() {
			Expect(e.From).NotTo(Equal(e.To))
			Expect(e.Label).To(Equal(me.Label(0)))
		}
		for _, n := range g.Nodes() {
			Expect(n.Data).To(BeElementOf(graph.Int(0), graph.Int(1)))
		}
	})

	It("generates names", func() {
		gen := me.New(me.Config{Nodes: 4, Edges: 3, Labels: 2, Names: true, Loops: true, Seed: 7})
		Expect(gen.NodeData()).To(HaveLen(2))
		for _, n := range gen.Generate().Nodes() {
			Expect(n.Data.Kind()).To(Equal(graph.KindText))
			Expect(n.Data).To(BeElementOf(gen.NodeData()))
		}
	})

	It("handles degenerated configurations", func() {
		Expect(me.New(me.Config{Edges: 10}).Generate().IsEmpty()).To(BeTrue())
		Expect(me.New(me.Config{Nodes: 1, Edges: 10}).Generate().EdgeCount()).To(Equal(0))

		gen := me.New(me.Config{Nodes: -3, Edges: 10, Seed: 1})
		Expect(gen.Config().Nodes).To(Equal(0))
		Expect(gen.Generate().IsEmpty()).To(BeTrue())
		gen = me.New(me.Config{Nodes: 3, Edges: -1, Seed: 1})
		Expect(gen.Config().Edges).To(Equal(0))
		g := gen.Generate()
		Expect(g.Size()).To(Equal(3))
		Expect(g.EdgeCount()).To(Equal(0))
	})

	Context("properties", func() {
		It("undirected patterns are symmetric", func() {
			gen := me.New(me.Config{Nodes: 8, Edges: 12, Labels: 3, EdgeLabels: 2, Loops: true, Seed: 815})
			for i := 0; i < 20; i++ {
				g := gen.Generate()
				for _, a := range gen.NodeData() {
					for _, b := range gen.NodeData() {
						for l := 0; l < 2; l++ {
							ab := assertion.Check(assertion.ConnectedUndir(a, me.Label(l), b), g)
							ba := assertion.Check(assertion.ConnectedUndir(b, me.Label(l), a), g)
							Expect(ab).To(Equal(ba))
							directed := assertion.Check(assertion.Connected(a, me.Label(l), b), g) ||
								assertion.Check(assertion.Connected(b, me.Label(l), a), g)
							Expect(ab).To(Equal(directed))
						}
					}
				}
			}
		})

		It("duplicates are isolated", func() {
			gen := me.New(me.Config{Nodes: 6, Edges: 10, Seed: 3})
			for i := 0; i < 10; i++ {
				g := gen.Generate()
				digest := g.Digest()
				d := g.Duplicate()
				for _, n := range d.Nodes() {
					if n.ID%2 == 0 {
						d.DeleteNode(n.ID)
					}
				}
				d.AddNode(100, "new")
				Expect(g.Digest()).To(Equal(digest))
			}
		})
	})
})
