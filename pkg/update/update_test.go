package update_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/kgassert/pkg/graph"
	. "github.com/mandelsoft/kgassert/pkg/testutils"
	"github.com/mandelsoft/vfs/pkg/vfs"

	me "github.com/mandelsoft/kgassert/pkg/update"
)

var _ = Describe("updates", func() {
	var g *graph.Graph

	BeforeEach(func() {
		g = graph.New("g").
			AddNode(0, "A").
			AddNode(1, "B").
			AddNode(2, "C").
			AddEdge(0, "", 1).
			AddEdge(1, "", 2)
	})

	Context("primitives", func() {
		It("keeps the original untouched", func() {
			digest := g.Digest()
			updates := []me.Update{
				me.NewAddNode(3, "D"),
				me.NewDeleteNode(1),
				me.NewSetNodeData(0, 5),
				me.NewAddEdge(2, "x", 0),
				me.NewDeleteEdge(0, "", 1),
				me.NewSetEdgeLabel(1, "", 2, "y"),
			}
			for _, u := range updates {
				n := u.Apply(g)
				Expect(n).NotTo(BeIdenticalTo(g))
				Expect(n.Generation()).To(Equal(1))
				Expect(g.Digest()).To(Equal(digest))
			}
		})

		It("adds nodes", func() {
			n := me.NewAddNode(3, "D").Apply(g)
			Expect(n.Size()).To(Equal(4))
			Expect(g.HasNode(3)).To(BeFalse())
		})

		It("deletes nodes with their edges", func() {
			n := me.NewDeleteNode(1).Apply(g)
			Expect(n.Size()).To(Equal(2))
			Expect(n.EdgeCount()).To(Equal(0))
			Expect(g.EdgeCount()).To(Equal(2))
		})

		It("ignores missing nodes", func() {
			n := me.NewDeleteNode(7).Apply(g)
			Expect(n.Equal(g)).To(BeTrue())
		})

		It("sets node data", func() {
			n := me.NewSetNodeData(1, 2.5).Apply(g)
			d, _ := n.Node(1)
			Expect(d.Data).To(Equal(graph.Float(2.5)))
			Expect(n.EdgeCount()).To(Equal(2))
		})

		It("modifies edges", func() {
			n := me.NewSetEdgeLabel(1, "", 2, "y").Apply(g)
			Expect(n.SortedEdges()).To(Equal([]graph.Edge{graph.NewEdge(0, "", 1), graph.NewEdge(1, "y", 2)}))
			n = me.NewDeleteEdge(0, "", 1).Apply(n)
			n = me.NewAddEdge(2, "z", 0).Apply(n)
			Expect(n.SortedEdges()).To(Equal([]graph.Edge{graph.NewEdge(1, "y", 2), graph.NewEdge(2, "z", 0)}))
		})
	})

	Context("batch", func() {
		It("flattens nested batches", func() {
			b := me.NewBatch(
				me.NewAddNode(3, "D"),
				me.NewBatch(
					me.NewAddEdge(2, "", 3),
					me.NewBatch(me.NewDeleteNode(0)),
				),
				me.NewSetNodeData(1, "b"),
			)
			Expect(b.Updates()).To(Equal([]me.Update{
				me.NewAddNode(3, "D"),
				me.NewAddEdge(2, "", 3),
				me.NewDeleteNode(0),
				me.NewSetNodeData(1, "b"),
			}))
		})

		It("ignores nil batches", func() {
			var none *me.Batch
			b := me.NewBatch(none, nil, me.NewDeleteNode(0))
			Expect(b.Updates()).To(Equal([]me.Update{me.NewDeleteNode(0)}))
		})

		It("duplicates once", func() {
			b := me.NewBatch(
				me.NewAddNode(3, "D"),
				me.NewBatch(me.NewAddEdge(2, "", 3), me.NewDeleteNode(0)),
			)
			n := b.Apply(g)
			Expect(n.Generation()).To(Equal(1))
			Expect(n.Id()).To(Equal(graph.Id("g@1")))
			Expect(n.Size()).To(Equal(3))
			Expect(n.SortedEdges()).To(Equal([]graph.Edge{graph.NewEdge(1, "", 2), graph.NewEdge(2, "", 3)}))
			Expect(g.Size()).To(Equal(3))
		})

		It("applies in order", func() {
			n := me.NewBatch(me.NewSetNodeData(0, 1), me.NewSetNodeData(0, 2)).Apply(g)
			d, _ := n.Node(0)
			Expect(d.Data).To(Equal(graph.Int(2)))
		})

		It("renders", func() {
			b := me.NewBatch(me.NewAddNode(3, "D"), me.NewDeleteNode(0))
			Expect(b.String()).To(Equal(`[add node 3 ("D"); delete node 0]`))
		})
	})

	It("records snapshots", func() {
		list := me.ApplyAll(g, me.NewAddNode(3, "D"), me.NewDeleteNode(3))
		Expect(list).To(HaveLen(2))
		Expect(list[0].Size()).To(Equal(4))
		Expect(list[1].Size()).To(Equal(3))
		Expect(list[1].Generation()).To(Equal(2))
		Expect(list[1].Equal(g)).To(BeTrue())
	})

	Context("documents", func() {
		It("parses updates", func() {
			os.Setenv("KGASSERT_TEST_LABEL", "next")
			defer os.Unsetenv("KGASSERT_TEST_LABEL")
			list := Must(me.Parse([]byte(`
steps:
- addNode:
    id: 3
    data: 5
- setNodeData:
    id: 0
    data: 2.5
- batch:
  - addEdge:
      from: 2
      label: ${KGASSERT_TEST_LABEL}
      to: 3
  - deleteNode:
      id: 1
`)))
			Expect(list).To(Equal([]me.Update{
				me.NewAddNode(3, 5),
				me.NewSetNodeData(0, 2.5),
				me.NewBatch(me.NewAddEdge(2, "next", 3), me.NewDeleteNode(1)),
			}))
		})

		It("rejects ambiguous entries", func() {
			_, err := me.Parse([]byte(`
steps:
- addNode:
    id: 3
  deleteNode:
    id: 1
`))
			Expect(err).To(HaveOccurred())
			_, err = me.Parse([]byte("steps:\n- {}\n"))
			MustFailWithMessage(err, "step 1: no update specified")
		})

		It("rejects structured data", func() {
			_, err := me.Parse([]byte("steps:\n- addEdge: {from: 1, to: 2, label: [a, b]}\n"))
			MustFailWithMessage(err, "step 1: invalid label: scalar value expected, but found []interface {}")
			_, err = me.Parse([]byte("steps:\n- addNode: {id: 1, data: {a: 1}}\n"))
			MustFailWithMessage(err, "step 1: invalid data: scalar value expected, but found map[string]interface {}")
			_, err = me.Parse([]byte("steps:\n- batch:\n  - setEdgeLabel: {from: 1, to: 2, label: a, newLabel: [b]}\n"))
			MustFailWithMessage(err, "step 1: batch entry 0: invalid newLabel: scalar value expected, but found []interface {}")
		})

		It("reads files", func() {
			fs := Must(MemoryFileSystem(map[string]string{
				"/updates.yaml": "steps:\n- deleteNode:\n    id: 1\n",
			}))
			defer vfs.Cleanup(fs)
			list := Must(me.ReadFile("/updates.yaml", fs))
			Expect(list).To(Equal([]me.Update{me.NewDeleteNode(1)}))
		})
	})
})
