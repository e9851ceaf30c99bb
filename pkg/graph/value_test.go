package graph_test

import (
	"encoding/json"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/kgassert/pkg/graph"
)

var _ = Describe("values", func() {
	Context("conversion", func() {
		It("converts go values", func() {
			Expect(me.ValueOf(nil)).To(Equal(me.Null))
			Expect(me.ValueOf(true)).To(Equal(me.True))
			Expect(me.ValueOf(uint8(5))).To(Equal(me.Int(5)))
			Expect(me.ValueOf(float32(1.5))).To(Equal(me.Float(1.5)))
			Expect(me.ValueOf("a")).To(Equal(me.Text("a")))
			Expect(me.ValueOf(me.Int(3))).To(Equal(me.Int(3)))
		})

		It("keeps large unsigned values positive", func() {
			Expect(me.ValueOf(uint64(math.MaxInt64))).To(Equal(me.Int(math.MaxInt64)))
			Expect(me.ValueOf(uint64(math.MaxUint64))).To(Equal(me.Float(math.MaxUint64)))
			Expect(me.ValueOf(uint(math.MaxInt64) + 1).Kind()).To(Equal(me.KindFloat))
		})

		It("converts entities", func() {
			n := me.NewNode(1, "A")
			Expect(me.ValueOf(n).Kind()).To(Equal(me.KindNode))
			Expect(me.ValueOf(&n)).To(Equal(me.NodeRef(n)))
			e := me.NewEdge(1, "x", 2)
			r, ok := me.ValueOf(e).AsEdge()
			Expect(ok).To(BeTrue())
			Expect(r).To(Equal(e))
		})

		It("keeps other values opaque", func() {
			type point struct{ x, y int }
			v := me.ValueOf(point{1, 2})
			Expect(v.Kind()).To(Equal(me.KindOpaque))
			Expect(v.Interface()).To(Equal(point{1, 2}))
		})

		It("accepts only scalars from documents", func() {
			v, err := me.ScalarOf(json.Number("12"))
			Expect(err).To(BeNil())
			Expect(v).To(Equal(me.Int(12)))
			v, err = me.ScalarOf(nil)
			Expect(err).To(BeNil())
			Expect(v).To(Equal(me.Null))

			_, err = me.ScalarOf([]interface{}{"a", "b"})
			Expect(err).To(MatchError("scalar value expected, but found []interface {}"))
			_, err = me.ScalarOf(map[string]interface{}{"a": 1})
			Expect(err).To(HaveOccurred())
			_, err = me.ScalarOf(me.NewNode(1, "A"))
			Expect(err).To(HaveOccurred())
		})
	})

	Context("equality", func() {
		It("compares numbers across representations", func() {
			Expect(me.Equal(me.Int(5), me.Float(5.0))).To(BeTrue())
			Expect(me.Equal(me.Float(5.0), me.Int(5))).To(BeTrue())
			Expect(me.Equal(me.Int(5), me.Float(5.5))).To(BeFalse())
			Expect(me.Identical(me.Int(5), me.Float(5.0))).To(BeFalse())
		})

		It("compares large integers exactly", func() {
			Expect(me.Equal(me.Int(9007199254740993), me.Int(9007199254740992))).To(BeFalse())
			Expect(me.Equal(me.Int(9007199254740993), me.Int(9007199254740993))).To(BeTrue())
			Expect(me.Equal(me.Int(9007199254740993), me.Float(9007199254740992))).To(BeFalse())
			Expect(me.Equal(me.Int(math.MaxInt64), me.Float(0x1p63))).To(BeFalse())
			Expect(me.Equal(me.Float(math.NaN()), me.Float(math.NaN()))).To(BeFalse())
		})

		It("handles null", func() {
			Expect(me.Equal(me.Null, me.Null)).To(BeTrue())
			Expect(me.Equal(me.Null, me.Int(0))).To(BeFalse())
			Expect(me.Equal(me.Text(""), me.Null)).To(BeFalse())
		})

		It("does not mix text and numbers", func() {
			Expect(me.Equal(me.Text("5"), me.Int(5))).To(BeFalse())
			Expect(me.Equal(me.Text("5"), me.Text("5"))).To(BeTrue())
		})

		It("compares entities by content", func() {
			Expect(me.Equal(me.NodeRef(me.NewNode(1, "A")), me.NodeRef(me.NewNode(1, "A")))).To(BeTrue())
			Expect(me.Equal(me.NodeRef(me.NewNode(1, "A")), me.NodeRef(me.NewNode(1, "B")))).To(BeFalse())
		})
	})

	Context("ordering", func() {
		order := func(a, b me.Value) int {
			c, ok := me.Compare(a, b)
			ExpectWithOffset(1, ok).To(BeTrue())
			return c
		}

		It("orders numbers", func() {
			Expect(order(me.Int(5), me.Float(3.0))).To(Equal(1))
			Expect(order(me.Int(3), me.Float(3.0))).To(Equal(0))
			Expect(order(me.Float(2.5), me.Int(3))).To(Equal(-1))
			Expect(order(me.Float(-2.5), me.Int(-2))).To(Equal(-1))
			Expect(order(me.Int(-3), me.Float(-2.5))).To(Equal(-1))
		})

		It("orders large integers exactly", func() {
			Expect(order(me.Int(9007199254740993), me.Int(9007199254740992))).To(Equal(1))
			Expect(order(me.Int(9007199254740993), me.Float(9007199254740992))).To(Equal(1))
			Expect(order(me.Float(9007199254740992), me.Int(9007199254740993))).To(Equal(-1))
			Expect(order(me.Int(math.MaxInt64), me.Float(0x1p63))).To(Equal(-1))
			Expect(order(me.Int(math.MinInt64), me.Float(-0x1p63))).To(Equal(0))
			Expect(order(me.Int(math.MinInt64), me.Float(math.Inf(-1)))).To(Equal(1))
		})

		It("rejects non-numbers", func() {
			_, ok := me.Compare(me.Text("5"), me.Int(3))
			Expect(ok).To(BeFalse())
			_, ok = me.Compare(me.Int(3), me.Null)
			Expect(ok).To(BeFalse())
			_, ok = me.Compare(me.Int(3), me.Float(math.NaN()))
			Expect(ok).To(BeFalse())
		})
	})

	It("renders", func() {
		Expect(me.Text("a b").Quoted()).To(Equal(`"a b"`))
		Expect(me.Float(5).Quoted()).To(Equal("5.0"))
		Expect(me.Float(2.5).Quoted()).To(Equal("2.5"))
		Expect(me.Int(5).Quoted()).To(Equal("5"))
		Expect(me.Null.String()).To(Equal("null"))
	})
})
