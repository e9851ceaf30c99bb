package valuation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/kgassert/pkg/graph"
	me "github.com/mandelsoft/kgassert/pkg/valuation"
)

var _ = Describe("valuation", func() {
	It("is empty", func() {
		v := me.Empty()
		Expect(v.Len()).To(Equal(0))
		Expect(v.Lookup("$x")).To(Equal(graph.Null))
		Expect(v.Has("$x")).To(BeFalse())
		Expect(v.String()).To(Equal("{}"))
	})

	It("binds without modifying the receiver", func() {
		base := me.New("$x", 1)
		a := base.Bind("$y", graph.Text("a"))
		b := base.Bind("$y", graph.Text("b"))

		Expect(base.Has("$y")).To(BeFalse())
		Expect(a.Lookup("$y")).To(Equal(graph.Text("a")))
		Expect(b.Lookup("$y")).To(Equal(graph.Text("b")))
		Expect(a.Lookup("$x")).To(Equal(graph.Int(1)))
		Expect(b.Lookup("$x")).To(Equal(graph.Int(1)))
	})

	It("shadows outer bindings", func() {
		outer := me.New("$x", 1, "$y", 2)
		inner := outer.Bind("$x", graph.Int(3))

		Expect(inner.Lookup("$x")).To(Equal(graph.Int(3)))
		Expect(inner.Lookup("$y")).To(Equal(graph.Int(2)))
		Expect(outer.Lookup("$x")).To(Equal(graph.Int(1)))
		Expect(inner.Len()).To(Equal(2))
		Expect(inner.Names()).To(Equal([]string{"$x", "$y"}))
		Expect(inner.Map()).To(Equal(map[string]graph.Value{"$x": graph.Int(3), "$y": graph.Int(2)}))
	})

	It("renders", func() {
		Expect(me.New("$b", "x", "$a", 1).String()).To(Equal(`{$a=1, $b="x"}`))
	})
})
