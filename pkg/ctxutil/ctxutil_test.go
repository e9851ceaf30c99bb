package ctxutil_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/kgassert/pkg/ctxutil"
)

var _ = Describe("contexts", func() {
	It("cancels", func() {
		ctx := me.CancelContext(context.Background())
		Expect(ctx.Err()).To(BeNil())
		Expect(me.Cancel(ctx)).To(BeTrue())
		Expect(ctx.Err()).To(Equal(context.Canceled))
	})

	It("cannot cancel foreign contexts", func() {
		Expect(me.Cancel(context.Background())).To(BeFalse())
	})

	It("times out", func() {
		ctx := me.TimeoutContext(context.Background(), 10*time.Millisecond)
		Eventually(ctx.Done()).Should(BeClosed())
		Expect(ctx.Err()).To(Equal(context.DeadlineExceeded))
		Expect(me.Cancel(ctx)).To(BeTrue())
	})

	It("ignores missing timeouts", func() {
		ctx := me.TimeoutContext(context.Background(), 0)
		_, ok := ctx.Deadline()
		Expect(ok).To(BeFalse())
		Expect(me.Cancel(ctx)).To(BeTrue())
		Expect(ctx.Err()).To(Equal(context.Canceled))
	})
})
