package ctxutil

import (
	"context"
)

var cancelkey = SimpleKey("cancel")

// CancelContext provides a cancelable context. It can be canceled
// with Cancel by everybody having access to the context.
func CancelContext(ctx context.Context) context.Context {
	return cancelContext(context.WithCancel(ctx))
}

func cancelContext(ctx context.Context, cancel context.CancelFunc) context.Context {
	return context.WithValue(ctx, cancelkey, cancel)
}

// Cancel cancels a context created by this package.
// It returns false if the context does not provide a cancel function.
func Cancel(ctx context.Context) bool {
	c, ok := ctx.Value(cancelkey).(context.CancelFunc)
	if ok {
		c()
	}
	return ok
}
