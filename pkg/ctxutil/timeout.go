package ctxutil

import (
	"context"
	"time"
)

// TimeoutContext provides a context canceled after the given duration.
// A duration <= 0 provides a context canceled only by Cancel.
func TimeoutContext(ctx context.Context, duration time.Duration) context.Context {
	if duration <= 0 {
		return CancelContext(ctx)
	}
	return cancelContext(context.WithTimeout(ctx, duration))
}
