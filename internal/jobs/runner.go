package jobs

import (
	"context"
	"time"
)

// Every runs fn immediately and then on every tick of interval until ctx is
// cancelled. A non-positive interval runs fn once.
func Every(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	fn(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}
