package service

import (
	"context"
	"time"
)

// waitFor blocks for d or until ctx is cancelled. Submissions carry a fixed
// artificial delay before the confirmation; cancelling the context aborts the
// pending mutation (cancel-on-close).
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
