package generation

import (
	"context"
	"time"
)

// DefaultDelay is the simulated latency before a recipe is produced
const DefaultDelay = 2000 * time.Millisecond

// Delay pauses generation before the template runs
type Delay interface {
	Wait(ctx context.Context) error
}

// FixedDelay waits for a constant duration.
// Zero or negative durations return immediately.
type FixedDelay time.Duration

// Wait blocks for the configured duration or until ctx is done
func (d FixedDelay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(time.Duration(d))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
