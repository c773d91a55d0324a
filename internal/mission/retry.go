package mission

import (
	"context"
	"fmt"
	"time"

	"github.com/roverlabs/explored/internal/domain"
)

// Retry is a bounded-attempt retry policy with a fixed cooperative delay
// between failed attempts. The zero value never runs anything; callers
// configure both knobs per step.
type Retry struct {
	Attempts int
	Delay    time.Duration
}

// Do invokes op up to r.Attempts times, sleeping r.Delay between failed
// attempts. On the first success it returns nil without consuming remaining
// attempts. When every attempt fails it returns an error wrapping both
// domain.ErrExhausted and the last attempt error.
//
// Cancellation always wins: a cancelled context is reported as ctx.Err(),
// distinct from exhaustion, whether it fires before the first attempt,
// during a delay, or inside op itself.
func (r Retry) Do(ctx context.Context, op func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Attempts <= 0 {
		return fmt.Errorf("%w: no attempts budgeted", domain.ErrExhausted)
	}

	var last error
	for attempt := 1; attempt <= r.Attempts; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, r.Delay); err != nil {
				return err
			}
		}
		if last = op(ctx); last == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", domain.ErrExhausted, r.Attempts, last)
}

// sleep waits for d or until ctx is cancelled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
