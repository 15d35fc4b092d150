// Package simulate runs the timer-driven stand-ins for the backends this
// platform does not have. Every simulated operation is bound to a context
// so an abandoned caller cancels the timer instead of leaking it.
package simulate

import (
	"context"
	"time"
)

// Run waits out the simulated processing delay. It returns nil when the
// delay elapses or the context error when the caller goes away first.
func Run(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunStaged splits the delay into equal stages and reports progress after
// each one, for operations that surface a progress percentage. onProgress
// is called with values in (0, 100]; the final call is always 100 unless
// the context is cancelled first.
func RunStaged(ctx context.Context, total time.Duration, stages int, onProgress func(pct int)) error {
	if stages < 1 {
		stages = 1
	}
	step := total / time.Duration(stages)
	for i := 1; i <= stages; i++ {
		if err := Run(ctx, step); err != nil {
			return err
		}
		if onProgress != nil {
			onProgress(i * 100 / stages)
		}
	}
	return nil
}
