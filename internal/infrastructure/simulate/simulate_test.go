package simulate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vibra-app/vibra/internal/infrastructure/simulate"
)

func TestRun_CompletesAfterDelay(t *testing.T) {
	start := time.Now()
	err := simulate.Run(context.Background(), 20*time.Millisecond)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := simulate.Run(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_CancelMidDelay(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := simulate.Run(ctx, time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRunStaged_ReportsProgressToCompletion(t *testing.T) {
	var reported []int
	err := simulate.RunStaged(context.Background(), 40*time.Millisecond, 4, func(pct int) {
		reported = append(reported, pct)
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{25, 50, 75, 100}, reported)
}

func TestRunStaged_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var reported []int
	err := simulate.RunStaged(ctx, time.Minute, 4, func(pct int) {
		reported = append(reported, pct)
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, reported)
}
