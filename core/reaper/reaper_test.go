package reaper_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/reaper"
)

type countingSweeper struct {
	calls atomic.Int64
	err   error
}

func (s *countingSweeper) ClearExpired(context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestReaperSweepsOnInterval(t *testing.T) {
	t.Parallel()

	sweeper := &countingSweeper{}
	r := reaper.New(10*time.Millisecond, []reaper.Target{
		{Name: "sessions", Sweeper: sweeper},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, sweeper.calls.Load(), int64(3), "several ticks should have fired")
}

func TestReaperSurvivesFailingTarget(t *testing.T) {
	t.Parallel()

	failing := &countingSweeper{err: errors.New("backend down")}
	healthy := &countingSweeper{}
	r := reaper.New(10*time.Millisecond, []reaper.Target{
		{Name: "sessions", Sweeper: failing},
		{Name: "usercache", Sweeper: healthy},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_ = r.Run(ctx)

	assert.GreaterOrEqual(t, failing.calls.Load(), int64(3),
		"a failing target must keep being retried on later ticks")
	assert.GreaterOrEqual(t, healthy.calls.Load(), int64(3),
		"one failing target must not starve the others")
}

func TestReaperStopsOnCancel(t *testing.T) {
	t.Parallel()

	sweeper := &countingSweeper{}
	r := reaper.New(time.Hour, []reaper.Target{{Name: "sessions", Sweeper: sweeper}})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop after cancellation")
	}
	assert.Zero(t, sweeper.calls.Load(), "no tick elapsed, no sweep should have run")
}
