package cron

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsJobOnInterval(t *testing.T) {
	s := NewScheduler(slog.Default())

	var runs atomic.Int32
	s.AddJob("count", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return runs.Load() >= 3 },
		2*time.Second, 5*time.Millisecond)
}

func TestScheduler_StopCancelsJobContext(t *testing.T) {
	s := NewScheduler(slog.Default())

	var sawCancel atomic.Bool
	s.AddJob("wait", time.Hour, func(ctx context.Context) error {
		<-ctx.Done()
		sawCancel.Store(true)
		return ctx.Err()
	})

	s.Start()
	s.Stop()

	assert.True(t, sawCancel.Load())
}

func TestRunOnce_RunsEveryJobDespiteFailures(t *testing.T) {
	s := NewScheduler(slog.Default())

	var failing, healthy atomic.Int32
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		failing.Add(1)
		return errors.New("boom")
	})
	s.AddJob("healthy", time.Hour, func(ctx context.Context) error {
		healthy.Add(1)
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), failing.Load())
	assert.Equal(t, int32(1), healthy.Load())
}
