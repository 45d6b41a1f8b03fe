// Package cron runs the recurring maintenance jobs of the API process, such
// as the daily leave balance reconciliation and the payroll period rollover.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// runTimeout bounds a single run so a wedged job, a hanging provider call
// for instance, cannot stall its schedule forever.
const runTimeout = 10 * time.Minute

type job struct {
	name  string
	every time.Duration
	run   func(ctx context.Context) error
}

// Scheduler runs each registered job on its own interval until stopped.
type Scheduler struct {
	logger *slog.Logger
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{logger: logger, ctx: ctx, cancel: cancel}
}

// AddJob registers a recurring job. All jobs must be registered before Start.
func (s *Scheduler) AddJob(name string, every time.Duration, run func(ctx context.Context) error) {
	s.jobs = append(s.jobs, job{name: name, every: every, run: run})
	s.logger.Info("job registered", "job", name, "every", every)
}

// Start launches one goroutine per job. Each job runs once right away and
// then on its interval; jobs that only apply on certain days, like the
// period rollover, no-op themselves on the other days.
func (s *Scheduler) Start() {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}
	s.logger.Info("job scheduler started", "jobs", len(s.jobs))
}

// Stop cancels the running jobs and waits for their goroutines to exit.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	s.logger.Info("job scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	s.execute(j)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(j)
		}
	}
}

func (s *Scheduler) execute(j job) {
	ctx, cancel := context.WithTimeout(s.ctx, runTimeout)
	defer cancel()

	start := time.Now()
	if err := j.run(ctx); err != nil {
		s.logger.Error("job failed", "job", j.name, "err", err, "duration", time.Since(start))
		return
	}
	s.logger.Debug("job completed", "job", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time with the given
// context, regardless of intervals.
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, j := range s.jobs {
		if err := j.run(ctx); err != nil {
			s.logger.Error("job failed", "job", j.name, "err", err)
		}
	}
}
