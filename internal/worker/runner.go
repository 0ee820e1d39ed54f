package worker

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Job is a periodic task. A failing tick is logged and retried on the next
// interval; it never stops the loop.
type Job interface {
	Name() string
	Interval() time.Duration
	Tick(ctx context.Context) error
}

// Runner drives a set of jobs on their own tickers until stopped.
type Runner struct {
	jobs   []Job
	cancel context.CancelFunc
	group  *errgroup.Group
}

func NewRunner(jobs ...Job) *Runner {
	return &Runner{jobs: jobs}
}

func (r *Runner) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	g, ctx := errgroup.WithContext(ctx)
	r.cancel, r.group = cancel, g

	for _, job := range r.jobs {
		if job.Interval() <= 0 {
			slog.Info("worker disabled", "component", job.Name())
			continue
		}
		g.Go(func() error {
			runLoop(ctx, job)
			return nil
		})
	}
}

// Stop cancels all loops and waits for in-flight ticks, bounded by ctx.
func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	done := make(chan error, 1)
	go func() { done <- r.group.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func runLoop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval())
	defer ticker.Stop()

	slog.Info("worker started", "component", job.Name(), "interval", job.Interval().String())
	for {
		select {
		case <-ctx.Done():
			slog.Info("worker stopped", "component", job.Name())
			return
		case <-ticker.C:
			if err := job.Tick(ctx); err != nil && ctx.Err() == nil {
				slog.Error("worker tick failed", "component", job.Name(), "error", err)
			}
		}
	}
}
