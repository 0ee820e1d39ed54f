package components

import (
	"context"

	"seat-hold-ticketing/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewSweeper,
		worker.NewOutboxRelay,
		NewRunner,
	),
	fx.Invoke(startRunner),
)

func NewRunner(sweeper *worker.Sweeper, relay *worker.OutboxRelay) *worker.Runner {
	return worker.NewRunner(sweeper, relay)
}

func startRunner(lc fx.Lifecycle, r *worker.Runner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			r.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return r.Stop(ctx)
		},
	})
}
