package worker

import (
	"context"
	"time"

	"seat-hold-ticketing/internal/pkg/config"
	"seat-hold-ticketing/internal/usecase/commands"
)

// Sweeper reclaims expired holds on a fixed interval.
type Sweeper struct {
	sweep    commands.SweepCommands
	interval time.Duration
}

func NewSweeper(sweep commands.SweepCommands, cfg config.SweepConfig) *Sweeper {
	return &Sweeper{sweep: sweep, interval: cfg.Interval}
}

func (s *Sweeper) Name() string            { return "hold-sweeper" }
func (s *Sweeper) Interval() time.Duration { return s.interval }

func (s *Sweeper) Tick(ctx context.Context) error {
	_, err := s.sweep.SweepExpired(ctx)
	return err
}
