//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"seat-hold-ticketing/internal/pkg/config"
	"seat-hold-ticketing/internal/usecase/commands"
	"seat-hold-ticketing/internal/worker"
	commandsmock "seat-hold-ticketing/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingJob struct {
	name     string
	interval time.Duration
	ticks    atomic.Int32
	err      error
}

func (j *countingJob) Name() string            { return j.name }
func (j *countingJob) Interval() time.Duration { return j.interval }
func (j *countingJob) Tick(context.Context) error {
	j.ticks.Add(1)
	return j.err
}

func TestRunner(t *testing.T) {
	t.Run("Normal case: jobs tick until stopped, disabled jobs never run", func(t *testing.T) {
		active := &countingJob{name: "active", interval: 5 * time.Millisecond}
		failing := &countingJob{name: "failing", interval: 5 * time.Millisecond, err: errors.New("tick failed")}
		disabled := &countingJob{name: "disabled"}

		r := worker.NewRunner(active, failing, disabled)
		r.Start(context.Background())

		assert.Eventually(t, func() bool {
			return active.ticks.Load() >= 2 && failing.ticks.Load() >= 2
		}, time.Second, 5*time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, r.Stop(ctx))

		stopped := active.ticks.Load()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, stopped, active.ticks.Load())
		assert.Zero(t, disabled.ticks.Load())
	})

	t.Run("Normal case: stop without start is a no-op", func(t *testing.T) {
		require.NoError(t, worker.NewRunner().Stop(context.Background()))
	})
}

func TestSweeper(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweep := commandsmock.NewMockSweepCommands(ctrl)
	s := worker.NewSweeper(sweep, config.SweepConfig{Interval: 30 * time.Second})

	assert.Equal(t, "hold-sweeper", s.Name())
	assert.Equal(t, 30*time.Second, s.Interval())

	t.Run("Normal case: tick runs one sweep", func(t *testing.T) {
		sweep.EXPECT().SweepExpired(gomock.Any()).Return(&commands.SweepResult{ReclaimedCount: 3}, nil)
		require.NoError(t, s.Tick(context.Background()))
	})

	t.Run("Error case: sweep error is returned to the runner", func(t *testing.T) {
		boom := errors.New("db down")
		sweep.EXPECT().SweepExpired(gomock.Any()).Return(nil, boom)
		require.ErrorIs(t, s.Tick(context.Background()), boom)
	})
}
