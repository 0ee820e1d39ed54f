package worker

import (
	"context"
	"log/slog"
	"time"

	"seat-hold-ticketing/internal/infra/broker"
	"seat-hold-ticketing/internal/pkg/clock"
	"seat-hold-ticketing/internal/pkg/config"
	"seat-hold-ticketing/internal/usecase/shared"
)

const (
	maxDeliveryAttempts = 8
	maxRetryBackoff     = 5 * time.Minute
)

// OutboxRelay publishes due notification jobs to the broker. Jobs stay row
// locked for the length of the transaction, so concurrent relays never pick
// the same job.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher broker.Publisher
	clock     clock.Clock
	interval  time.Duration
	batch     int
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher broker.Publisher, clk clock.Clock, cfg config.BrokerConfig) *OutboxRelay {
	batch := cfg.RelayBatch
	if batch <= 0 {
		batch = 50
	}
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		interval:  cfg.RelayInterval,
		batch:     batch,
	}
}

func (r *OutboxRelay) Name() string            { return "outbox-relay" }
func (r *OutboxRelay) Interval() time.Duration { return r.interval }

func (r *OutboxRelay) Tick(ctx context.Context) error {
	_, err := r.RelayOnce(ctx)
	return err
}

// RelayOnce handles one batch and returns how many jobs were published.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	now := r.clock.Now()
	sent := 0

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := tx.Notifications().ClaimDue(ctx, now, r.batch)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if job.Kind != shared.NotificationKindBroker {
				if err := tx.Notifications().Reschedule(ctx, job.ID, now, "unsupported job kind "+job.Kind, true); err != nil {
					return err
				}
				continue
			}

			pubErr := r.publisher.Publish(ctx, broker.Message{
				ID:    job.ID.String(),
				Topic: job.Topic,
				Body:  job.Payload,
			})
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, job.ID, now); err != nil {
					return err
				}
				sent++
				continue
			}

			attempts := job.Attempts + 1
			giveUp := attempts >= maxDeliveryAttempts
			slog.WarnContext(ctx, "failed to publish notification job",
				"component", r.Name(),
				"job_id", job.ID,
				"topic", job.Topic,
				"attempts", attempts,
				"give_up", giveUp,
				"error", pubErr)
			if err := tx.Notifications().Reschedule(ctx, job.ID, now.Add(retryBackoff(attempts)), pubErr.Error(), giveUp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

func retryBackoff(attempts int) time.Duration {
	if attempts <= 0 {
		return time.Second
	}
	if attempts > 9 {
		return maxRetryBackoff
	}
	d := time.Duration(1<<attempts) * time.Second
	return min(d, maxRetryBackoff)
}
