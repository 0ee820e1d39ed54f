package commands

import (
	"context"
	"log/slog"
	"time"

	"seat-hold-ticketing/internal/pkg/clock"
	"seat-hold-ticketing/internal/usecase/shared"
)

type SweepResult struct {
	// ReclaimedCount is the number of expired seat hold rows removed.
	ReclaimedCount int64
	GroupsDeleted  int64
	PendingKeys    int64
	SweptAt        time.Time
}

type SweepCommands interface {
	SweepExpired(ctx context.Context) (*SweepResult, error)
}

type sweepUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSweepUseCase(uow shared.UnitOfWork, clk clock.Clock) SweepCommands {
	return &sweepUseCaseImpl{uow: uow, clock: clk}
}

// SweepExpired deletes every hold row with expiry <= now, then the groups left
// empty, then abandoned pending idempotency rows. Safe to run concurrently
// with itself and with hold/confirm.
func (uc *sweepUseCaseImpl) SweepExpired(ctx context.Context) (*SweepResult, error) {
	now := uc.clock.Now()
	result := &SweepResult{SweptAt: now}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		seats, groups, err := tx.Holds().DeleteExpired(ctx, now)
		if err != nil {
			return err
		}
		pending, err := tx.HoldIdempotency().DeleteExpiredPending(ctx, now)
		if err != nil {
			return err
		}
		result.ReclaimedCount, result.GroupsDeleted, result.PendingKeys = seats, groups, pending
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.ReclaimedCount > 0 || result.GroupsDeleted > 0 {
		slog.InfoContext(ctx, "expired holds swept",
			"reclaimed_seats", result.ReclaimedCount,
			"groups_deleted", result.GroupsDeleted,
			"pending_keys_deleted", result.PendingKeys)
	}
	return result, nil
}
