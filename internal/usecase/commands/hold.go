package commands

import (
	"context"
	"log/slog"
	"time"

	"seat-hold-ticketing/internal/domain/hold"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/pkg/clock"
	"seat-hold-ticketing/internal/pkg/config"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxIdempotencyAttempts bounds the re-read loop when the idempotency row
// changes between our read and our conditional write.
const maxIdempotencyAttempts = 3

const releaseTimeout = 5 * time.Second

type HoldRequest struct {
	UserID         int64
	EventID        int64
	SeatIDs        []int64
	IdempotencyKey string
}

type HoldResult struct {
	EventID   int64
	HoldToken uuid.UUID
	SeatCount int
	Replayed  bool
}

type HoldCommands interface {
	Hold(ctx context.Context, req HoldRequest) (*HoldResult, error)
}

type holdUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ttl   time.Duration
}

func NewHoldUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.HoldConfig) HoldCommands {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = hold.DefaultTTL
	}
	return &holdUseCaseImpl{uow: uow, clock: clk, ttl: ttl}
}

// Hold runs in two transactions. The first secures the idempotency key as a
// committed pending row so concurrent retries see "in progress"; the second
// reserves seats and completes the row. If the second fails, the pending row
// is released so the same key can be retried at once.
func (uc *holdUseCaseImpl) Hold(ctx context.Context, req HoldRequest) (*HoldResult, error) {
	key, err := hold.NewIdempotencyKey(req.UserID, req.EventID, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	seats, err := hold.NewSeatSet(req.SeatIDs)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	var (
		claim  hold.Pending
		replay *hold.Result
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claim, replay = hold.Pending{}, nil

		if err := ensureOnSale(ctx, tx, req.EventID, now); err != nil {
			return err
		}
		c, r, err := uc.secureKey(ctx, tx, key, seats.Fingerprint(), now)
		if err != nil {
			return err
		}
		claim, replay = c, r
		return nil
	})
	if err != nil {
		return nil, err
	}
	if replay != nil {
		return &HoldResult{
			EventID:   replay.EventID,
			HoldToken: replay.GroupID,
			SeatCount: replay.SeatCount,
			Replayed:  true,
		}, nil
	}

	var result hold.Result
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := uc.reserve(ctx, tx, key, claim.ClaimID, seats, now)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		uc.release(ctx, key, claim.ClaimID)
		return nil, err
	}

	slog.InfoContext(ctx, "seats held",
		"event_id", result.EventID,
		"user_id", req.UserID,
		"hold_group_id", result.GroupID,
		"seat_count", result.SeatCount)

	return &HoldResult{
		EventID:   result.EventID,
		HoldToken: result.GroupID,
		SeatCount: result.SeatCount,
	}, nil
}

// secureKey returns either a pending claim owned by this request or the
// completed result to replay.
func (uc *holdUseCaseImpl) secureKey(
	ctx context.Context,
	tx shared.Tx,
	key hold.IdempotencyKey,
	fingerprint string,
	now time.Time,
) (hold.Pending, *hold.Result, error) {
	repo := tx.HoldIdempotency()

	for attempt := 0; attempt < maxIdempotencyAttempts; attempt++ {
		existing, err := repo.Find(ctx, key)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return hold.Pending{}, nil, err
		}

		if err == nil {
			switch existing.Resolve(fingerprint, now) {
			case hold.DecisionConflict:
				return hold.Pending{}, nil, errs.ErrIdempotencyConflict
			case hold.DecisionReplay:
				done, _ := existing.Completed()
				return hold.Pending{}, &done.Result, nil
			case hold.DecisionInProgress:
				return hold.Pending{}, nil, errs.ErrIdempotencyInProgress
			case hold.DecisionReclaim:
				stale, _ := existing.Pending()
				deleted, err := repo.DeleteStale(ctx, key, stale.ClaimID, now)
				if err != nil {
					return hold.Pending{}, nil, err
				}
				if !deleted {
					continue
				}
				slog.DebugContext(ctx, "reclaimed stale hold idempotency key",
					"user_id", key.UserID, "event_id", key.EventID)
			}
		}

		rec := hold.NewPendingRecord(key, fingerprint, now, uc.ttl)
		inserted, err := repo.InsertPending(ctx, rec)
		if err != nil {
			return hold.Pending{}, nil, err
		}
		if inserted {
			pending, _ := rec.Pending()
			return pending, nil, nil
		}
	}

	slog.WarnContext(ctx, "hold idempotency key kept changing under us",
		"user_id", key.UserID, "event_id", key.EventID, "attempts", maxIdempotencyAttempts)
	return hold.Pending{}, nil, errs.ErrIdempotencyConflict
}

func (uc *holdUseCaseImpl) reserve(
	ctx context.Context,
	tx shared.Tx,
	key hold.IdempotencyKey,
	claimID uuid.UUID,
	seats hold.SeatSet,
	now time.Time,
) (hold.Result, error) {
	if err := tx.Holds().LockQuota(ctx, key.UserID, key.EventID); err != nil {
		return hold.Result{}, err
	}
	active, err := tx.Holds().CountActiveSeats(ctx, key.UserID, key.EventID, now)
	if err != nil {
		return hold.Result{}, err
	}
	if active+seats.Len() > hold.MaxSeatsPerUser {
		return hold.Result{}, errs.ErrHoldLimitExceeded
	}

	group := hold.NewGroup(key.UserID, key.EventID, now, uc.ttl)
	if err := tx.Holds().CreateGroup(ctx, group); err != nil {
		return hold.Result{}, err
	}

	available, err := tx.Seats().CountAvailable(ctx, key.EventID, seats.IDs())
	if err != nil {
		return hold.Result{}, err
	}
	if available != seats.Len() {
		return hold.Result{}, errs.ErrSeatNotAvailable
	}

	if err := tx.Holds().CreateSeats(ctx, group.Seats(seats)); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindForeignKeyViolated) {
			return hold.Result{}, errs.ErrSeatNotAvailable
		}
		return hold.Result{}, err
	}

	result := hold.Result{EventID: key.EventID, GroupID: group.ID, SeatCount: seats.Len()}
	completed, err := tx.HoldIdempotency().Complete(ctx, key, claimID, result)
	if err != nil {
		return hold.Result{}, err
	}
	if !completed {
		// Our pending row expired and another request reclaimed the key.
		return hold.Result{}, errs.ErrIdempotencyInProgress
	}
	return result, nil
}

func (uc *holdUseCaseImpl) release(ctx context.Context, key hold.IdempotencyKey, claimID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.HoldIdempotency().Release(ctx, key, claimID)
		return err
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to release pending hold idempotency key; it will be reclaimable after expiry",
			"user_id", key.UserID, "event_id", key.EventID, "error", err)
	}
}

func ensureOnSale(ctx context.Context, tx shared.Tx, eventID int64, now time.Time) error {
	ev, err := tx.Events().FindByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrEventNotFound
		}
		return err
	}
	if !ev.OnSale(now) {
		return errs.ErrEventNotOnSale
	}
	return nil
}
