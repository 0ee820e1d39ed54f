package repository

import (
	"context"
	"time"

	"seat-hold-ticketing/internal/domain/hold"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HoldIdempotencyWriteQueries interface {
	GetHoldIdempotency(ctx context.Context, db sqlc.DBTX, arg sqlc.GetHoldIdempotencyParams) (sqlc.HoldIdempotencies, error)
	InsertPendingHoldIdempotency(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPendingHoldIdempotencyParams) (int64, error)
	DeleteStaleHoldIdempotency(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteStaleHoldIdempotencyParams) (int64, error)
	CompleteHoldIdempotency(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteHoldIdempotencyParams) (int64, error)
	DeletePendingHoldIdempotency(ctx context.Context, db sqlc.DBTX, arg sqlc.DeletePendingHoldIdempotencyParams) (int64, error)
	DeleteExpiredPendingHoldIdempotencies(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

var errPendingRecordRequired = errs.New("only pending idempotency records can be inserted")

type HoldIdempotencyRepository struct {
	queries HoldIdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewHoldIdempotencyRepository(queries HoldIdempotencyWriteQueries, db sqlc.DBTX) *HoldIdempotencyRepository {
	return &HoldIdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HoldIdempotencyRepository) Find(ctx context.Context, key hold.IdempotencyKey) (hold.IdempotencyRecord, error) {
	row, err := r.queries.GetHoldIdempotency(ctx, r.db, sqlc.GetHoldIdempotencyParams{
		UserID:         key.UserID,
		EventID:        key.EventID,
		IdempotencyKey: key.Key,
	})
	if err != nil {
		return hold.IdempotencyRecord{}, infra.WrapRepoErr("failed to get hold idempotency", err)
	}
	return toHoldIdempotencyRecord(row), nil
}

func toHoldIdempotencyRecord(row sqlc.HoldIdempotencies) hold.IdempotencyRecord {
	rec := hold.IdempotencyRecord{
		Key: hold.IdempotencyKey{
			UserID:  row.UserID,
			EventID: row.EventID,
			Key:     row.IdempotencyKey,
		},
		Fingerprint: row.SeatIdsKey,
	}

	groupID := pgconv.UUIDPtrFromPgtype(row.HoldGroupID)
	seatCount := pgconv.Int32PtrFromPgtype(row.SeatCount)
	if groupID != nil && seatCount != nil {
		rec.State = hold.Completed{Result: hold.Result{
			EventID:   row.EventID,
			GroupID:   *groupID,
			SeatCount: int(*seatCount),
		}}
		return rec
	}

	rec.State = hold.Pending{
		ClaimID:   row.ClaimID,
		ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
	}
	return rec
}

func (r *HoldIdempotencyRepository) InsertPending(ctx context.Context, rec hold.IdempotencyRecord) (bool, error) {
	pending, ok := rec.Pending()
	if !ok {
		return false, errPendingRecordRequired
	}

	n, err := r.queries.InsertPendingHoldIdempotency(ctx, r.db, sqlc.InsertPendingHoldIdempotencyParams{
		UserID:         rec.Key.UserID,
		EventID:        rec.Key.EventID,
		IdempotencyKey: rec.Key.Key,
		SeatIdsKey:     rec.Fingerprint,
		ClaimID:        pending.ClaimID,
		ExpiresAt:      pgconv.TimeToPgtype(pending.ExpiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert pending hold idempotency", err)
	}
	return n == 1, nil
}

func (r *HoldIdempotencyRepository) DeleteStale(ctx context.Context, key hold.IdempotencyKey, claimID uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.DeleteStaleHoldIdempotency(ctx, r.db, sqlc.DeleteStaleHoldIdempotencyParams{
		UserID:         key.UserID,
		EventID:        key.EventID,
		IdempotencyKey: key.Key,
		ClaimID:        claimID,
		Now:            pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete stale hold idempotency", err)
	}
	return n == 1, nil
}

func (r *HoldIdempotencyRepository) Complete(ctx context.Context, key hold.IdempotencyKey, claimID uuid.UUID, result hold.Result) (bool, error) {
	n, err := r.queries.CompleteHoldIdempotency(ctx, r.db, sqlc.CompleteHoldIdempotencyParams{
		UserID:         key.UserID,
		EventID:        key.EventID,
		IdempotencyKey: key.Key,
		ClaimID:        claimID,
		HoldGroupID:    pgconv.UUIDToPgtype(result.GroupID),
		SeatCount:      pgconv.Int32ToPgtype(int32(result.SeatCount)), // #nosec G115 -- bounded by MaxSeatsPerUser
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete hold idempotency", err)
	}
	return n == 1, nil
}

func (r *HoldIdempotencyRepository) Release(ctx context.Context, key hold.IdempotencyKey, claimID uuid.UUID) (bool, error) {
	n, err := r.queries.DeletePendingHoldIdempotency(ctx, r.db, sqlc.DeletePendingHoldIdempotencyParams{
		UserID:         key.UserID,
		EventID:        key.EventID,
		IdempotencyKey: key.Key,
		ClaimID:        claimID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to release hold idempotency", err)
	}
	return n == 1, nil
}

func (r *HoldIdempotencyRepository) DeleteExpiredPending(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredPendingHoldIdempotencies(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired pending hold idempotencies", err)
	}
	return n, nil
}
