package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getHoldIdempotency = `
SELECT id, user_id, event_id, idempotency_key, seat_ids_key, claim_id,
       expires_at, hold_group_id, seat_count, created_at
FROM hold_idempotencies
WHERE user_id = $1
  AND event_id = $2
  AND idempotency_key = $3
`

type GetHoldIdempotencyParams struct {
	UserID         int64
	EventID        int64
	IdempotencyKey string
}

func (q *Queries) GetHoldIdempotency(ctx context.Context, db DBTX, arg GetHoldIdempotencyParams) (HoldIdempotencies, error) {
	row := db.QueryRow(ctx, getHoldIdempotency, arg.UserID, arg.EventID, arg.IdempotencyKey)
	var i HoldIdempotencies
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.EventID,
		&i.IdempotencyKey,
		&i.SeatIdsKey,
		&i.ClaimID,
		&i.ExpiresAt,
		&i.HoldGroupID,
		&i.SeatCount,
		&i.CreatedAt,
	)
	return i, err
}

// ON CONFLICT DO NOTHING keeps the transaction usable after losing the race,
// so the caller can re-read the winner's row in the same transaction.
const insertPendingHoldIdempotency = `
INSERT INTO hold_idempotencies (user_id, event_id, idempotency_key, seat_ids_key, claim_id, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, event_id, idempotency_key) DO NOTHING
`

type InsertPendingHoldIdempotencyParams struct {
	UserID         int64
	EventID        int64
	IdempotencyKey string
	SeatIdsKey     string
	ClaimID        uuid.UUID
	ExpiresAt      pgtype.Timestamptz
}

func (q *Queries) InsertPendingHoldIdempotency(ctx context.Context, db DBTX, arg InsertPendingHoldIdempotencyParams) (int64, error) {
	result, err := db.Exec(ctx, insertPendingHoldIdempotency,
		arg.UserID,
		arg.EventID,
		arg.IdempotencyKey,
		arg.SeatIdsKey,
		arg.ClaimID,
		arg.ExpiresAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteStaleHoldIdempotency = `
DELETE FROM hold_idempotencies
WHERE user_id = $1
  AND event_id = $2
  AND idempotency_key = $3
  AND claim_id = $4
  AND hold_group_id IS NULL
  AND expires_at <= $5
`

type DeleteStaleHoldIdempotencyParams struct {
	UserID         int64
	EventID        int64
	IdempotencyKey string
	ClaimID        uuid.UUID
	Now            pgtype.Timestamptz
}

func (q *Queries) DeleteStaleHoldIdempotency(ctx context.Context, db DBTX, arg DeleteStaleHoldIdempotencyParams) (int64, error) {
	result, err := db.Exec(ctx, deleteStaleHoldIdempotency,
		arg.UserID,
		arg.EventID,
		arg.IdempotencyKey,
		arg.ClaimID,
		arg.Now,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const completeHoldIdempotency = `
UPDATE hold_idempotencies
SET hold_group_id = $5,
    seat_count = $6
WHERE user_id = $1
  AND event_id = $2
  AND idempotency_key = $3
  AND claim_id = $4
  AND hold_group_id IS NULL
`

type CompleteHoldIdempotencyParams struct {
	UserID         int64
	EventID        int64
	IdempotencyKey string
	ClaimID        uuid.UUID
	HoldGroupID    pgtype.UUID
	SeatCount      pgtype.Int4
}

func (q *Queries) CompleteHoldIdempotency(ctx context.Context, db DBTX, arg CompleteHoldIdempotencyParams) (int64, error) {
	result, err := db.Exec(ctx, completeHoldIdempotency,
		arg.UserID,
		arg.EventID,
		arg.IdempotencyKey,
		arg.ClaimID,
		arg.HoldGroupID,
		arg.SeatCount,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deletePendingHoldIdempotency = `
DELETE FROM hold_idempotencies
WHERE user_id = $1
  AND event_id = $2
  AND idempotency_key = $3
  AND claim_id = $4
  AND hold_group_id IS NULL
`

type DeletePendingHoldIdempotencyParams struct {
	UserID         int64
	EventID        int64
	IdempotencyKey string
	ClaimID        uuid.UUID
}

func (q *Queries) DeletePendingHoldIdempotency(ctx context.Context, db DBTX, arg DeletePendingHoldIdempotencyParams) (int64, error) {
	result, err := db.Exec(ctx, deletePendingHoldIdempotency,
		arg.UserID,
		arg.EventID,
		arg.IdempotencyKey,
		arg.ClaimID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteExpiredPendingHoldIdempotencies = `
DELETE FROM hold_idempotencies
WHERE hold_group_id IS NULL
  AND expires_at <= $1
`

func (q *Queries) DeleteExpiredPendingHoldIdempotencies(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredPendingHoldIdempotencies, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
