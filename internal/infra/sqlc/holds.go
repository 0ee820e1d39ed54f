package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createHoldGroup = `
INSERT INTO hold_groups (id, user_id, event_id, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)
`

type CreateHoldGroupParams struct {
	ID        uuid.UUID
	UserID    int64
	EventID   int64
	ExpiresAt pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateHoldGroup(ctx context.Context, db DBTX, arg CreateHoldGroupParams) error {
	_, err := db.Exec(ctx, createHoldGroup,
		arg.ID,
		arg.UserID,
		arg.EventID,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	return err
}

// Expiry is not filtered here: callers distinguish an expired group from an
// unknown one.
const getHoldGroup = `
SELECT id, user_id, event_id, expires_at, created_at
FROM hold_groups
WHERE id = $1
  AND user_id = $2
  AND event_id = $3
`

type GetHoldGroupParams struct {
	ID      uuid.UUID
	UserID  int64
	EventID int64
}

func (q *Queries) GetHoldGroup(ctx context.Context, db DBTX, arg GetHoldGroupParams) (HoldGroups, error) {
	row := db.QueryRow(ctx, getHoldGroup, arg.ID, arg.UserID, arg.EventID)
	var i HoldGroups
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.EventID,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const countActiveHeldSeats = `
SELECT count(*)
FROM hold_group_seats hs
JOIN hold_groups hg ON hg.id = hs.hold_group_id
WHERE hg.user_id = $1
  AND hg.event_id = $2
  AND hg.expires_at > $3
`

type CountActiveHeldSeatsParams struct {
	UserID  int64
	EventID int64
	Now     pgtype.Timestamptz
}

func (q *Queries) CountActiveHeldSeats(ctx context.Context, db DBTX, arg CountActiveHeldSeatsParams) (int64, error) {
	row := db.QueryRow(ctx, countActiveHeldSeats, arg.UserID, arg.EventID, arg.Now)
	var count int64
	err := row.Scan(&count)
	return count, err
}

// Transaction-scoped; released on commit or rollback. Unrelated pairs may
// share a hash and wait on each other, which only costs latency.
const lockUserEventHolds = `
SELECT pg_advisory_xact_lock(hashtextextended(format('hold-quota:%s:%s', $1::bigint, $2::bigint), 0))
`

type LockUserEventHoldsParams struct {
	UserID  int64
	EventID int64
}

func (q *Queries) LockUserEventHolds(ctx context.Context, db DBTX, arg LockUserEventHoldsParams) error {
	_, err := db.Exec(ctx, lockUserEventHolds, arg.UserID, arg.EventID)
	return err
}

const createHoldGroupSeat = `
INSERT INTO hold_group_seats (event_id, seat_id, hold_group_id, expires_at)
VALUES ($1, $2, $3, $4)
`

type CreateHoldGroupSeatParams struct {
	EventID     int64
	SeatID      int64
	HoldGroupID uuid.UUID
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) CreateHoldGroupSeat(ctx context.Context, db DBTX, arg CreateHoldGroupSeatParams) error {
	_, err := db.Exec(ctx, createHoldGroupSeat,
		arg.EventID,
		arg.SeatID,
		arg.HoldGroupID,
		arg.ExpiresAt,
	)
	return err
}

const listValidHoldSeatIDs = `
SELECT seat_id
FROM hold_group_seats
WHERE hold_group_id = $1
  AND event_id = $2
  AND expires_at > $3
ORDER BY seat_id
`

type ListValidHoldSeatIDsParams struct {
	HoldGroupID uuid.UUID
	EventID     int64
	Now         pgtype.Timestamptz
}

func (q *Queries) ListValidHoldSeatIDs(ctx context.Context, db DBTX, arg ListValidHoldSeatIDsParams) ([]int64, error) {
	rows, err := db.Query(ctx, listValidHoldSeatIDs, arg.HoldGroupID, arg.EventID, arg.Now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int64
	for rows.Next() {
		var seatID int64
		if err := rows.Scan(&seatID); err != nil {
			return nil, err
		}
		items = append(items, seatID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteHoldGroupSeats = `
DELETE FROM hold_group_seats
WHERE hold_group_id = $1
  AND event_id = $2
`

type DeleteHoldGroupSeatsParams struct {
	HoldGroupID uuid.UUID
	EventID     int64
}

func (q *Queries) DeleteHoldGroupSeats(ctx context.Context, db DBTX, arg DeleteHoldGroupSeatsParams) (int64, error) {
	result, err := db.Exec(ctx, deleteHoldGroupSeats, arg.HoldGroupID, arg.EventID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteHoldGroup = `
DELETE FROM hold_groups
WHERE id = $1
`

func (q *Queries) DeleteHoldGroup(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteHoldGroup, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteExpiredHoldGroupSeats = `
DELETE FROM hold_group_seats
WHERE expires_at <= $1
`

func (q *Queries) DeleteExpiredHoldGroupSeats(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredHoldGroupSeats, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// Groups still referenced by a live seat row are left alone; seat and group
// expiries are written together so this only matters for hand-edited rows.
const deleteExpiredHoldGroups = `
DELETE FROM hold_groups hg
WHERE hg.expires_at <= $1
  AND NOT EXISTS (
      SELECT 1 FROM hold_group_seats hs WHERE hs.hold_group_id = hg.id
  )
`

func (q *Queries) DeleteExpiredHoldGroups(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredHoldGroups, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
