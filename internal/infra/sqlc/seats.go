package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const countAvailableSeats = `
SELECT count(*)
FROM seats
WHERE event_id = $1
  AND id = ANY($2::bigint[])
  AND status = 'AVAILABLE'
`

type CountAvailableSeatsParams struct {
	EventID int64
	SeatIds []int64
}

func (q *Queries) CountAvailableSeats(ctx context.Context, db DBTX, arg CountAvailableSeatsParams) (int64, error) {
	row := db.QueryRow(ctx, countAvailableSeats, arg.EventID, arg.SeatIds)
	var count int64
	err := row.Scan(&count)
	return count, err
}

// The EXISTS predicate is evaluated at write time, so a hold that expired or
// was swept between the read and this statement sells nothing.
const sellHeldSeats = `
UPDATE seats s
SET status = 'SOLD'
WHERE s.event_id = $1
  AND s.id = ANY($2::bigint[])
  AND s.status = 'AVAILABLE'
  AND EXISTS (
      SELECT 1
      FROM hold_group_seats hs
      JOIN hold_groups hg ON hg.id = hs.hold_group_id
      WHERE hs.event_id = s.event_id
        AND hs.seat_id = s.id
        AND hs.hold_group_id = $3
        AND hg.user_id = $4
        AND hs.expires_at > $5
        AND hg.expires_at > $5
  )
RETURNING s.id, s.price
`

type SellHeldSeatsParams struct {
	EventID     int64
	SeatIds     []int64
	HoldGroupID uuid.UUID
	UserID      int64
	Now         pgtype.Timestamptz
}

type SellHeldSeatsRow struct {
	ID    int64
	Price int64
}

func (q *Queries) SellHeldSeats(ctx context.Context, db DBTX, arg SellHeldSeatsParams) ([]SellHeldSeatsRow, error) {
	rows, err := db.Query(ctx, sellHeldSeats,
		arg.EventID,
		arg.SeatIds,
		arg.HoldGroupID,
		arg.UserID,
		arg.Now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SellHeldSeatsRow
	for rows.Next() {
		var i SellHeldSeatsRow
		if err := rows.Scan(&i.ID, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
