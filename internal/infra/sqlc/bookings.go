package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `
INSERT INTO bookings (event_id, user_id, payment_tx_id, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateBookingParams struct {
	EventID     int64
	UserID      int64
	PaymentTxID string
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (int64, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.EventID,
		arg.UserID,
		arg.PaymentTxID,
		arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const createBookingItem = `
INSERT INTO booking_items (booking_id, seat_id, price)
VALUES ($1, $2, $3)
`

type CreateBookingItemParams struct {
	BookingID int64
	SeatID    int64
	Price     int64
}

func (q *Queries) CreateBookingItem(ctx context.Context, db DBTX, arg CreateBookingItemParams) error {
	_, err := db.Exec(ctx, createBookingItem, arg.BookingID, arg.SeatID, arg.Price)
	return err
}

const getBooking = `
SELECT id, event_id, user_id, payment_tx_id, created_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id int64) (Bookings, error) {
	row := db.QueryRow(ctx, getBooking, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.EventID,
		&i.UserID,
		&i.PaymentTxID,
		&i.CreatedAt,
	)
	return i, err
}

const listBookingItems = `
SELECT id, booking_id, seat_id, price
FROM booking_items
WHERE booking_id = $1
ORDER BY seat_id
`

func (q *Queries) ListBookingItems(ctx context.Context, db DBTX, bookingID int64) ([]BookingItems, error) {
	rows, err := db.Query(ctx, listBookingItems, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingItems
	for rows.Next() {
		var i BookingItems
		if err := rows.Scan(&i.ID, &i.BookingID, &i.SeatID, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
