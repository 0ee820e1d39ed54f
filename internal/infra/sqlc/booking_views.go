package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getBookingView = `
SELECT b.id, b.event_id, e.title, b.user_id, b.payment_tx_id,
       p.status, p.amount, b.created_at
FROM bookings b
JOIN events e ON e.id = b.event_id
JOIN payment_txs p ON p.payment_tx_id = b.payment_tx_id
WHERE b.id = $1
`

type GetBookingViewRow struct {
	ID            int64
	EventID       int64
	EventTitle    string
	UserID        int64
	PaymentTxID   string
	PaymentStatus string
	Amount        int64
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id int64) (GetBookingViewRow, error) {
	row := db.QueryRow(ctx, getBookingView, id)
	var i GetBookingViewRow
	err := row.Scan(
		&i.ID,
		&i.EventID,
		&i.EventTitle,
		&i.UserID,
		&i.PaymentTxID,
		&i.PaymentStatus,
		&i.Amount,
		&i.CreatedAt,
	)
	return i, err
}

const listBookingSeatViews = `
SELECT bi.seat_id, s.zone_code, s.seat_no, bi.price
FROM booking_items bi
JOIN seats s ON s.id = bi.seat_id
WHERE bi.booking_id = $1
ORDER BY bi.seat_id
`

type ListBookingSeatViewsRow struct {
	SeatID   int64
	ZoneCode string
	SeatNo   string
	Price    int64
}

func (q *Queries) ListBookingSeatViews(ctx context.Context, db DBTX, bookingID int64) ([]ListBookingSeatViewsRow, error) {
	rows, err := db.Query(ctx, listBookingSeatViews, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBookingSeatViewsRow
	for rows.Next() {
		var i ListBookingSeatViewsRow
		if err := rows.Scan(&i.SeatID, &i.ZoneCode, &i.SeatNo, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listEventSeats = `
SELECT s.id, s.zone_code, s.seat_no, s.price,
       CASE
           WHEN s.status = 'SOLD' THEN 'SOLD'
           WHEN h.seat_id IS NOT NULL THEN 'HELD'
           ELSE 'AVAILABLE'
       END AS availability
FROM seats s
LEFT JOIN hold_group_seats h ON h.event_id = s.event_id AND h.seat_id = s.id
WHERE s.event_id = $1
ORDER BY s.zone_code, s.seat_no
`

type ListEventSeatsRow struct {
	ID           int64
	ZoneCode     string
	SeatNo       string
	Price        int64
	Availability string
}

func (q *Queries) ListEventSeats(ctx context.Context, db DBTX, eventID int64) ([]ListEventSeatsRow, error) {
	rows, err := db.Query(ctx, listEventSeats, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListEventSeatsRow
	for rows.Next() {
		var i ListEventSeatsRow
		if err := rows.Scan(&i.ID, &i.ZoneCode, &i.SeatNo, &i.Price, &i.Availability); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
