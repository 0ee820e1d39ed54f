package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const confirmIdempotencyColumns = `id, payment_tx_id, user_id, confirm_key, event_id, hold_group_id, booking_id, created_at`

const getConfirmIdempotencyByPaymentTx = `
SELECT ` + confirmIdempotencyColumns + `
FROM confirm_idempotencies
WHERE payment_tx_id = $1
`

func (q *Queries) GetConfirmIdempotencyByPaymentTx(ctx context.Context, db DBTX, paymentTxID string) (ConfirmIdempotencies, error) {
	return scanConfirmIdempotency(db.QueryRow(ctx, getConfirmIdempotencyByPaymentTx, paymentTxID))
}

const getConfirmIdempotencyByUserKey = `
SELECT ` + confirmIdempotencyColumns + `
FROM confirm_idempotencies
WHERE user_id = $1
  AND confirm_key = $2
`

type GetConfirmIdempotencyByUserKeyParams struct {
	UserID     int64
	ConfirmKey string
}

func (q *Queries) GetConfirmIdempotencyByUserKey(ctx context.Context, db DBTX, arg GetConfirmIdempotencyByUserKeyParams) (ConfirmIdempotencies, error) {
	return scanConfirmIdempotency(db.QueryRow(ctx, getConfirmIdempotencyByUserKey, arg.UserID, arg.ConfirmKey))
}

func scanConfirmIdempotency(row interface{ Scan(...any) error }) (ConfirmIdempotencies, error) {
	var i ConfirmIdempotencies
	err := row.Scan(
		&i.ID,
		&i.PaymentTxID,
		&i.UserID,
		&i.ConfirmKey,
		&i.EventID,
		&i.HoldGroupID,
		&i.BookingID,
		&i.CreatedAt,
	)
	return i, err
}

// Conflicts on either unique key are swallowed; RowsAffected tells the caller
// whether it won.
const insertConfirmIdempotency = `
INSERT INTO confirm_idempotencies (payment_tx_id, user_id, confirm_key, event_id, hold_group_id, booking_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT DO NOTHING
`

type InsertConfirmIdempotencyParams struct {
	PaymentTxID string
	UserID      int64
	ConfirmKey  string
	EventID     int64
	HoldGroupID uuid.UUID
	BookingID   int64
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) InsertConfirmIdempotency(ctx context.Context, db DBTX, arg InsertConfirmIdempotencyParams) (int64, error) {
	result, err := db.Exec(ctx, insertConfirmIdempotency,
		arg.PaymentTxID,
		arg.UserID,
		arg.ConfirmKey,
		arg.EventID,
		arg.HoldGroupID,
		arg.BookingID,
		arg.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
