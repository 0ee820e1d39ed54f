package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getPaymentTx = `
SELECT payment_tx_id, user_id, amount, status, decided_at, created_at
FROM payment_txs
WHERE payment_tx_id = $1
`

func (q *Queries) GetPaymentTx(ctx context.Context, db DBTX, paymentTxID string) (PaymentTxs, error) {
	row := db.QueryRow(ctx, getPaymentTx, paymentTxID)
	var i PaymentTxs
	err := row.Scan(
		&i.PaymentTxID,
		&i.UserID,
		&i.Amount,
		&i.Status,
		&i.DecidedAt,
		&i.CreatedAt,
	)
	return i, err
}

const insertPaymentTx = `
INSERT INTO payment_txs (payment_tx_id, user_id, amount, status, decided_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (payment_tx_id) DO NOTHING
`

type InsertPaymentTxParams struct {
	PaymentTxID string
	UserID      int64
	Amount      int64
	Status      string
	DecidedAt   pgtype.Timestamptz
}

func (q *Queries) InsertPaymentTx(ctx context.Context, db DBTX, arg InsertPaymentTxParams) (int64, error) {
	result, err := db.Exec(ctx, insertPaymentTx,
		arg.PaymentTxID,
		arg.UserID,
		arg.Amount,
		arg.Status,
		arg.DecidedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
