package repository

import (
	"context"

	"seat-hold-ticketing/internal/domain/payment"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/pgconv"
)

type PaymentWriteQueries interface {
	GetPaymentTx(ctx context.Context, db sqlc.DBTX, paymentTxID string) (sqlc.PaymentTxs, error)
	InsertPaymentTx(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentTxParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (payment.Tx, error) {
	row, err := r.queries.GetPaymentTx(ctx, r.db, id)
	if err != nil {
		return payment.Tx{}, infra.WrapRepoErr("failed to get payment tx", err)
	}
	return payment.Tx{
		ID:        row.PaymentTxID,
		UserID:    row.UserID,
		Amount:    row.Amount,
		Status:    payment.Status(row.Status),
		DecidedAt: pgconv.TimeFromPgtype(row.DecidedAt),
	}, nil
}

func (r *PaymentRepository) Insert(ctx context.Context, tx payment.Tx) (bool, error) {
	n, err := r.queries.InsertPaymentTx(ctx, r.db, sqlc.InsertPaymentTxParams{
		PaymentTxID: tx.ID,
		UserID:      tx.UserID,
		Amount:      tx.Amount,
		Status:      tx.Status.String(),
		DecidedAt:   pgconv.TimeToPgtype(tx.DecidedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert payment tx", err)
	}
	return n == 1, nil
}
