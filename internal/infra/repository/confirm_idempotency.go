package repository

import (
	"context"

	"seat-hold-ticketing/internal/domain/booking"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/pgconv"
)

type ConfirmIdempotencyWriteQueries interface {
	GetConfirmIdempotencyByPaymentTx(ctx context.Context, db sqlc.DBTX, paymentTxID string) (sqlc.ConfirmIdempotencies, error)
	GetConfirmIdempotencyByUserKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetConfirmIdempotencyByUserKeyParams) (sqlc.ConfirmIdempotencies, error)
	InsertConfirmIdempotency(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertConfirmIdempotencyParams) (int64, error)
}

type ConfirmIdempotencyRepository struct {
	queries ConfirmIdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewConfirmIdempotencyRepository(queries ConfirmIdempotencyWriteQueries, db sqlc.DBTX) *ConfirmIdempotencyRepository {
	return &ConfirmIdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ConfirmIdempotencyRepository) FindByPaymentTx(ctx context.Context, paymentTxID string) (booking.ConfirmRecord, error) {
	row, err := r.queries.GetConfirmIdempotencyByPaymentTx(ctx, r.db, paymentTxID)
	if err != nil {
		return booking.ConfirmRecord{}, infra.WrapRepoErr("failed to get confirm idempotency by payment tx", err)
	}
	return toConfirmRecord(row), nil
}

func (r *ConfirmIdempotencyRepository) FindByUserKey(ctx context.Context, userID int64, confirmKey string) (booking.ConfirmRecord, error) {
	row, err := r.queries.GetConfirmIdempotencyByUserKey(ctx, r.db, sqlc.GetConfirmIdempotencyByUserKeyParams{
		UserID:     userID,
		ConfirmKey: confirmKey,
	})
	if err != nil {
		return booking.ConfirmRecord{}, infra.WrapRepoErr("failed to get confirm idempotency by user key", err)
	}
	return toConfirmRecord(row), nil
}

func (r *ConfirmIdempotencyRepository) Insert(ctx context.Context, rec booking.ConfirmRecord) (bool, error) {
	n, err := r.queries.InsertConfirmIdempotency(ctx, r.db, sqlc.InsertConfirmIdempotencyParams{
		PaymentTxID: rec.PaymentTxID,
		UserID:      rec.UserID,
		ConfirmKey:  rec.ConfirmKey,
		EventID:     rec.EventID,
		HoldGroupID: rec.HoldGroupID,
		BookingID:   rec.BookingID,
		CreatedAt:   pgconv.TimeToPgtype(rec.CreatedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert confirm idempotency", err)
	}
	return n == 1, nil
}

func toConfirmRecord(row sqlc.ConfirmIdempotencies) booking.ConfirmRecord {
	return booking.ConfirmRecord{
		PaymentTxID: row.PaymentTxID,
		UserID:      row.UserID,
		ConfirmKey:  row.ConfirmKey,
		EventID:     row.EventID,
		HoldGroupID: row.HoldGroupID,
		BookingID:   row.BookingID,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
