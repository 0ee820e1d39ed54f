package repository

import (
	"context"

	"seat-hold-ticketing/internal/domain/booking"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error)
	CreateBookingItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingItemParams) error
	GetBooking(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Bookings, error)
	ListBookingItems(ctx context.Context, db sqlc.DBTX, bookingID int64) ([]sqlc.BookingItems, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b booking.Booking) (int64, error) {
	id, err := r.queries.CreateBooking(ctx, r.db, sqlc.CreateBookingParams{
		EventID:     b.EventID,
		UserID:      b.UserID,
		PaymentTxID: b.PaymentTxID,
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) CreateItems(ctx context.Context, items []booking.Item) error {
	for _, it := range items {
		err := r.queries.CreateBookingItem(ctx, r.db, sqlc.CreateBookingItemParams{
			BookingID: it.BookingID,
			SeatID:    it.SeatID,
			Price:     it.Price,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create booking item", err)
		}
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		return booking.Booking{}, infra.WrapRepoErr("failed to get booking", err)
	}
	return booking.Booking{
		ID:          row.ID,
		EventID:     row.EventID,
		UserID:      row.UserID,
		PaymentTxID: row.PaymentTxID,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *BookingRepository) Items(ctx context.Context, bookingID int64) ([]booking.Item, error) {
	rows, err := r.queries.ListBookingItems(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking items", err)
	}
	items := make([]booking.Item, len(rows))
	for i, row := range rows {
		items[i] = booking.Item{BookingID: row.BookingID, SeatID: row.SeatID, Price: row.Price}
	}
	return items, nil
}
