package readrepo

import (
	"context"

	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/pgconv"
	"seat-hold-ticketing/internal/usecase/queries"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingViewRow, error)
	ListBookingSeatViews(ctx context.Context, db sqlc.DBTX, bookingID int64) ([]sqlc.ListBookingSeatViewsRow, error)
}

type BookingViewRepository struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingViewRepository(queries BookingViewQueries, db sqlc.DBTX) *BookingViewRepository {
	return &BookingViewRepository{
		queries: queries,
		db:      db,
	}
}

// Bookings and their items are immutable once committed, so the two reads do
// not need a shared snapshot.
func (r *BookingViewRepository) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	seats, err := r.queries.ListBookingSeatViews(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking seats", err)
	}

	view := &queries.BookingView{
		ID:            row.ID,
		EventID:       row.EventID,
		EventTitle:    row.EventTitle,
		UserID:        row.UserID,
		PaymentTxID:   row.PaymentTxID,
		PaymentStatus: row.PaymentStatus,
		TotalAmount:   row.Amount,
		Seats:         make([]queries.BookingSeatView, len(seats)),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
	for i, s := range seats {
		view.Seats[i] = queries.BookingSeatView{
			SeatID:   s.SeatID,
			ZoneCode: s.ZoneCode,
			SeatNo:   s.SeatNo,
			Price:    s.Price,
		}
	}
	return view, nil
}
