package queries

import (
	"context"
	"time"

	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/pkg/errs"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            int64             `json:"id"`
	EventID       int64             `json:"event_id"`
	EventTitle    string            `json:"event_title"`
	UserID        int64             `json:"user_id"`
	PaymentTxID   string            `json:"payment_tx_id"`
	PaymentStatus string            `json:"payment_status"`
	TotalAmount   int64             `json:"total_amount"`
	Seats         []BookingSeatView `json:"seats"`
	CreatedAt     time.Time         `json:"created_at"`
}

type BookingSeatView struct {
	SeatID   int64  `json:"seat_id"`
	ZoneCode string `json:"zone_code"`
	SeatNo   string `json:"seat_no"`
	Price    int64  `json:"price"`
}

type BookingQueries interface {
	// GetByID returns the booking if viewer owns it or is an admin. Anyone else
	// gets BOOKING_NOT_FOUND so booking ids of other users are not disclosed.
	GetByID(ctx context.Context, id, viewerID int64, isAdmin bool) (*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, viewerID int64, isAdmin bool) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	if !isAdmin && view.UserID != viewerID {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}
