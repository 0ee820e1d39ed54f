package queries

import (
	"context"

	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/pkg/errs"
)

const (
	AvailabilityAvailable = "AVAILABLE"
	AvailabilityHeld      = "HELD"
	AvailabilitySold      = "SOLD"
)

// SeatView is one seat of the event seat map. A seat whose hold expired but
// was not swept yet still reports HELD: it cannot be taken until the sweep.
type SeatView struct {
	ID           int64  `json:"id"`
	ZoneCode     string `json:"zone_code"`
	SeatNo       string `json:"seat_no"`
	Price        int64  `json:"price"`
	Availability string `json:"availability"`
}

type EventQueries interface {
	ListSeats(ctx context.Context, eventID int64) ([]SeatView, error)
}

type EventSeatViewRepo interface {
	EventExists(ctx context.Context, eventID int64) error
	ListSeats(ctx context.Context, eventID int64) ([]SeatView, error)
}

type eventQueriesImpl struct {
	repo EventSeatViewRepo
}

func NewEventQueries(repo EventSeatViewRepo) EventQueries {
	return &eventQueriesImpl{repo: repo}
}

func (q *eventQueriesImpl) ListSeats(ctx context.Context, eventID int64) ([]SeatView, error) {
	if err := q.repo.EventExists(ctx, eventID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEventNotFound
		}
		return nil, err
	}
	return q.repo.ListSeats(ctx, eventID)
}
