package readrepo

import (
	"context"

	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/usecase/queries"
)

type EventSeatViewQueries interface {
	GetEvent(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Events, error)
	ListEventSeats(ctx context.Context, db sqlc.DBTX, eventID int64) ([]sqlc.ListEventSeatsRow, error)
}

type EventSeatViewRepository struct {
	queries EventSeatViewQueries
	db      sqlc.DBTX
}

func NewEventSeatViewRepository(queries EventSeatViewQueries, db sqlc.DBTX) *EventSeatViewRepository {
	return &EventSeatViewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventSeatViewRepository) EventExists(ctx context.Context, eventID int64) error {
	if _, err := r.queries.GetEvent(ctx, r.db, eventID); err != nil {
		return infra.WrapRepoErr("failed to get event", err)
	}
	return nil
}

func (r *EventSeatViewRepository) ListSeats(ctx context.Context, eventID int64) ([]queries.SeatView, error) {
	rows, err := r.queries.ListEventSeats(ctx, r.db, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event seats", err)
	}

	result := make([]queries.SeatView, len(rows))
	for i, row := range rows {
		result[i] = queries.SeatView{
			ID:           row.ID,
			ZoneCode:     row.ZoneCode,
			SeatNo:       row.SeatNo,
			Price:        row.Price,
			Availability: row.Availability,
		}
	}
	return result, nil
}
