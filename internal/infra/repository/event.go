package repository

import (
	"context"

	"seat-hold-ticketing/internal/domain/event"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/pgconv"
)

type EventReadQueries interface {
	GetEvent(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Events, error)
}

type EventRepository struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventReadQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*event.Event, error) {
	row, err := r.queries.GetEvent(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get event", err)
	}

	return event.Reconstruct(
		row.ID,
		row.Title,
		event.Status(row.Status),
		pgconv.TimeFromPgtype(row.SalesOpenAt),
		pgconv.TimeFromPgtype(row.SalesCloseAt),
	), nil
}
