package repository

import (
	"context"
	"time"

	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/pgconv"
	"seat-hold-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
)

type SeatWriteQueries interface {
	CountAvailableSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.CountAvailableSeatsParams) (int64, error)
	SellHeldSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.SellHeldSeatsParams) ([]sqlc.SellHeldSeatsRow, error)
}

type SeatRepository struct {
	queries SeatWriteQueries
	db      sqlc.DBTX
}

func NewSeatRepository(queries SeatWriteQueries, db sqlc.DBTX) *SeatRepository {
	return &SeatRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SeatRepository) CountAvailable(ctx context.Context, eventID int64, seatIDs []int64) (int, error) {
	count, err := r.queries.CountAvailableSeats(ctx, r.db, sqlc.CountAvailableSeatsParams{
		EventID: eventID,
		SeatIds: seatIDs,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count available seats", err)
	}
	return int(count), nil
}

func (r *SeatRepository) SellHeld(ctx context.Context, eventID int64, seatIDs []int64, groupID uuid.UUID, userID int64, now time.Time) ([]shared.SoldSeat, error) {
	rows, err := r.queries.SellHeldSeats(ctx, r.db, sqlc.SellHeldSeatsParams{
		EventID:     eventID,
		SeatIds:     seatIDs,
		HoldGroupID: groupID,
		UserID:      userID,
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sell held seats", err)
	}

	sold := make([]shared.SoldSeat, len(rows))
	for i, row := range rows {
		sold[i] = shared.SoldSeat{SeatID: row.ID, Price: row.Price}
	}
	return sold, nil
}
