package repository

import (
	"context"
	"time"

	"seat-hold-ticketing/internal/domain/hold"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HoldWriteQueries interface {
	CreateHoldGroup(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHoldGroupParams) error
	GetHoldGroup(ctx context.Context, db sqlc.DBTX, arg sqlc.GetHoldGroupParams) (sqlc.HoldGroups, error)
	CountActiveHeldSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveHeldSeatsParams) (int64, error)
	LockUserEventHolds(ctx context.Context, db sqlc.DBTX, arg sqlc.LockUserEventHoldsParams) error
	CreateHoldGroupSeat(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHoldGroupSeatParams) error
	ListValidHoldSeatIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListValidHoldSeatIDsParams) ([]int64, error)
	DeleteHoldGroupSeats(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteHoldGroupSeatsParams) (int64, error)
	DeleteHoldGroup(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteExpiredHoldGroupSeats(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
	DeleteExpiredHoldGroups(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type HoldRepository struct {
	queries HoldWriteQueries
	db      sqlc.DBTX
}

func NewHoldRepository(queries HoldWriteQueries, db sqlc.DBTX) *HoldRepository {
	return &HoldRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HoldRepository) CountActiveSeats(ctx context.Context, userID, eventID int64, now time.Time) (int, error) {
	count, err := r.queries.CountActiveHeldSeats(ctx, r.db, sqlc.CountActiveHeldSeatsParams{
		UserID:  userID,
		EventID: eventID,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active held seats", err)
	}
	return int(count), nil
}

func (r *HoldRepository) LockQuota(ctx context.Context, userID, eventID int64) error {
	err := r.queries.LockUserEventHolds(ctx, r.db, sqlc.LockUserEventHoldsParams{
		UserID:  userID,
		EventID: eventID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to lock hold quota", err)
	}
	return nil
}

func (r *HoldRepository) CreateGroup(ctx context.Context, g hold.Group) error {
	err := r.queries.CreateHoldGroup(ctx, r.db, sqlc.CreateHoldGroupParams{
		ID:        g.ID,
		UserID:    g.UserID,
		EventID:   g.EventID,
		ExpiresAt: pgconv.TimeToPgtype(g.ExpiresAt),
		CreatedAt: pgconv.TimeToPgtype(g.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create hold group", err)
	}
	return nil
}

// CreateSeats stops at the first failure. A DUPLICATE_KEY error means another
// group already holds one of the seats.
func (r *HoldRepository) CreateSeats(ctx context.Context, seats []hold.Seat) error {
	for _, s := range seats {
		err := r.queries.CreateHoldGroupSeat(ctx, r.db, sqlc.CreateHoldGroupSeatParams{
			EventID:     s.EventID,
			SeatID:      s.SeatID,
			HoldGroupID: s.GroupID,
			ExpiresAt:   pgconv.TimeToPgtype(s.ExpiresAt),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create hold group seat", err)
		}
	}
	return nil
}

func (r *HoldRepository) FindGroup(ctx context.Context, groupID uuid.UUID, userID, eventID int64) (hold.Group, error) {
	row, err := r.queries.GetHoldGroup(ctx, r.db, sqlc.GetHoldGroupParams{
		ID:      groupID,
		UserID:  userID,
		EventID: eventID,
	})
	if err != nil {
		return hold.Group{}, infra.WrapRepoErr("failed to get hold group", err)
	}
	return hold.Group{
		ID:        row.ID,
		UserID:    row.UserID,
		EventID:   row.EventID,
		ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *HoldRepository) ValidSeatIDs(ctx context.Context, groupID uuid.UUID, eventID int64, now time.Time) ([]int64, error) {
	ids, err := r.queries.ListValidHoldSeatIDs(ctx, r.db, sqlc.ListValidHoldSeatIDsParams{
		HoldGroupID: groupID,
		EventID:     eventID,
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list valid hold seats", err)
	}
	return ids, nil
}

func (r *HoldRepository) DeleteGroup(ctx context.Context, groupID uuid.UUID, eventID int64) (int64, error) {
	seats, err := r.queries.DeleteHoldGroupSeats(ctx, r.db, sqlc.DeleteHoldGroupSeatsParams{
		HoldGroupID: groupID,
		EventID:     eventID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete hold group seats", err)
	}
	if _, err := r.queries.DeleteHoldGroup(ctx, r.db, groupID); err != nil {
		return 0, infra.WrapRepoErr("failed to delete hold group", err)
	}
	return seats, nil
}

func (r *HoldRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, int64, error) {
	ts := pgconv.TimeToPgtype(now)

	seats, err := r.queries.DeleteExpiredHoldGroupSeats(ctx, r.db, ts)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to delete expired hold group seats", err)
	}
	groups, err := r.queries.DeleteExpiredHoldGroups(ctx, r.db, ts)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to delete expired hold groups", err)
	}
	return seats, groups, nil
}
