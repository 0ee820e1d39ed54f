//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"seat-hold-ticketing/internal/domain/hold"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/repository"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/pgconv"
	repositorymock "seat-hold-ticketing/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestHoldRepository_CreateSeats(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	seats := []hold.Seat{
		{EventID: 10, SeatID: 1, GroupID: groupID, ExpiresAt: now.Add(90 * time.Second)},
		{EventID: 10, SeatID: 2, GroupID: groupID, ExpiresAt: now.Add(90 * time.Second)},
	}

	t.Run("Normal case: one insert per seat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockHoldWriteQueries(ctrl)
		gomock.InOrder(
			q.EXPECT().CreateHoldGroupSeat(gomock.Any(), gomock.Any(), sqlc.CreateHoldGroupSeatParams{
				EventID: 10, SeatID: 1, HoldGroupID: groupID, ExpiresAt: pgconv.TimeToPgtype(now.Add(90 * time.Second)),
			}).Return(nil),
			q.EXPECT().CreateHoldGroupSeat(gomock.Any(), gomock.Any(), sqlc.CreateHoldGroupSeatParams{
				EventID: 10, SeatID: 2, HoldGroupID: groupID, ExpiresAt: pgconv.TimeToPgtype(now.Add(90 * time.Second)),
			}).Return(nil),
		)

		err := repository.NewHoldRepository(q, nil).CreateSeats(ctx, seats)
		require.NoError(t, err)
	})

	t.Run("Error case: a taken seat surfaces as DUPLICATE_KEY and stops", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockHoldWriteQueries(ctrl)
		q.EXPECT().CreateHoldGroupSeat(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uniqueViolation("hold_group_seats_pkey")).Times(1)

		err := repository.NewHoldRepository(q, nil).CreateSeats(ctx, seats)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestHoldRepository_FindGroup(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()

	t.Run("Normal case: row is mapped to the domain group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockHoldWriteQueries(ctrl)
		q.EXPECT().GetHoldGroup(gomock.Any(), gomock.Any(), sqlc.GetHoldGroupParams{ID: groupID, UserID: 1, EventID: 10}).
			Return(sqlc.HoldGroups{
				ID:        groupID,
				UserID:    1,
				EventID:   10,
				ExpiresAt: pgconv.TimeToPgtype(now.Add(90 * time.Second)),
				CreatedAt: pgconv.TimeToPgtype(now),
			}, nil)

		g, err := repository.NewHoldRepository(q, nil).FindGroup(ctx, groupID, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, hold.Group{ID: groupID, UserID: 1, EventID: 10, ExpiresAt: now.Add(90 * time.Second), CreatedAt: now}, g)
	})

	t.Run("Error case: missing group is NOT_FOUND", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockHoldWriteQueries(ctrl)
		q.EXPECT().GetHoldGroup(gomock.Any(), gomock.Any(), gomock.Any()).Return(sqlc.HoldGroups{}, pgx.ErrNoRows)

		_, err := repository.NewHoldRepository(q, nil).FindGroup(ctx, groupID, 1, 10)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestHoldRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("Normal case: seats are deleted before groups", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockHoldWriteQueries(ctrl)
		gomock.InOrder(
			q.EXPECT().DeleteExpiredHoldGroupSeats(gomock.Any(), gomock.Any(), pgconv.TimeToPgtype(now)).Return(int64(3), nil),
			q.EXPECT().DeleteExpiredHoldGroups(gomock.Any(), gomock.Any(), pgconv.TimeToPgtype(now)).Return(int64(2), nil),
		)

		seats, groups, err := repository.NewHoldRepository(q, nil).DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), seats)
		assert.Equal(t, int64(2), groups)
	})

	t.Run("Error case: seat delete failure skips the group delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockHoldWriteQueries(ctrl)
		q.EXPECT().DeleteExpiredHoldGroupSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), assert.AnError)

		_, _, err := repository.NewHoldRepository(q, nil).DeleteExpired(ctx, now)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestHoldRepository_LockQuota(t *testing.T) {
	ctx := context.Background()

	t.Run("Normal case: lock is keyed by user and event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockHoldWriteQueries(ctrl)
		q.EXPECT().LockUserEventHolds(gomock.Any(), gomock.Any(), sqlc.LockUserEventHoldsParams{UserID: 1, EventID: 10}).Return(nil).Times(1)

		require.NoError(t, repository.NewHoldRepository(q, nil).LockQuota(ctx, 1, 10))
	})

	t.Run("Error case: lock failure is DB_FAILURE", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockHoldWriteQueries(ctrl)
		q.EXPECT().LockUserEventHolds(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := repository.NewHoldRepository(q, nil).LockQuota(ctx, 1, 10)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
