//go:build unit

package repository_test

import (
	"context"
	"testing"

	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/repository"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/pgconv"
	"seat-hold-ticketing/internal/usecase/shared"
	repositorymock "seat-hold-ticketing/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeatRepository_SellHeld(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	params := sqlc.SellHeldSeatsParams{
		EventID:     10,
		SeatIds:     []int64{3, 4},
		HoldGroupID: groupID,
		UserID:      1,
		Now:         pgconv.TimeToPgtype(now),
	}

	t.Run("Normal case: sold rows carry their price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockSeatWriteQueries(ctrl)
		q.EXPECT().SellHeldSeats(gomock.Any(), gomock.Any(), params).
			Return([]sqlc.SellHeldSeatsRow{{ID: 3, Price: 500}, {ID: 4, Price: 500}}, nil)

		sold, err := repository.NewSeatRepository(q, nil).SellHeld(ctx, 10, []int64{3, 4}, groupID, 1, now)
		require.NoError(t, err)
		assert.Equal(t, []shared.SoldSeat{{SeatID: 3, Price: 500}, {SeatID: 4, Price: 500}}, sold)
	})

	t.Run("Normal case: nothing sold is an empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockSeatWriteQueries(ctrl)
		q.EXPECT().SellHeldSeats(gomock.Any(), gomock.Any(), params).Return(nil, nil)

		sold, err := repository.NewSeatRepository(q, nil).SellHeld(ctx, 10, []int64{3, 4}, groupID, 1, now)
		require.NoError(t, err)
		assert.Empty(t, sold)
	})

	t.Run("Error case: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockSeatWriteQueries(ctrl)
		q.EXPECT().SellHeldSeats(gomock.Any(), gomock.Any(), params).Return(nil, assert.AnError)

		_, err := repository.NewSeatRepository(q, nil).SellHeld(ctx, 10, []int64{3, 4}, groupID, 1, now)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSeatRepository_CountAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockSeatWriteQueries(ctrl)
	q.EXPECT().CountAvailableSeats(gomock.Any(), gomock.Any(), sqlc.CountAvailableSeatsParams{EventID: 10, SeatIds: []int64{1, 2}}).
		Return(int64(1), nil)

	n, err := repository.NewSeatRepository(q, nil).CountAvailable(context.Background(), 10, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
