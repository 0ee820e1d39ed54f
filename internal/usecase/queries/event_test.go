//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/usecase/queries"
	queriesmock "seat-hold-ticketing/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventQueries_ListSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("Normal case: seat map of an existing event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockEventSeatViewRepo(ctrl)
		seats := []queries.SeatView{
			{ID: 1, ZoneCode: "A", SeatNo: "1", Price: 400, Availability: queries.AvailabilitySold},
			{ID: 2, ZoneCode: "A", SeatNo: "2", Price: 600, Availability: queries.AvailabilityHeld},
			{ID: 3, ZoneCode: "B", SeatNo: "1", Price: 500, Availability: queries.AvailabilityAvailable},
		}
		gomock.InOrder(
			repo.EXPECT().EventExists(ctx, int64(7)).Return(nil),
			repo.EXPECT().ListSeats(ctx, int64(7)).Return(seats, nil),
		)

		got, err := queries.NewEventQueries(repo).ListSeats(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, seats, got)
	})

	t.Run("Error case: unknown event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockEventSeatViewRepo(ctrl)
		repo.EXPECT().EventExists(ctx, int64(404)).Return(infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := queries.NewEventQueries(repo).ListSeats(ctx, 404)

		require.ErrorIs(t, err, errs.ErrEventNotFound)
	})

	t.Run("Error case: storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockEventSeatViewRepo(ctrl)
		boom := errors.New("timeout")
		repo.EXPECT().EventExists(ctx, int64(7)).Return(boom)

		_, err := queries.NewEventQueries(repo).ListSeats(ctx, 7)

		require.ErrorIs(t, err, boom)
	})
}
