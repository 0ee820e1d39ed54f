//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/usecase/queries"
	queriesmock "seat-hold-ticketing/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	view := &queries.BookingView{
		ID:            41,
		EventID:       7,
		EventTitle:    "Summer Live",
		UserID:        1,
		PaymentTxID:   "P-1",
		PaymentStatus: "APPROVED",
		TotalAmount:   1000,
		Seats: []queries.BookingSeatView{
			{SeatID: 12, ZoneCode: "A", SeatNo: "12", Price: 400},
			{SeatID: 35, ZoneCode: "A", SeatNo: "35", Price: 600},
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		viewerID  int64
		isAdmin   bool
		repoView  *queries.BookingView
		repoErr   error
		wantView  bool
		wantErrIs error
	}{
		{name: "Normal case: owner sees the booking", viewerID: 1, repoView: view, wantView: true},
		{name: "Normal case: admin sees any booking", viewerID: 99, isAdmin: true, repoView: view, wantView: true},
		{name: "Error case: other user gets not found", viewerID: 2, repoView: view, wantErrIs: errs.ErrBookingNotFound},
		{name: "Error case: missing booking", viewerID: 1, repoErr: infra.RepositoryError{Kind: infra.KindNotFound}, wantErrIs: errs.ErrBookingNotFound},
		{name: "Error case: storage failure is passed through", viewerID: 1, repoErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := queriesmock.NewMockBookingViewRepo(ctrl)
			repo.EXPECT().FindByID(ctx, int64(41)).Return(tt.repoView, tt.repoErr)

			got, err := queries.NewBookingQueries(repo).GetByID(ctx, 41, tt.viewerID, tt.isAdmin)

			if tt.wantView {
				require.NoError(t, err)
				assert.Equal(t, view, got)
				return
			}
			require.Error(t, err)
			assert.Nil(t, got)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			} else {
				assert.ErrorIs(t, err, tt.repoErr)
			}
		})
	}
}
