//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"seat-hold-ticketing/internal/domain/payment"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentDecide(t *testing.T) {
	ctx := context.Background()
	approved := commands.DecidePaymentRequest{PaymentTxID: "P-1", UserID: userU, Amount: 1000, Status: payment.StatusApproved}

	t.Run("Normal case: first decision is recorded", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.payment.Decide(ctx, approved)
		require.NoError(t, err)

		assert.False(t, res.Replayed)
		want := payment.Tx{ID: "P-1", UserID: userU, Amount: 1000, Status: payment.StatusApproved, DecidedAt: baseTime}
		assert.Equal(t, want, res.Tx)
		stored, ok := f.store.Payment("P-1")
		require.True(t, ok)
		assert.Equal(t, want, stored)
	})

	t.Run("Normal case: same decision replays the first one", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.payment.Decide(ctx, approved)
		require.NoError(t, err)
		f.clock.Add(time.Hour)

		res, err := f.payment.Decide(ctx, approved)
		require.NoError(t, err)

		assert.True(t, res.Replayed)
		assert.Equal(t, baseTime, res.Tx.DecidedAt)
	})

	t.Run("Error case: different decision for the same tx is a conflict", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.payment.Decide(ctx, approved)
		require.NoError(t, err)

		declined := approved
		declined.Status = payment.StatusDeclined
		_, err = f.payment.Decide(ctx, declined)
		require.ErrorIs(t, err, errs.ErrPaymentIdempotencyConflict)

		stored, _ := f.store.Payment("P-1")
		assert.Equal(t, payment.StatusApproved, stored.Status)
	})

	t.Run("Error case: invalid requests", func(t *testing.T) {
		f := newFixture(t)
		tests := []struct {
			name string
			mut  func(r *commands.DecidePaymentRequest)
		}{
			{"blank id", func(r *commands.DecidePaymentRequest) { r.PaymentTxID = " " }},
			{"no user", func(r *commands.DecidePaymentRequest) { r.UserID = 0 }},
			{"negative amount", func(r *commands.DecidePaymentRequest) { r.Amount = -5 }},
			{"unknown status", func(r *commands.DecidePaymentRequest) { r.Status = "PENDING" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := approved
				tt.mut(&req)
				_, err := f.payment.Decide(ctx, req)
				require.ErrorIs(t, err, errs.ErrValidationFailed)
			})
		}
		_, ok := f.store.Payment("P-1")
		assert.False(t, ok)
	})

	t.Run("Normal case: recorded decision can pay for a hold", func(t *testing.T) {
		f := newFixture(t)
		token := f.holdSeats(t, userU, "h", f.seats[2], f.seats[3]).HoldToken
		_, err := f.payment.Decide(ctx, approved)
		require.NoError(t, err)

		res, err := f.confirm.Confirm(ctx, confirmReq(token, "P-1", "c", 1000))
		require.NoError(t, err)
		assert.Equal(t, int64(1000), res.TotalAmount)
	})
}
