//go:build unit

package payment_test

import (
	"testing"

	"seat-hold-ticketing/internal/domain/payment"
	"seat-hold-ticketing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTx_Authorize(t *testing.T) {
	tests := []struct {
		name   string
		status payment.Status
		user   int64
		amount int64
		errIs  error
	}{
		{name: "approved with matching amount", status: payment.StatusApproved, user: 1, amount: 1000},
		{name: "declined", status: payment.StatusDeclined, user: 1, amount: 1000, errIs: errs.ErrPaymentDeclined},
		{name: "timeout", status: payment.StatusTimeout, user: 1, amount: 1000, errIs: errs.ErrPaymentTimeout},
		{name: "amount mismatch", status: payment.StatusApproved, user: 1, amount: 999, errIs: errs.ErrAmountMismatch},
		{name: "declined wins over amount mismatch", status: payment.StatusDeclined, user: 1, amount: 1, errIs: errs.ErrPaymentDeclined},
		{name: "other user's payment", status: payment.StatusApproved, user: 2, amount: 1000, errIs: errs.ErrPaymentIdempotencyConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := payment.Tx{ID: "P1", UserID: 1, Amount: 1000, Status: tt.status}
			err := tx.Authorize(tt.user, tt.amount)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewStatus(t *testing.T) {
	s, err := payment.NewStatus(" approved ")
	require.NoError(t, err)
	assert.Equal(t, payment.StatusApproved, s)

	_, err = payment.NewStatus("PENDING")
	require.ErrorIs(t, err, payment.ErrInvalidStatus)
}

func TestTx_SameDecision(t *testing.T) {
	base := payment.Tx{ID: "P1", UserID: 1, Amount: 1000, Status: payment.StatusApproved}

	assert.True(t, base.SameDecision(base))

	other := base
	other.Status = payment.StatusDeclined
	assert.False(t, base.SameDecision(other))

	other = base
	other.Amount = 1
	assert.False(t, base.SameDecision(other))
}
