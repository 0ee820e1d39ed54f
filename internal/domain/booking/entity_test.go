//go:build unit

package booking_test

import (
	"testing"
	"time"

	"seat-hold-ticketing/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConfirmRecord_SameDecision(t *testing.T) {
	group := uuid.New()
	req := booking.ConfirmRequest{UserID: 1, EventID: 2, HoldGroupID: group, PaymentTxID: "P1", ConfirmKey: "c1", Amount: 1000}
	rec := booking.NewConfirmRecord(req, 10, time.Now())

	tests := []struct {
		name   string
		mutate func(*booking.ConfirmRequest)
		want   bool
	}{
		{name: "identical", mutate: func(*booking.ConfirmRequest) {}, want: true},
		{name: "amount is not part of the decision", mutate: func(r *booking.ConfirmRequest) { r.Amount = 1 }, want: true},
		{name: "different user", mutate: func(r *booking.ConfirmRequest) { r.UserID = 9 }, want: false},
		{name: "different event", mutate: func(r *booking.ConfirmRequest) { r.EventID = 9 }, want: false},
		{name: "different hold group", mutate: func(r *booking.ConfirmRequest) { r.HoldGroupID = uuid.New() }, want: false},
		{name: "different payment", mutate: func(r *booking.ConfirmRequest) { r.PaymentTxID = "P2" }, want: false},
		{name: "different confirm key", mutate: func(r *booking.ConfirmRequest) { r.ConfirmKey = "c2" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := req
			tt.mutate(&r)
			assert.Equal(t, tt.want, rec.SameDecision(r))
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(0), booking.Total(nil))
	assert.Equal(t, int64(1000), booking.Total([]booking.Item{{SeatID: 1, Price: 400}, {SeatID: 2, Price: 600}}))
}
