package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID          int64
	EventID     int64
	UserID      int64
	PaymentTxID string
	CreatedAt   time.Time
}

// Item is one sold seat. A seat appears in at most one item, ever.
type Item struct {
	BookingID int64
	SeatID    int64
	Price     int64
}

func Total(items []Item) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Price
	}
	return sum
}

// ConfirmRequest is the decision a confirm call asks for.
type ConfirmRequest struct {
	UserID      int64
	EventID     int64
	HoldGroupID uuid.UUID
	PaymentTxID string
	ConfirmKey  string
	Amount      int64
}

// ConfirmRecord is written once per successful confirmation, unique by
// payment tx and by (user, confirm key).
type ConfirmRecord struct {
	PaymentTxID string
	UserID      int64
	ConfirmKey  string
	EventID     int64
	HoldGroupID uuid.UUID
	BookingID   int64
	CreatedAt   time.Time
}

func NewConfirmRecord(req ConfirmRequest, bookingID int64, now time.Time) ConfirmRecord {
	return ConfirmRecord{
		PaymentTxID: req.PaymentTxID,
		UserID:      req.UserID,
		ConfirmKey:  req.ConfirmKey,
		EventID:     req.EventID,
		HoldGroupID: req.HoldGroupID,
		BookingID:   bookingID,
		CreatedAt:   now,
	}
}

// SameDecision requires all five identifying fields to match. The amount is
// not part of the decision; it is checked against the payment instead.
func (r ConfirmRecord) SameDecision(req ConfirmRequest) bool {
	return r.UserID == req.UserID &&
		r.EventID == req.EventID &&
		r.HoldGroupID == req.HoldGroupID &&
		r.PaymentTxID == req.PaymentTxID &&
		r.ConfirmKey == req.ConfirmKey
}
