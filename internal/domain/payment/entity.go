package payment

import (
	"strings"
	"time"

	"seat-hold-ticketing/internal/pkg/errs"
)

var ErrInvalidStatus = errs.New("invalid payment status")

type Status string

const (
	StatusApproved Status = "APPROVED"
	StatusDeclined Status = "DECLINED"
	StatusTimeout  Status = "TIMEOUT"
)

func (s Status) String() string {
	return string(s)
}

func NewStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusApproved, StatusDeclined, StatusTimeout:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Tx is an immutable payment decision recorded before confirmation runs.
type Tx struct {
	ID        string
	UserID    int64
	Amount    int64
	Status    Status
	DecidedAt time.Time
}

// Authorize checks that the decision lets userID buy for claimedAmount.
func (t Tx) Authorize(userID, claimedAmount int64) error {
	if t.UserID != userID {
		return errs.ErrPaymentIdempotencyConflict
	}
	switch t.Status {
	case StatusDeclined:
		return errs.ErrPaymentDeclined
	case StatusTimeout:
		return errs.ErrPaymentTimeout
	}
	if t.Amount != claimedAmount {
		return errs.ErrAmountMismatch
	}
	return nil
}

// SameDecision reports whether other records the same decision as t. Used to
// make decision recording idempotent.
func (t Tx) SameDecision(other Tx) bool {
	return t.ID == other.ID &&
		t.UserID == other.UserID &&
		t.Amount == other.Amount &&
		t.Status == other.Status
}
