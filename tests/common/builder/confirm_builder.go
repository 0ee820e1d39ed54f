//go:build unit || e2e

package builder

import (
	reqdto "seat-hold-ticketing/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ConfirmBuilder struct {
	HoldToken   uuid.UUID
	PaymentTxID string
	ConfirmKey  string
	Amount      int64
}

func NewConfirmBuilder() *ConfirmBuilder {
	return &ConfirmBuilder{
		HoldToken:   uuid.New(),
		PaymentTxID: "P-" + uuid.NewString()[:8],
		ConfirmKey:  "confirm-" + uuid.NewString()[:8],
		Amount:      1000,
	}
}

func (b *ConfirmBuilder) WithHoldToken(token uuid.UUID) *ConfirmBuilder {
	b.HoldToken = token
	return b
}

func (b *ConfirmBuilder) WithPaymentTxID(id string) *ConfirmBuilder {
	b.PaymentTxID = id
	return b
}

func (b *ConfirmBuilder) WithConfirmKey(key string) *ConfirmBuilder {
	b.ConfirmKey = key
	return b
}

func (b *ConfirmBuilder) WithAmount(amount int64) *ConfirmBuilder {
	b.Amount = amount
	return b
}

func (b *ConfirmBuilder) BuildRequestDTO() reqdto.ConfirmRequest {
	return reqdto.ConfirmRequest{
		HoldGroupID:           b.HoldToken,
		PaymentTxID:           b.PaymentTxID,
		ConfirmIdempotencyKey: b.ConfirmKey,
		Amount:                b.Amount,
	}
}

// BuildPaymentDTO is the approved gateway decision paying for this confirm.
func (b *ConfirmBuilder) BuildPaymentDTO(userID int64) reqdto.DecidePaymentRequest {
	return reqdto.DecidePaymentRequest{
		PaymentTxID: b.PaymentTxID,
		UserID:      userID,
		Amount:      b.Amount,
		Status:      "APPROVED",
	}
}
