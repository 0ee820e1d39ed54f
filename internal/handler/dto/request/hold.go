package request

import (
	"seat-hold-ticketing/internal/usecase/commands"

	"github.com/google/uuid"
)

// HoldRequest leaves seat-set rules (non-empty, positive ids, quota) to the
// use case so they surface with their own error codes.
type HoldRequest struct {
	SeatIDs []int64 `json:"seatIds"`
}

func (r HoldRequest) ToCommand(userID, eventID int64, idempotencyKey string) commands.HoldRequest {
	return commands.HoldRequest{
		UserID:         userID,
		EventID:        eventID,
		SeatIDs:        r.SeatIDs,
		IdempotencyKey: idempotencyKey,
	}
}

type ConfirmRequest struct {
	HoldGroupID           uuid.UUID `json:"holdGroupId" binding:"required"`
	PaymentTxID           string    `json:"paymentTxId" binding:"required,max=64"`
	ConfirmIdempotencyKey string    `json:"confirmIdempotencyKey" binding:"required,max=128"`
	Amount                int64     `json:"amount" binding:"gte=0"`
}

func (r ConfirmRequest) ToCommand(userID, eventID int64) commands.ConfirmRequest {
	return commands.ConfirmRequest{
		UserID:      userID,
		EventID:     eventID,
		HoldToken:   r.HoldGroupID,
		PaymentTxID: r.PaymentTxID,
		ConfirmKey:  r.ConfirmIdempotencyKey,
		Amount:      r.Amount,
	}
}
