package request

import (
	"seat-hold-ticketing/internal/domain/payment"
	"seat-hold-ticketing/internal/usecase/commands"
)

type DecidePaymentRequest struct {
	PaymentTxID string `json:"paymentTxId" binding:"required,max=64"`
	UserID      int64  `json:"userId" binding:"required,gt=0"`
	Amount      int64  `json:"amount" binding:"gte=0"`
	Status      string `json:"status" binding:"required,oneof=APPROVED DECLINED TIMEOUT"`
}

func (r DecidePaymentRequest) ToCommand() commands.DecidePaymentRequest {
	return commands.DecidePaymentRequest{
		PaymentTxID: r.PaymentTxID,
		UserID:      r.UserID,
		Amount:      r.Amount,
		Status:      payment.Status(r.Status),
	}
}
