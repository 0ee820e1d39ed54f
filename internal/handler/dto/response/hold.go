package response

import (
	"time"

	"seat-hold-ticketing/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HoldResponse struct {
	EventID   int64     `json:"eventId"`
	HoldToken uuid.UUID `json:"holdToken"`
	SeatCount int       `json:"seatCount"`
}

func FromHoldResult(r *commands.HoldResult) (*HoldResponse, error) {
	var res HoldResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	return &res, nil
}

type ConfirmItemResponse struct {
	SeatID int64 `json:"seatId"`
	Price  int64 `json:"price"`
}

type ConfirmResponse struct {
	BookingID     int64                 `json:"bookingId"`
	EventID       int64                 `json:"eventId"`
	UserID        int64                 `json:"userId"`
	PaymentStatus string                `json:"paymentStatus"`
	PaymentTxID   string                `json:"paymentTxId"`
	TotalAmount   int64                 `json:"totalAmount"`
	Items         []ConfirmItemResponse `json:"items"`
}

func FromConfirmResult(r *commands.ConfirmResult) (*ConfirmResponse, error) {
	var res ConfirmResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []ConfirmItemResponse{}
	}
	res.PaymentStatus = r.PaymentStatus.String()
	return &res, nil
}

type SweepResponse struct {
	ReclaimedCount int64     `json:"reclaimedCount"`
	GroupsDeleted  int64     `json:"groupsDeleted"`
	PendingKeys    int64     `json:"pendingKeysDeleted"`
	SweptAt        time.Time `json:"sweptAt"`
}

func FromSweepResult(r *commands.SweepResult) (*SweepResponse, error) {
	var res SweepResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	return &res, nil
}

type PaymentResponse struct {
	PaymentTxID string    `json:"paymentTxId"`
	UserID      int64     `json:"userId"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	DecidedAt   time.Time `json:"decidedAt"`
}

func FromPaymentResult(r *commands.DecidePaymentResult) *PaymentResponse {
	return &PaymentResponse{
		PaymentTxID: r.Tx.ID,
		UserID:      r.Tx.UserID,
		Amount:      r.Tx.Amount,
		Status:      r.Tx.Status.String(),
		DecidedAt:   r.Tx.DecidedAt,
	}
}
