package shared

import (
	"time"

	"github.com/google/uuid"
)

type SoldSeat struct {
	SeatID int64
	Price  int64
}

const (
	NotificationKindBroker = "broker"
	TopicBookingConfirmed  = "booking.confirmed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
	RunAt    time.Time
}

// BookingConfirmed is the payload of a booking.confirmed notification job.
type BookingConfirmed struct {
	BookingID   int64     `json:"bookingId"`
	EventID     int64     `json:"eventId"`
	UserID      int64     `json:"userId"`
	PaymentTxID string    `json:"paymentTxId"`
	SeatIDs     []int64   `json:"seatIds"`
	TotalAmount int64     `json:"totalAmount"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}
