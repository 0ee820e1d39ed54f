package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Events struct {
	ID           int64
	Title        string
	Status       string
	SalesOpenAt  pgtype.Timestamptz
	SalesCloseAt pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Seats struct {
	ID       int64
	EventID  int64
	ZoneCode string
	SeatNo   string
	Price    int64
	Status   string
}

type HoldGroups struct {
	ID        uuid.UUID
	UserID    int64
	EventID   int64
	ExpiresAt pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

type HoldGroupSeats struct {
	EventID     int64
	SeatID      int64
	HoldGroupID uuid.UUID
	ExpiresAt   pgtype.Timestamptz
}

type HoldIdempotencies struct {
	ID             int64
	UserID         int64
	EventID        int64
	IdempotencyKey string
	SeatIdsKey     string
	ClaimID        uuid.UUID
	ExpiresAt      pgtype.Timestamptz
	HoldGroupID    pgtype.UUID
	SeatCount      pgtype.Int4
	CreatedAt      pgtype.Timestamptz
}

type PaymentTxs struct {
	PaymentTxID string
	UserID      int64
	Amount      int64
	Status      string
	DecidedAt   pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
}

type Bookings struct {
	ID          int64
	EventID     int64
	UserID      int64
	PaymentTxID string
	CreatedAt   pgtype.Timestamptz
}

type BookingItems struct {
	ID        int64
	BookingID int64
	SeatID    int64
	Price     int64
}

type ConfirmIdempotencies struct {
	ID          int64
	PaymentTxID string
	UserID      int64
	ConfirmKey  string
	EventID     int64
	HoldGroupID uuid.UUID
	BookingID   int64
	CreatedAt   pgtype.Timestamptz
}

type NotificationJobs struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	Attempts  int32
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
