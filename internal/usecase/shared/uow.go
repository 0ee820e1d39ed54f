package shared

import (
	"context"
	"time"

	"seat-hold-ticketing/internal/domain/booking"
	"seat-hold-ticketing/internal/domain/event"
	"seat-hold-ticketing/internal/domain/hold"
	"seat-hold-ticketing/internal/domain/payment"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations. All repository writes made
	// through tx commit together or not at all.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Events() EventRepository
	Seats() SeatRepository
	Holds() HoldRepository
	HoldIdempotency() HoldIdempotencyRepository
	Payments() PaymentRepository
	Bookings() BookingRepository
	ConfirmIdempotency() ConfirmIdempotencyRepository
	Notifications() NotificationRepository
}

// Lookups return an infra.RepositoryError of kind NOT_FOUND when nothing
// matches; inserts that hit a unique constraint return kind DUPLICATE_KEY
// unless documented to report the collision as a false result instead.

type EventRepository interface {
	FindByID(ctx context.Context, id int64) (*event.Event, error)
}

type SeatRepository interface {
	CountAvailable(ctx context.Context, eventID int64, seatIDs []int64) (int, error)
	// SellHeld moves seats AVAILABLE -> SOLD only where a live hold row of
	// groupID owned by userID still exists at now. Returns the sold seats.
	SellHeld(ctx context.Context, eventID int64, seatIDs []int64, groupID uuid.UUID, userID int64, now time.Time) ([]SoldSeat, error)
}

type HoldRepository interface {
	// LockQuota serializes holds by one user for one event until the
	// transaction ends. Take it before CountActiveSeats.
	LockQuota(ctx context.Context, userID, eventID int64) error
	CountActiveSeats(ctx context.Context, userID, eventID int64, now time.Time) (int, error)
	CreateGroup(ctx context.Context, g hold.Group) error
	CreateSeats(ctx context.Context, seats []hold.Seat) error
	// FindGroup returns the group if userID owns it for eventID, expired or not.
	FindGroup(ctx context.Context, groupID uuid.UUID, userID, eventID int64) (hold.Group, error)
	ValidSeatIDs(ctx context.Context, groupID uuid.UUID, eventID int64, now time.Time) ([]int64, error)
	// DeleteGroup removes the group and all of its seat rows.
	DeleteGroup(ctx context.Context, groupID uuid.UUID, eventID int64) (int64, error)
	// DeleteExpired removes seat rows, then groups, whose expiry is <= now.
	DeleteExpired(ctx context.Context, now time.Time) (seats int64, groups int64, err error)
}

type HoldIdempotencyRepository interface {
	Find(ctx context.Context, key hold.IdempotencyKey) (hold.IdempotencyRecord, error)
	// InsertPending reports false when a row for the key already exists.
	InsertPending(ctx context.Context, rec hold.IdempotencyRecord) (bool, error)
	// DeleteStale removes the pending row owned by claimID if it expired at or
	// before now. Reports false when the row changed under us.
	DeleteStale(ctx context.Context, key hold.IdempotencyKey, claimID uuid.UUID, now time.Time) (bool, error)
	// Complete stores the result on the pending row owned by claimID.
	Complete(ctx context.Context, key hold.IdempotencyKey, claimID uuid.UUID, result hold.Result) (bool, error)
	// Release deletes the pending row owned by claimID.
	Release(ctx context.Context, key hold.IdempotencyKey, claimID uuid.UUID) (bool, error)
	DeleteExpiredPending(ctx context.Context, now time.Time) (int64, error)
}

type PaymentRepository interface {
	FindByID(ctx context.Context, id string) (payment.Tx, error)
	// Insert reports false when the payment tx id is already recorded.
	Insert(ctx context.Context, tx payment.Tx) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b booking.Booking) (int64, error)
	CreateItems(ctx context.Context, items []booking.Item) error
	FindByID(ctx context.Context, id int64) (booking.Booking, error)
	Items(ctx context.Context, bookingID int64) ([]booking.Item, error)
}

type ConfirmIdempotencyRepository interface {
	FindByPaymentTx(ctx context.Context, paymentTxID string) (booking.ConfirmRecord, error)
	FindByUserKey(ctx context.Context, userID int64, confirmKey string) (booking.ConfirmRecord, error)
	// Insert reports false when either unique key is already taken.
	Insert(ctx context.Context, rec booking.ConfirmRecord) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, job NotificationJob) error
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error
	Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, lastErr string, giveUp bool) error
}
