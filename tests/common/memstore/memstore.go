// Package memstore is an in-memory shared.UnitOfWork for use-case tests.
//
// Transactions are serialized by one mutex and work on a copy of the state
// that replaces the committed state only when fn succeeds. Unique constraints
// of the SQL schema are enforced, and violations are reported with the same
// infra.RepositoryError kinds the pgx repositories return.
package memstore

import (
	"context"
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"seat-hold-ticketing/internal/domain/booking"
	"seat-hold-ticketing/internal/domain/event"
	"seat-hold-ticketing/internal/domain/hold"
	"seat-hold-ticketing/internal/domain/payment"
	"seat-hold-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	SeatAvailable = "AVAILABLE"
	SeatSold      = "SOLD"

	JobQueued = "queued"
	JobSent   = "sent"
	JobFailed = "failed"
)

type Seat struct {
	ID       int64
	EventID  int64
	ZoneCode string
	SeatNo   string
	Price    int64
	Status   string
}

type Job struct {
	shared.NotificationJob
	Status    string
	LastError string
}

type seatKey struct {
	eventID int64
	seatID  int64
}

type userKey struct {
	userID int64
	key    string
}

type state struct {
	events       map[int64]*event.Event
	seats        map[int64]Seat
	groups       map[uuid.UUID]hold.Group
	holdSeats    map[seatKey]hold.Seat
	holdIdem     map[hold.IdempotencyKey]hold.IdempotencyRecord
	payments     map[string]payment.Tx
	bookings     map[int64]booking.Booking
	items        map[int64]booking.Item
	confirmByPay map[string]booking.ConfirmRecord
	confirmByKey map[userKey]booking.ConfirmRecord
	jobs         map[uuid.UUID]Job
	nextBooking  int64
}

func newState() *state {
	return &state{
		events:       map[int64]*event.Event{},
		seats:        map[int64]Seat{},
		groups:       map[uuid.UUID]hold.Group{},
		holdSeats:    map[seatKey]hold.Seat{},
		holdIdem:     map[hold.IdempotencyKey]hold.IdempotencyRecord{},
		payments:     map[string]payment.Tx{},
		bookings:     map[int64]booking.Booking{},
		items:        map[int64]booking.Item{},
		confirmByPay: map[string]booking.ConfirmRecord{},
		confirmByKey: map[userKey]booking.ConfirmRecord{},
		jobs:         map[uuid.UUID]Job{},
		nextBooking:  1,
	}
}

// Values stored in the maps are never mutated in place, so a shallow copy of
// each map isolates a transaction.
func (s *state) clone() *state {
	return &state{
		events:       maps.Clone(s.events),
		seats:        maps.Clone(s.seats),
		groups:       maps.Clone(s.groups),
		holdSeats:    maps.Clone(s.holdSeats),
		holdIdem:     maps.Clone(s.holdIdem),
		payments:     maps.Clone(s.payments),
		bookings:     maps.Clone(s.bookings),
		items:        maps.Clone(s.items),
		confirmByPay: maps.Clone(s.confirmByPay),
		confirmByKey: maps.Clone(s.confirmByKey),
		jobs:         maps.Clone(s.jobs),
		nextBooking:  s.nextBooking,
	}
}

type Store struct {
	mu       sync.Mutex
	st       *state
	nextSeat int64

	faultsMu sync.Mutex
	faults   map[string]error
	hooks    map[string]InterleaveFunc

	commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		st:       newState(),
		nextSeat: 1,
		faults:   map[string]error{},
		hooks:    map[string]InterleaveFunc{},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.st.clone()
	if err := fn(ctx, &memTx{store: s, st: work}); err != nil {
		return err
	}
	s.st = work
	s.commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &memTx{store: s, st: s.st.clone(), readOnly: true})
}

// FailNext makes the next call of the named repository method (for example
// "Holds.CreateSeats") return err.
func (s *Store) FailNext(method string, err error) {
	s.faultsMu.Lock()
	defer s.faultsMu.Unlock()
	s.faults[method] = err
}

// InterleaveFunc plays a transaction that commits while the caller's
// transaction is in flight. other writes to the committed state; self is the
// caller's own view, for rows the caller's next statement would observe
// (a unique index seeing an uncommitted competitor, for instance). If the
// caller commits, its view replaces the committed state, so rows it must keep
// belong in self as well.
type InterleaveFunc func(ctx context.Context, other, self shared.Tx)

// Interleave runs fn right before the next call of the named repository
// method. fn may register itself again to fire on every attempt of a retry
// loop.
func (s *Store) Interleave(method string, fn InterleaveFunc) {
	s.faultsMu.Lock()
	defer s.faultsMu.Unlock()
	s.hooks[method] = fn
}

func (s *Store) interleave(ctx context.Context, t *memTx, method string) {
	s.faultsMu.Lock()
	fn, ok := s.hooks[method]
	delete(s.hooks, method)
	s.faultsMu.Unlock()
	if !ok {
		return
	}
	// Within holds s.mu for the caller, so the committed state can be
	// written directly.
	fn(ctx, &memTx{store: s, st: s.st}, t)
}

func (s *Store) fault(method string) error {
	s.faultsMu.Lock()
	defer s.faultsMu.Unlock()
	err, ok := s.faults[method]
	if !ok {
		return nil
	}
	delete(s.faults, method)
	return err
}

// -----------------------------------------------------------------------------
// Seeding
// -----------------------------------------------------------------------------

func (s *Store) AddEvent(ev *event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.events[ev.ID()] = ev
}

// OpenEvent seeds an OPEN event whose sales window contains now.
func (s *Store) OpenEvent(id int64, now time.Time) *event.Event {
	ev := event.Reconstruct(id, "event", event.StatusOpen, now.Add(-time.Hour), now.Add(24*time.Hour))
	s.AddEvent(ev)
	return ev
}

// AddSeats seeds one AVAILABLE seat per price and returns their ids.
func (s *Store) AddSeats(eventID int64, prices ...int64) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(prices))
	for _, p := range prices {
		id := s.nextSeat
		s.nextSeat++
		s.st.seats[id] = Seat{
			ID:       id,
			EventID:  eventID,
			ZoneCode: "A",
			SeatNo:   seatNo(id),
			Price:    p,
			Status:   SeatAvailable,
		}
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) AddPayment(tx payment.Tx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.payments[tx.ID] = tx
}

// -----------------------------------------------------------------------------
// Inspection of committed state
// -----------------------------------------------------------------------------

func (s *Store) Seat(id int64) (Seat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seat, ok := s.st.seats[id]
	return seat, ok
}

func (s *Store) HoldSeats() []hold.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Collect(maps.Values(s.st.holdSeats))
	slices.SortFunc(out, func(a, b hold.Seat) int { return cmpInt64(a.SeatID, b.SeatID) })
	return out
}

func (s *Store) Groups() []hold.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.st.groups))
}

func (s *Store) HoldIdempotency(key hold.IdempotencyKey) (hold.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.st.holdIdem[key]
	return rec, ok
}

func (s *Store) Bookings() []booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Collect(maps.Values(s.st.bookings))
	slices.SortFunc(out, func(a, b booking.Booking) int { return cmpInt64(a.ID, b.ID) })
	return out
}

func (s *Store) BookingItems() []booking.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Collect(maps.Values(s.st.items))
	slices.SortFunc(out, func(a, b booking.Item) int { return cmpInt64(a.SeatID, b.SeatID) })
	return out
}

func (s *Store) ConfirmRecords() []booking.ConfirmRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.st.confirmByPay))
}

func (s *Store) Payment(id string) (payment.Tx, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.st.payments[id]
	return tx, ok
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Collect(maps.Values(s.st.jobs))
	slices.SortFunc(out, func(a, b Job) int { return a.RunAt.Compare(b.RunAt) })
	return out
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func seatNo(id int64) string {
	return strconv.FormatInt(id, 10)
}
