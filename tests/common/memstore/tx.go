package memstore

import (
	"context"
	"slices"
	"time"

	"seat-hold-ticketing/internal/domain/booking"
	"seat-hold-ticketing/internal/domain/event"
	"seat-hold-ticketing/internal/domain/hold"
	"seat-hold-ticketing/internal/domain/payment"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnly = errs.New("cannot execute write in a read-only transaction")

func notFound(what string) error {
	return infra.RepositoryError{Kind: infra.KindNotFound, Constraint: what}
}

func duplicate(constraint string) error {
	return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: constraint}
}

func foreignKey(constraint string) error {
	return infra.RepositoryError{Kind: infra.KindForeignKeyViolated, Constraint: constraint}
}

type memTx struct {
	store    *Store
	st       *state
	readOnly bool
}

func (t *memTx) write(method string) error {
	if t.readOnly {
		return errReadOnly
	}
	t.store.interleave(context.Background(), t, method)
	return t.store.fault(method)
}

func (t *memTx) read(method string) error {
	t.store.interleave(context.Background(), t, method)
	return t.store.fault(method)
}

func (t *memTx) Events() shared.EventRepository                          { return eventRepo{t} }
func (t *memTx) Seats() shared.SeatRepository                            { return seatRepo{t} }
func (t *memTx) Holds() shared.HoldRepository                            { return holdRepo{t} }
func (t *memTx) HoldIdempotency() shared.HoldIdempotencyRepository       { return holdIdemRepo{t} }
func (t *memTx) Payments() shared.PaymentRepository                      { return paymentRepo{t} }
func (t *memTx) Bookings() shared.BookingRepository                      { return bookingRepo{t} }
func (t *memTx) ConfirmIdempotency() shared.ConfirmIdempotencyRepository { return confirmRepo{t} }
func (t *memTx) Notifications() shared.NotificationRepository            { return notificationRepo{t} }

// -----------------------------------------------------------------------------
// Events / Seats
// -----------------------------------------------------------------------------

type eventRepo struct{ t *memTx }

func (r eventRepo) FindByID(_ context.Context, id int64) (*event.Event, error) {
	if err := r.t.read("Events.FindByID"); err != nil {
		return nil, err
	}
	ev, ok := r.t.st.events[id]
	if !ok {
		return nil, notFound("events")
	}
	return ev, nil
}

type seatRepo struct{ t *memTx }

func (r seatRepo) CountAvailable(_ context.Context, eventID int64, seatIDs []int64) (int, error) {
	if err := r.t.read("Seats.CountAvailable"); err != nil {
		return 0, err
	}
	n := 0
	for _, id := range uniq(seatIDs) {
		s, ok := r.t.st.seats[id]
		if ok && s.EventID == eventID && s.Status == SeatAvailable {
			n++
		}
	}
	return n, nil
}

func (r seatRepo) SellHeld(_ context.Context, eventID int64, seatIDs []int64, groupID uuid.UUID, userID int64, now time.Time) ([]shared.SoldSeat, error) {
	if err := r.t.write("Seats.SellHeld"); err != nil {
		return nil, err
	}
	st := r.t.st
	g, ok := st.groups[groupID]
	if !ok || g.UserID != userID || !g.ExpiresAt.After(now) {
		return nil, nil
	}

	var sold []shared.SoldSeat
	for _, id := range uniq(seatIDs) {
		s, ok := st.seats[id]
		if !ok || s.EventID != eventID || s.Status != SeatAvailable {
			continue
		}
		hs, ok := st.holdSeats[seatKey{eventID, id}]
		if !ok || hs.GroupID != groupID || !hs.ExpiresAt.After(now) {
			continue
		}
		s.Status = SeatSold
		st.seats[id] = s
		sold = append(sold, shared.SoldSeat{SeatID: id, Price: s.Price})
	}
	return sold, nil
}

// -----------------------------------------------------------------------------
// Holds
// -----------------------------------------------------------------------------

type holdRepo struct{ t *memTx }

// LockQuota is a no-op: Within already serializes transactions.
func (r holdRepo) LockQuota(_ context.Context, _, _ int64) error {
	return r.t.read("Holds.LockQuota")
}

func (r holdRepo) CountActiveSeats(_ context.Context, userID, eventID int64, now time.Time) (int, error) {
	if err := r.t.read("Holds.CountActiveSeats"); err != nil {
		return 0, err
	}
	n := 0
	for _, hs := range r.t.st.holdSeats {
		g, ok := r.t.st.groups[hs.GroupID]
		if ok && g.UserID == userID && g.EventID == eventID && g.ExpiresAt.After(now) {
			n++
		}
	}
	return n, nil
}

func (r holdRepo) CreateGroup(_ context.Context, g hold.Group) error {
	if err := r.t.write("Holds.CreateGroup"); err != nil {
		return err
	}
	if _, ok := r.t.st.groups[g.ID]; ok {
		return duplicate("hold_groups_pkey")
	}
	if _, ok := r.t.st.events[g.EventID]; !ok {
		return foreignKey("hold_groups_event_id_fkey")
	}
	r.t.st.groups[g.ID] = g
	return nil
}

func (r holdRepo) CreateSeats(_ context.Context, seats []hold.Seat) error {
	if err := r.t.write("Holds.CreateSeats"); err != nil {
		return err
	}
	for _, hs := range seats {
		if _, ok := r.t.st.seats[hs.SeatID]; !ok {
			return foreignKey("hold_group_seats_seat_id_fkey")
		}
		if _, ok := r.t.st.groups[hs.GroupID]; !ok {
			return foreignKey("hold_group_seats_hold_group_id_fkey")
		}
		k := seatKey{hs.EventID, hs.SeatID}
		if _, ok := r.t.st.holdSeats[k]; ok {
			return duplicate("uk_hold_group_seats_event_seat")
		}
		r.t.st.holdSeats[k] = hs
	}
	return nil
}

func (r holdRepo) FindGroup(_ context.Context, groupID uuid.UUID, userID, eventID int64) (hold.Group, error) {
	if err := r.t.read("Holds.FindGroup"); err != nil {
		return hold.Group{}, err
	}
	g, ok := r.t.st.groups[groupID]
	if !ok || !g.OwnedBy(userID, eventID) {
		return hold.Group{}, notFound("hold_groups")
	}
	return g, nil
}

func (r holdRepo) ValidSeatIDs(_ context.Context, groupID uuid.UUID, eventID int64, now time.Time) ([]int64, error) {
	if err := r.t.read("Holds.ValidSeatIDs"); err != nil {
		return nil, err
	}
	var ids []int64
	for _, hs := range r.t.st.holdSeats {
		if hs.GroupID == groupID && hs.EventID == eventID && hs.ExpiresAt.After(now) {
			ids = append(ids, hs.SeatID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r holdRepo) DeleteGroup(_ context.Context, groupID uuid.UUID, eventID int64) (int64, error) {
	if err := r.t.write("Holds.DeleteGroup"); err != nil {
		return 0, err
	}
	var n int64
	for k, hs := range r.t.st.holdSeats {
		if hs.GroupID == groupID && hs.EventID == eventID {
			delete(r.t.st.holdSeats, k)
			n++
		}
	}
	delete(r.t.st.groups, groupID)
	return n, nil
}

func (r holdRepo) DeleteExpired(_ context.Context, now time.Time) (int64, int64, error) {
	if err := r.t.write("Holds.DeleteExpired"); err != nil {
		return 0, 0, err
	}
	var seats, groups int64
	referenced := map[uuid.UUID]bool{}
	for k, hs := range r.t.st.holdSeats {
		if !hs.ExpiresAt.After(now) {
			delete(r.t.st.holdSeats, k)
			seats++
			continue
		}
		referenced[hs.GroupID] = true
	}
	for id, g := range r.t.st.groups {
		if !g.ExpiresAt.After(now) && !referenced[id] {
			delete(r.t.st.groups, id)
			groups++
		}
	}
	return seats, groups, nil
}

// -----------------------------------------------------------------------------
// Hold idempotency
// -----------------------------------------------------------------------------

type holdIdemRepo struct{ t *memTx }

func (r holdIdemRepo) Find(_ context.Context, key hold.IdempotencyKey) (hold.IdempotencyRecord, error) {
	if err := r.t.read("HoldIdempotency.Find"); err != nil {
		return hold.IdempotencyRecord{}, err
	}
	rec, ok := r.t.st.holdIdem[key]
	if !ok {
		return hold.IdempotencyRecord{}, notFound("hold_idempotencies")
	}
	return rec, nil
}

func (r holdIdemRepo) InsertPending(_ context.Context, rec hold.IdempotencyRecord) (bool, error) {
	if err := r.t.write("HoldIdempotency.InsertPending"); err != nil {
		return false, err
	}
	if _, ok := r.t.st.holdIdem[rec.Key]; ok {
		return false, nil
	}
	r.t.st.holdIdem[rec.Key] = rec
	return true, nil
}

func (r holdIdemRepo) pendingOwnedBy(key hold.IdempotencyKey, claimID uuid.UUID) (hold.IdempotencyRecord, hold.Pending, bool) {
	rec, ok := r.t.st.holdIdem[key]
	if !ok {
		return hold.IdempotencyRecord{}, hold.Pending{}, false
	}
	p, ok := rec.Pending()
	if !ok || p.ClaimID != claimID {
		return hold.IdempotencyRecord{}, hold.Pending{}, false
	}
	return rec, p, true
}

func (r holdIdemRepo) DeleteStale(_ context.Context, key hold.IdempotencyKey, claimID uuid.UUID, now time.Time) (bool, error) {
	if err := r.t.write("HoldIdempotency.DeleteStale"); err != nil {
		return false, err
	}
	_, p, ok := r.pendingOwnedBy(key, claimID)
	if !ok || p.ExpiresAt.After(now) {
		return false, nil
	}
	delete(r.t.st.holdIdem, key)
	return true, nil
}

func (r holdIdemRepo) Complete(_ context.Context, key hold.IdempotencyKey, claimID uuid.UUID, result hold.Result) (bool, error) {
	if err := r.t.write("HoldIdempotency.Complete"); err != nil {
		return false, err
	}
	rec, _, ok := r.pendingOwnedBy(key, claimID)
	if !ok {
		return false, nil
	}
	rec.State = hold.Completed{Result: result}
	r.t.st.holdIdem[key] = rec
	return true, nil
}

func (r holdIdemRepo) Release(_ context.Context, key hold.IdempotencyKey, claimID uuid.UUID) (bool, error) {
	if err := r.t.write("HoldIdempotency.Release"); err != nil {
		return false, err
	}
	if _, _, ok := r.pendingOwnedBy(key, claimID); !ok {
		return false, nil
	}
	delete(r.t.st.holdIdem, key)
	return true, nil
}

func (r holdIdemRepo) DeleteExpiredPending(_ context.Context, now time.Time) (int64, error) {
	if err := r.t.write("HoldIdempotency.DeleteExpiredPending"); err != nil {
		return 0, err
	}
	var n int64
	for k, rec := range r.t.st.holdIdem {
		if p, ok := rec.Pending(); ok && !p.ExpiresAt.After(now) {
			delete(r.t.st.holdIdem, k)
			n++
		}
	}
	return n, nil
}

// -----------------------------------------------------------------------------
// Payments / Bookings / Confirm idempotency
// -----------------------------------------------------------------------------

type paymentRepo struct{ t *memTx }

func (r paymentRepo) FindByID(_ context.Context, id string) (payment.Tx, error) {
	if err := r.t.read("Payments.FindByID"); err != nil {
		return payment.Tx{}, err
	}
	tx, ok := r.t.st.payments[id]
	if !ok {
		return payment.Tx{}, notFound("payment_txs")
	}
	return tx, nil
}

func (r paymentRepo) Insert(_ context.Context, tx payment.Tx) (bool, error) {
	if err := r.t.write("Payments.Insert"); err != nil {
		return false, err
	}
	if _, ok := r.t.st.payments[tx.ID]; ok {
		return false, nil
	}
	r.t.st.payments[tx.ID] = tx
	return true, nil
}

type bookingRepo struct{ t *memTx }

func (r bookingRepo) Create(_ context.Context, b booking.Booking) (int64, error) {
	if err := r.t.write("Bookings.Create"); err != nil {
		return 0, err
	}
	for _, existing := range r.t.st.bookings {
		if existing.PaymentTxID == b.PaymentTxID {
			return 0, duplicate("uk_bookings_payment_tx")
		}
	}
	b.ID = r.t.st.nextBooking
	r.t.st.nextBooking++
	r.t.st.bookings[b.ID] = b
	return b.ID, nil
}

func (r bookingRepo) CreateItems(_ context.Context, items []booking.Item) error {
	if err := r.t.write("Bookings.CreateItems"); err != nil {
		return err
	}
	for _, it := range items {
		if _, ok := r.t.st.items[it.SeatID]; ok {
			return duplicate("uk_booking_items_seat")
		}
		r.t.st.items[it.SeatID] = it
	}
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id int64) (booking.Booking, error) {
	if err := r.t.read("Bookings.FindByID"); err != nil {
		return booking.Booking{}, err
	}
	b, ok := r.t.st.bookings[id]
	if !ok {
		return booking.Booking{}, notFound("bookings")
	}
	return b, nil
}

func (r bookingRepo) Items(_ context.Context, bookingID int64) ([]booking.Item, error) {
	if err := r.t.read("Bookings.Items"); err != nil {
		return nil, err
	}
	var out []booking.Item
	for _, it := range r.t.st.items {
		if it.BookingID == bookingID {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, func(a, b booking.Item) int { return cmpInt64(a.SeatID, b.SeatID) })
	return out, nil
}

type confirmRepo struct{ t *memTx }

func (r confirmRepo) FindByPaymentTx(_ context.Context, paymentTxID string) (booking.ConfirmRecord, error) {
	if err := r.t.read("ConfirmIdempotency.FindByPaymentTx"); err != nil {
		return booking.ConfirmRecord{}, err
	}
	rec, ok := r.t.st.confirmByPay[paymentTxID]
	if !ok {
		return booking.ConfirmRecord{}, notFound("confirm_idempotencies")
	}
	return rec, nil
}

func (r confirmRepo) FindByUserKey(_ context.Context, userID int64, confirmKey string) (booking.ConfirmRecord, error) {
	if err := r.t.read("ConfirmIdempotency.FindByUserKey"); err != nil {
		return booking.ConfirmRecord{}, err
	}
	rec, ok := r.t.st.confirmByKey[userKey{userID, confirmKey}]
	if !ok {
		return booking.ConfirmRecord{}, notFound("confirm_idempotencies")
	}
	return rec, nil
}

func (r confirmRepo) Insert(_ context.Context, rec booking.ConfirmRecord) (bool, error) {
	if err := r.t.write("ConfirmIdempotency.Insert"); err != nil {
		return false, err
	}
	uk := userKey{rec.UserID, rec.ConfirmKey}
	if _, ok := r.t.st.confirmByPay[rec.PaymentTxID]; ok {
		return false, nil
	}
	if _, ok := r.t.st.confirmByKey[uk]; ok {
		return false, nil
	}
	r.t.st.confirmByPay[rec.PaymentTxID] = rec
	r.t.st.confirmByKey[uk] = rec
	return true, nil
}

// -----------------------------------------------------------------------------
// Notifications
// -----------------------------------------------------------------------------

type notificationRepo struct{ t *memTx }

func (r notificationRepo) CreateJob(_ context.Context, job shared.NotificationJob) error {
	if err := r.t.write("Notifications.CreateJob"); err != nil {
		return err
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if _, ok := r.t.st.jobs[job.ID]; ok {
		return duplicate("notification_jobs_pkey")
	}
	r.t.st.jobs[job.ID] = Job{NotificationJob: job, Status: JobQueued}
	return nil
}

func (r notificationRepo) ClaimDue(_ context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	if err := r.t.write("Notifications.ClaimDue"); err != nil {
		return nil, err
	}
	var due []shared.NotificationJob
	for _, j := range r.t.st.jobs {
		if j.Status == JobQueued && !j.RunAt.After(now) {
			due = append(due, j.NotificationJob)
		}
	}
	slices.SortFunc(due, func(a, b shared.NotificationJob) int { return a.RunAt.Compare(b.RunAt) })
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r notificationRepo) update(id uuid.UUID, status, lastErr string, runAt time.Time) {
	j, ok := r.t.st.jobs[id]
	if !ok {
		return
	}
	j.Status = status
	j.LastError = lastErr
	j.Attempts++
	j.RunAt = runAt
	r.t.st.jobs[id] = j
}

func (r notificationRepo) MarkSent(_ context.Context, id uuid.UUID, now time.Time) error {
	if err := r.t.write("Notifications.MarkSent"); err != nil {
		return err
	}
	r.update(id, JobSent, "", now)
	return nil
}

func (r notificationRepo) Reschedule(_ context.Context, id uuid.UUID, runAt time.Time, lastErr string, giveUp bool) error {
	if err := r.t.write("Notifications.Reschedule"); err != nil {
		return err
	}
	status := JobQueued
	if giveUp {
		status = JobFailed
	}
	r.update(id, status, lastErr, runAt)
	return nil
}

func uniq(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
