//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"seat-hold-ticketing/internal/domain/booking"
	"seat-hold-ticketing/internal/domain/event"
	"seat-hold-ticketing/internal/domain/payment"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/usecase/commands"
	"seat-hold-ticketing/internal/usecase/shared"
	"seat-hold-ticketing/tests/common/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func approvedPayment(id string, userID, amount int64) payment.Tx {
	return payment.Tx{ID: id, UserID: userID, Amount: amount, Status: payment.StatusApproved, DecidedAt: baseTime}
}

func confirmReq(token uuid.UUID, paymentTxID, key string, amount int64) commands.ConfirmRequest {
	return commands.ConfirmRequest{
		UserID:      userU,
		EventID:     eventID,
		HoldToken:   token,
		PaymentTxID: paymentTxID,
		ConfirmKey:  key,
		Amount:      amount,
	}
}

type confirmSnapshot struct {
	Holds    int
	Groups   int
	Bookings []booking.Booking
	Items    []booking.Item
	Seat0    memstore.Seat
	Seat1    memstore.Seat
	Jobs     int
}

func (f *fixture) confirmSnapshot() confirmSnapshot {
	s0, _ := f.store.Seat(f.seats[0])
	s1, _ := f.store.Seat(f.seats[1])
	return confirmSnapshot{
		Holds:    len(f.store.HoldSeats()),
		Groups:   len(f.store.Groups()),
		Bookings: f.store.Bookings(),
		Items:    f.store.BookingItems(),
		Seat0:    s0,
		Seat1:    s1,
		Jobs:     len(f.store.Jobs()),
	}
}

func TestConfirm_Scenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	token := f.holdSeats(t, userU, "h1", f.seats[0], f.seats[1]).HoldToken
	f.store.AddPayment(approvedPayment("P", userU, 1000))
	f.clock.Add(5 * time.Second)

	res, err := f.confirm.Confirm(ctx, confirmReq(token, "P", "c1", 1000))
	require.NoError(t, err)

	assert.False(t, res.Replayed)
	assert.Positive(t, res.BookingID)
	assert.Equal(t, eventID, res.EventID)
	assert.Equal(t, userU, res.UserID)
	assert.Equal(t, "P", res.PaymentTxID)
	assert.Equal(t, payment.StatusApproved, res.PaymentStatus)
	assert.Equal(t, int64(1000), res.TotalAmount)
	wantItems := []booking.Item{
		{BookingID: res.BookingID, SeatID: f.seats[0], Price: 400},
		{BookingID: res.BookingID, SeatID: f.seats[1], Price: 600},
	}
	if diff := cmp.Diff(wantItems, res.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	for _, id := range f.seats[:2] {
		seat, ok := f.store.Seat(id)
		require.True(t, ok)
		assert.Equal(t, memstore.SeatSold, seat.Status)
	}
	assert.Empty(t, f.store.HoldSeats())
	assert.Empty(t, f.store.Groups())
	require.Len(t, f.store.Bookings(), 1)
	require.Len(t, f.store.ConfirmRecords(), 1)

	t.Run("Normal case: booking.confirmed job is queued with the booking payload", func(t *testing.T) {
		jobs := f.store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, shared.TopicBookingConfirmed, jobs[0].Topic)
		assert.Equal(t, shared.NotificationKindBroker, jobs[0].Kind)
		assert.Equal(t, memstore.JobQueued, jobs[0].Status)

		var payload shared.BookingConfirmed
		require.NoError(t, json.Unmarshal(jobs[0].Payload, &payload))
		want := shared.BookingConfirmed{
			BookingID:   res.BookingID,
			EventID:     eventID,
			UserID:      userU,
			PaymentTxID: "P",
			SeatIDs:     []int64{f.seats[0], f.seats[1]},
			TotalAmount: 1000,
			ConfirmedAt: baseTime.Add(5 * time.Second),
		}
		if diff := cmp.Diff(want, payload); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Normal case: identical retry replays the booking without new rows", func(t *testing.T) {
		before := f.confirmSnapshot()
		f.clock.Add(time.Minute)

		again, err := f.confirm.Confirm(ctx, confirmReq(token, "P", "c1", 1000))
		require.NoError(t, err)

		assert.True(t, again.Replayed)
		assert.Equal(t, res.BookingID, again.BookingID)
		assert.Equal(t, res.TotalAmount, again.TotalAmount)
		if diff := cmp.Diff(res.Items, again.Items); diff != "" {
			t.Errorf("replayed items mismatch (-first +replay):\n%s", diff)
		}
		if diff := cmp.Diff(before, f.confirmSnapshot()); diff != "" {
			t.Errorf("replay mutated state (-before +after):\n%s", diff)
		}
	})

	t.Run("Error case: same confirm key with another payment conflicts", func(t *testing.T) {
		f.store.AddPayment(approvedPayment("P2", userU, 1000))
		_, err := f.confirm.Confirm(ctx, confirmReq(token, "P2", "c1", 1000))
		require.ErrorIs(t, err, errs.ErrConfirmIdempotencyConflict)
	})

	t.Run("Error case: same payment with another confirm key conflicts", func(t *testing.T) {
		_, err := f.confirm.Confirm(ctx, confirmReq(token, "P", "c2", 1000))
		require.ErrorIs(t, err, errs.ErrConfirmIdempotencyConflict)
	})

	t.Run("Error case: same payment with another hold token conflicts", func(t *testing.T) {
		_, err := f.confirm.Confirm(ctx, confirmReq(uuid.New(), "P", "c1", 1000))
		require.ErrorIs(t, err, errs.ErrConfirmIdempotencyConflict)
	})

	require.Len(t, f.store.Bookings(), 1)
}

func TestConfirm_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		payment *payment.Tx
		req     func(token uuid.UUID) commands.ConfirmRequest
		errIs   error
	}{
		{
			name:  "payment transaction unknown",
			req:   func(tok uuid.UUID) commands.ConfirmRequest { return confirmReq(tok, "missing", "c1", 1000) },
			errIs: errs.ErrPaymentIdempotencyConflict,
		},
		{
			name:    "payment declined",
			payment: &payment.Tx{ID: "P", UserID: userU, Amount: 1000, Status: payment.StatusDeclined},
			req:     func(tok uuid.UUID) commands.ConfirmRequest { return confirmReq(tok, "P", "c1", 1000) },
			errIs:   errs.ErrPaymentDeclined,
		},
		{
			name:    "payment timed out",
			payment: &payment.Tx{ID: "P", UserID: userU, Amount: 1000, Status: payment.StatusTimeout},
			req:     func(tok uuid.UUID) commands.ConfirmRequest { return confirmReq(tok, "P", "c1", 1000) },
			errIs:   errs.ErrPaymentTimeout,
		},
		{
			name:    "claimed amount differs from payment",
			payment: &payment.Tx{ID: "P", UserID: userU, Amount: 1000, Status: payment.StatusApproved},
			req:     func(tok uuid.UUID) commands.ConfirmRequest { return confirmReq(tok, "P", "c1", 999) },
			errIs:   errs.ErrAmountMismatch,
		},
		{
			name:    "payment belongs to another user",
			payment: &payment.Tx{ID: "P", UserID: userU2, Amount: 1000, Status: payment.StatusApproved},
			req:     func(tok uuid.UUID) commands.ConfirmRequest { return confirmReq(tok, "P", "c1", 1000) },
			errIs:   errs.ErrPaymentIdempotencyConflict,
		},
		{
			name:    "seat prices do not add up to the payment",
			payment: &payment.Tx{ID: "P", UserID: userU, Amount: 900, Status: payment.StatusApproved},
			req:     func(tok uuid.UUID) commands.ConfirmRequest { return confirmReq(tok, "P", "c1", 900) },
			errIs:   errs.ErrAmountMismatch,
		},
		{
			name:    "unknown hold token",
			payment: &payment.Tx{ID: "P", UserID: userU, Amount: 1000, Status: payment.StatusApproved},
			req:     func(uuid.UUID) commands.ConfirmRequest { return confirmReq(uuid.New(), "P", "c1", 1000) },
			errIs:   errs.ErrHoldTokenNotFound,
		},
		{
			name:    "hold token of another user",
			payment: &payment.Tx{ID: "P", UserID: userU2, Amount: 1000, Status: payment.StatusApproved},
			req: func(tok uuid.UUID) commands.ConfirmRequest {
				r := confirmReq(tok, "P", "c1", 1000)
				r.UserID = userU2
				return r
			},
			errIs: errs.ErrHoldTokenNotFound,
		},
		{
			name:  "nil hold token",
			req:   func(uuid.UUID) commands.ConfirmRequest { return confirmReq(uuid.Nil, "P", "c1", 1000) },
			errIs: errs.ErrValidationFailed,
		},
		{
			name:  "blank payment transaction",
			req:   func(tok uuid.UUID) commands.ConfirmRequest { return confirmReq(tok, " ", "c1", 1000) },
			errIs: errs.ErrValidationFailed,
		},
		{
			name:  "blank confirm key",
			req:   func(tok uuid.UUID) commands.ConfirmRequest { return confirmReq(tok, "P", "", 1000) },
			errIs: errs.ErrValidationFailed,
		},
		{
			name:  "negative amount",
			req:   func(tok uuid.UUID) commands.ConfirmRequest { return confirmReq(tok, "P", "c1", -1) },
			errIs: errs.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run("Error case: "+tt.name, func(t *testing.T) {
			f := newFixture(t)
			token := f.holdSeats(t, userU, "h1", f.seats[0], f.seats[1]).HoldToken
			if tt.payment != nil {
				f.store.AddPayment(*tt.payment)
			}
			before := f.confirmSnapshot()

			_, err := f.confirm.Confirm(ctx, tt.req(token))

			require.ErrorIs(t, err, tt.errIs)
			if diff := cmp.Diff(before, f.confirmSnapshot()); diff != "" {
				t.Errorf("rejected confirm mutated state (-before +after):\n%s", diff)
			}
			assert.Empty(t, f.store.ConfirmRecords())
		})
	}
}

func TestConfirm_ExpiredHold(t *testing.T) {
	ctx := context.Background()

	t.Run("Error case: expired but unswept hold is reported as expired", func(t *testing.T) {
		f := newFixture(t)
		token := f.holdSeats(t, userU, "h1", f.seats[0], f.seats[1]).HoldToken
		f.store.AddPayment(approvedPayment("P", userU, 1000))
		f.clock.Add(holdTTL)

		_, err := f.confirm.Confirm(ctx, confirmReq(token, "P", "c1", 1000))

		require.ErrorIs(t, err, errs.ErrHoldExpired)
		s0, _ := f.store.Seat(f.seats[0])
		assert.Equal(t, memstore.SeatAvailable, s0.Status)
		assert.Empty(t, f.store.Bookings())
	})

	t.Run("Error case: swept hold is no longer known", func(t *testing.T) {
		f := newFixture(t)
		token := f.holdSeats(t, userU, "h1", f.seats[0]).HoldToken
		f.store.AddPayment(approvedPayment("P", userU, 400))
		f.clock.Add(holdTTL + time.Second)
		_, err := f.sweep.SweepExpired(ctx)
		require.NoError(t, err)

		_, err = f.confirm.Confirm(ctx, confirmReq(token, "P", "c1", 400))
		require.ErrorIs(t, err, errs.ErrHoldTokenNotFound)
	})

	t.Run("Error case: event closed after the hold", func(t *testing.T) {
		f := newFixture(t)
		token := f.holdSeats(t, userU, "h1", f.seats[0]).HoldToken
		f.store.AddPayment(approvedPayment("P", userU, 400))
		f.store.AddEvent(event.Reconstruct(eventID, "event", event.StatusClosed, baseTime.Add(-time.Hour), baseTime.Add(time.Hour)))

		_, err := f.confirm.Confirm(ctx, confirmReq(token, "P", "c1", 400))
		require.ErrorIs(t, err, errs.ErrEventNotOnSale)
	})
}

func TestConfirm_FailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	token := f.holdSeats(t, userU, "h1", f.seats[0], f.seats[1]).HoldToken
	f.store.AddPayment(approvedPayment("P", userU, 1000))
	before := f.confirmSnapshot()

	boom := errors.New("disk full")
	f.store.FailNext("Notifications.CreateJob", boom)

	_, err := f.confirm.Confirm(ctx, confirmReq(token, "P", "c1", 1000))
	require.ErrorIs(t, err, boom)
	if diff := cmp.Diff(before, f.confirmSnapshot()); diff != "" {
		t.Errorf("failed confirm left partial state (-before +after):\n%s", diff)
	}
	assert.Empty(t, f.store.ConfirmRecords())

	res, err := f.confirm.Confirm(ctx, confirmReq(token, "P", "c1", 1000))
	require.NoError(t, err)
	assert.False(t, res.Replayed)
	assert.Len(t, f.store.Bookings(), 1)
}

func TestConfirm_Concurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("Normal case: identical concurrent confirms share one booking", func(t *testing.T) {
		f := newFixture(t)
		token := f.holdSeats(t, userU, "h1", f.seats[0], f.seats[1]).HoldToken
		f.store.AddPayment(approvedPayment("P", userU, 1000))

		const n = 8
		results := make([]*commands.ConfirmResult, n)
		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				res, err := f.confirm.Confirm(gctx, confirmReq(token, "P", "c1", 1000))
				results[i] = res
				return err
			})
		}
		require.NoError(t, g.Wait())

		fresh := 0
		for _, r := range results {
			require.NotNil(t, r)
			assert.Equal(t, results[0].BookingID, r.BookingID)
			if !r.Replayed {
				fresh++
			}
		}
		assert.Equal(t, 1, fresh)
		assert.Len(t, f.store.Bookings(), 1)
		assert.Len(t, f.store.BookingItems(), 2)
		assert.Len(t, f.store.Jobs(), 1)
	})

	t.Run("Normal case: different payments racing for one hold sell the seats once", func(t *testing.T) {
		f := newFixture(t)
		token := f.holdSeats(t, userU, "h1", f.seats[0], f.seats[1]).HoldToken
		f.store.AddPayment(approvedPayment("P1", userU, 1000))
		f.store.AddPayment(approvedPayment("P2", userU, 1000))

		errsOut := make([]error, 2)
		g, gctx := errgroup.WithContext(ctx)
		for i, p := range []string{"P1", "P2"} {
			g.Go(func() error {
				_, errsOut[i] = f.confirm.Confirm(gctx, confirmReq(token, p, "c-"+p, 1000))
				return nil
			})
		}
		require.NoError(t, g.Wait())

		succeeded := 0
		for _, err := range errsOut {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, errs.ErrHoldTokenNotFound)
		}
		assert.Equal(t, 1, succeeded)
		assert.Len(t, f.store.Bookings(), 1)
		assert.Len(t, f.store.ConfirmRecords(), 1)
	})
}

// TestConfirm_RecordRace covers a competing confirm committing between our
// seat sale and our confirm record insert.
func TestConfirm_RecordRace(t *testing.T) {
	ctx := context.Background()

	decision := func(token uuid.UUID, paymentTxID, key string) booking.ConfirmRequest {
		return booking.ConfirmRequest{
			UserID:      userU,
			EventID:     eventID,
			HoldGroupID: token,
			PaymentTxID: paymentTxID,
			ConfirmKey:  key,
			Amount:      1000,
		}
	}

	t.Run("Normal case: same decision recorded first by another request is replayed", func(t *testing.T) {
		f := newFixture(t)
		token := f.holdSeats(t, userU, "h1", f.seats[0], f.seats[1]).HoldToken
		f.store.AddPayment(approvedPayment("P", userU, 1000))

		var winnerID int64
		f.store.Interleave("ConfirmIdempotency.Insert", func(ctx context.Context, other, self shared.Tx) {
			now := f.clock.Now()
			sold, err := other.Seats().SellHeld(ctx, eventID, f.seats[:2], token, userU, now)
			require.NoError(t, err)
			require.Len(t, sold, 2)

			winnerID, err = other.Bookings().Create(ctx, booking.Booking{EventID: eventID, UserID: userU, PaymentTxID: "P", CreatedAt: now})
			require.NoError(t, err)
			items := make([]booking.Item, 0, len(sold))
			for _, s := range sold {
				items = append(items, booking.Item{BookingID: winnerID, SeatID: s.SeatID, Price: s.Price})
			}
			require.NoError(t, other.Bookings().CreateItems(ctx, items))
			_, err = other.Holds().DeleteGroup(ctx, token, eventID)
			require.NoError(t, err)

			rec := booking.NewConfirmRecord(decision(token, "P", "c1"), winnerID, now)
			ok, err := other.ConfirmIdempotency().Insert(ctx, rec)
			require.NoError(t, err)
			require.True(t, ok)
			// our insert hits the winner's unique key
			ok, err = self.ConfirmIdempotency().Insert(ctx, rec)
			require.NoError(t, err)
			require.True(t, ok)
		})

		res, err := f.confirm.Confirm(ctx, confirmReq(token, "P", "c1", 1000))
		require.NoError(t, err)

		assert.True(t, res.Replayed)
		assert.Equal(t, winnerID, res.BookingID)
		assert.Equal(t, int64(1000), res.TotalAmount)
		assert.Len(t, res.Items, 2)
		assert.Len(t, f.store.Bookings(), 1)
		assert.Len(t, f.store.BookingItems(), 2)
		assert.Len(t, f.store.ConfirmRecords(), 1)
		assert.Empty(t, f.store.Jobs(), "the losing request's job must roll back")
	})

	t.Run("Error case: same confirm key recorded with another payment is a conflict", func(t *testing.T) {
		f := newFixture(t)
		token := f.holdSeats(t, userU, "h1", f.seats[0], f.seats[1]).HoldToken
		f.store.AddPayment(approvedPayment("P", userU, 1000))
		before := f.confirmSnapshot()

		f.store.Interleave("ConfirmIdempotency.Insert", func(ctx context.Context, _, self shared.Tx) {
			rec := booking.NewConfirmRecord(decision(token, "P-other", "c1"), 99, f.clock.Now())
			ok, err := self.ConfirmIdempotency().Insert(ctx, rec)
			require.NoError(t, err)
			require.True(t, ok)
		})

		_, err := f.confirm.Confirm(ctx, confirmReq(token, "P", "c1", 1000))
		require.ErrorIs(t, err, errs.ErrConfirmIdempotencyConflict)
		if diff := cmp.Diff(before, f.confirmSnapshot()); diff != "" {
			t.Errorf("conflicting confirm left partial state (-before +after):\n%s", diff)
		}
	})

	t.Run("Error case: same decision that never commits for the winner is a conflict", func(t *testing.T) {
		f := newFixture(t)
		token := f.holdSeats(t, userU, "h1", f.seats[0], f.seats[1]).HoldToken
		f.store.AddPayment(approvedPayment("P", userU, 1000))
		before := f.confirmSnapshot()

		f.store.Interleave("ConfirmIdempotency.Insert", func(ctx context.Context, _, self shared.Tx) {
			rec := booking.NewConfirmRecord(decision(token, "P", "c1"), 99, f.clock.Now())
			ok, err := self.ConfirmIdempotency().Insert(ctx, rec)
			require.NoError(t, err)
			require.True(t, ok)
		})

		_, err := f.confirm.Confirm(ctx, confirmReq(token, "P", "c1", 1000))
		require.ErrorIs(t, err, errs.ErrConfirmIdempotencyConflict)
		if diff := cmp.Diff(before, f.confirmSnapshot()); diff != "" {
			t.Errorf("rolled back confirm left partial state (-before +after):\n%s", diff)
		}
		assert.Empty(t, f.store.ConfirmRecords())
	})
}
