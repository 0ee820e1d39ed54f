package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"seat-hold-ticketing/internal/domain/booking"
	"seat-hold-ticketing/internal/domain/payment"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/pkg/clock"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
)

// errConfirmRace is returned from inside the transaction when another request
// recorded the same decision first. The transaction rolls back and the winner
// is replayed.
var errConfirmRace = errs.New("confirm decision recorded concurrently")

type ConfirmRequest struct {
	UserID      int64
	EventID     int64
	HoldToken   uuid.UUID
	PaymentTxID string
	ConfirmKey  string
	Amount      int64
}

type ConfirmResult struct {
	BookingID     int64
	EventID       int64
	UserID        int64
	PaymentTxID   string
	PaymentStatus payment.Status
	TotalAmount   int64
	Items         []booking.Item
	Replayed      bool
}

type ConfirmCommands interface {
	Confirm(ctx context.Context, req ConfirmRequest) (*ConfirmResult, error)
}

type confirmUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewConfirmUseCase(uow shared.UnitOfWork, clk clock.Clock) ConfirmCommands {
	return &confirmUseCaseImpl{uow: uow, clock: clk}
}

func (uc *confirmUseCaseImpl) Confirm(ctx context.Context, req ConfirmRequest) (*ConfirmResult, error) {
	decision, err := req.toDecision()
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	var result *ConfirmResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		if err := ensureOnSale(ctx, tx, decision.EventID, now); err != nil {
			return err
		}

		existing, found, err := findConfirmRecord(ctx, tx, decision)
		if err != nil {
			return err
		}
		if found {
			if !existing.SameDecision(decision) {
				return errs.ErrConfirmIdempotencyConflict
			}
			r, err := replayConfirm(ctx, tx, existing)
			if err != nil {
				return err
			}
			result = r
			return nil
		}

		r, err := uc.execute(ctx, tx, decision, now)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		if !lostToConcurrentConfirm(err) {
			return nil, err
		}
		replayed, ok, replayErr := uc.replayRecorded(ctx, decision)
		if replayErr != nil {
			return nil, replayErr
		}
		if !ok {
			if errs.Is(err, errConfirmRace) {
				return nil, errs.ErrConfirmIdempotencyConflict
			}
			return nil, err
		}
		return replayed, nil
	}

	if !result.Replayed {
		slog.InfoContext(ctx, "booking confirmed",
			"booking_id", result.BookingID,
			"event_id", result.EventID,
			"user_id", result.UserID,
			"seat_count", len(result.Items))
	}
	return result, nil
}

func (uc *confirmUseCaseImpl) execute(
	ctx context.Context,
	tx shared.Tx,
	req booking.ConfirmRequest,
	now time.Time,
) (*ConfirmResult, error) {
	pay, err := tx.Payments().FindByID(ctx, req.PaymentTxID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPaymentIdempotencyConflict
		}
		return nil, err
	}
	if err := pay.Authorize(req.UserID, req.Amount); err != nil {
		return nil, err
	}

	group, err := tx.Holds().FindGroup(ctx, req.HoldGroupID, req.UserID, req.EventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrHoldTokenNotFound
		}
		return nil, err
	}
	if !group.ActiveAt(now) {
		return nil, errs.ErrHoldExpired
	}

	seatIDs, err := tx.Holds().ValidSeatIDs(ctx, group.ID, req.EventID, now)
	if err != nil {
		return nil, err
	}
	if len(seatIDs) == 0 {
		return nil, errs.ErrHoldExpired
	}

	sold, err := tx.Seats().SellHeld(ctx, req.EventID, seatIDs, group.ID, req.UserID, now)
	if err != nil {
		return nil, err
	}
	if len(sold) != len(seatIDs) {
		return nil, errs.ErrHoldExpired
	}

	items := make([]booking.Item, 0, len(sold))
	for _, s := range sold {
		items = append(items, booking.Item{SeatID: s.SeatID, Price: s.Price})
	}
	if booking.Total(items) != pay.Amount {
		return nil, errs.ErrAmountMismatch
	}

	bookingID, err := tx.Bookings().Create(ctx, booking.Booking{
		EventID:     req.EventID,
		UserID:      req.UserID,
		PaymentTxID: req.PaymentTxID,
		CreatedAt:   now,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrBookingAlreadySaved
		}
		return nil, err
	}

	for i := range items {
		items[i].BookingID = bookingID
	}
	if err := tx.Bookings().CreateItems(ctx, items); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrBookingItemAlreadySaved
		}
		return nil, err
	}

	if _, err := tx.Holds().DeleteGroup(ctx, group.ID, req.EventID); err != nil {
		return nil, err
	}

	if err := enqueueBookingConfirmed(ctx, tx, bookingID, req, items, pay.Amount, now); err != nil {
		return nil, err
	}

	recorded, err := tx.ConfirmIdempotency().Insert(ctx, booking.NewConfirmRecord(req, bookingID, now))
	if err != nil {
		return nil, err
	}
	if !recorded {
		existing, found, err := findConfirmRecord(ctx, tx, req)
		if err != nil {
			return nil, err
		}
		if found && existing.SameDecision(req) {
			return nil, errConfirmRace
		}
		return nil, errs.ErrConfirmIdempotencyConflict
	}

	return &ConfirmResult{
		BookingID:     bookingID,
		EventID:       req.EventID,
		UserID:        req.UserID,
		PaymentTxID:   pay.ID,
		PaymentStatus: pay.Status,
		TotalAmount:   pay.Amount,
		Items:         items,
	}, nil
}

// replayRecorded looks for a decision committed by a concurrent request after
// ours failed, and replays it when it is the same decision.
func (uc *confirmUseCaseImpl) replayRecorded(ctx context.Context, req booking.ConfirmRequest) (*ConfirmResult, bool, error) {
	var result *ConfirmResult
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		existing, found, err := findConfirmRecord(ctx, tx, req)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		if !existing.SameDecision(req) {
			return errs.ErrConfirmIdempotencyConflict
		}
		r, err := replayConfirm(ctx, tx, existing)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, result != nil, nil
}

func lostToConcurrentConfirm(err error) bool {
	return errs.Is(err, errConfirmRace) ||
		errs.Is(err, errs.ErrHoldExpired) ||
		errs.Is(err, errs.ErrHoldTokenNotFound) ||
		errs.Is(err, errs.ErrBookingAlreadySaved) ||
		errs.Is(err, errs.ErrBookingItemAlreadySaved)
}

func findConfirmRecord(ctx context.Context, tx shared.Tx, req booking.ConfirmRequest) (booking.ConfirmRecord, bool, error) {
	rec, err := tx.ConfirmIdempotency().FindByPaymentTx(ctx, req.PaymentTxID)
	if err == nil {
		return rec, true, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return booking.ConfirmRecord{}, false, err
	}

	rec, err = tx.ConfirmIdempotency().FindByUserKey(ctx, req.UserID, req.ConfirmKey)
	if err == nil {
		return rec, true, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return booking.ConfirmRecord{}, false, err
	}
	return booking.ConfirmRecord{}, false, nil
}

// replayConfirm rebuilds the original response. The claimed amount of the
// retry is not compared again; the decision identity already matched.
func replayConfirm(ctx context.Context, tx shared.Tx, rec booking.ConfirmRecord) (*ConfirmResult, error) {
	pay, err := tx.Payments().FindByID(ctx, rec.PaymentTxID)
	if err != nil {
		return nil, errs.Wrap(err, "load payment for confirm replay")
	}
	items, err := tx.Bookings().Items(ctx, rec.BookingID)
	if err != nil {
		return nil, errs.Wrap(err, "load booking items for confirm replay")
	}
	return &ConfirmResult{
		BookingID:     rec.BookingID,
		EventID:       rec.EventID,
		UserID:        rec.UserID,
		PaymentTxID:   pay.ID,
		PaymentStatus: pay.Status,
		TotalAmount:   pay.Amount,
		Items:         items,
		Replayed:      true,
	}, nil
}

func enqueueBookingConfirmed(
	ctx context.Context,
	tx shared.Tx,
	bookingID int64,
	req booking.ConfirmRequest,
	items []booking.Item,
	total int64,
	now time.Time,
) error {
	seatIDs := make([]int64, 0, len(items))
	for _, it := range items {
		seatIDs = append(seatIDs, it.SeatID)
	}
	payload, err := json.Marshal(shared.BookingConfirmed{
		BookingID:   bookingID,
		EventID:     req.EventID,
		UserID:      req.UserID,
		PaymentTxID: req.PaymentTxID,
		SeatIDs:     seatIDs,
		TotalAmount: total,
		ConfirmedAt: now,
	})
	if err != nil {
		return errs.Wrap(err, "marshal booking confirmed payload")
	}
	return tx.Notifications().CreateJob(ctx, shared.NotificationJob{
		ID:      uuid.New(),
		Kind:    shared.NotificationKindBroker,
		Topic:   shared.TopicBookingConfirmed,
		Payload: payload,
		RunAt:   now,
	})
}

func (r ConfirmRequest) toDecision() (booking.ConfirmRequest, error) {
	paymentTxID := strings.TrimSpace(r.PaymentTxID)
	confirmKey := strings.TrimSpace(r.ConfirmKey)
	if r.UserID <= 0 || r.EventID <= 0 || r.HoldToken == uuid.Nil ||
		paymentTxID == "" || confirmKey == "" || r.Amount < 0 {
		return booking.ConfirmRequest{}, errs.ErrValidationFailed
	}
	return booking.ConfirmRequest{
		UserID:      r.UserID,
		EventID:     r.EventID,
		HoldGroupID: r.HoldToken,
		PaymentTxID: paymentTxID,
		ConfirmKey:  confirmKey,
		Amount:      r.Amount,
	}, nil
}
