package commands

import (
	"context"
	"strings"

	"seat-hold-ticketing/internal/domain/payment"
	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/pkg/clock"
	"seat-hold-ticketing/internal/pkg/errs"
	"seat-hold-ticketing/internal/usecase/shared"
)

type DecidePaymentRequest struct {
	PaymentTxID string
	UserID      int64
	Amount      int64
	Status      payment.Status
}

type DecidePaymentResult struct {
	Tx       payment.Tx
	Replayed bool
}

// PaymentCommands records payment decisions reported by the payment gateway.
type PaymentCommands interface {
	Decide(ctx context.Context, req DecidePaymentRequest) (*DecidePaymentResult, error)
}

type paymentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, clock: clk}
}

// Decide is idempotent per payment tx id: recording the same decision twice
// replays the first, recording a different one is a conflict.
func (uc *paymentUseCaseImpl) Decide(ctx context.Context, req DecidePaymentRequest) (*DecidePaymentResult, error) {
	id := strings.TrimSpace(req.PaymentTxID)
	if id == "" || req.UserID <= 0 || req.Amount < 0 {
		return nil, errs.ErrValidationFailed
	}
	if _, err := payment.NewStatus(req.Status.String()); err != nil {
		return nil, errs.ErrValidationFailed
	}

	decision := payment.Tx{
		ID:        id,
		UserID:    req.UserID,
		Amount:    req.Amount,
		Status:    req.Status,
		DecidedAt: uc.clock.Now(),
	}

	var result *DecidePaymentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		existing, err := tx.Payments().FindByID(ctx, id)
		switch {
		case err == nil:
			r, err := replayDecision(existing, decision)
			if err != nil {
				return err
			}
			result = r
			return nil
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		inserted, err := tx.Payments().Insert(ctx, decision)
		if err != nil {
			return err
		}
		if inserted {
			result = &DecidePaymentResult{Tx: decision}
			return nil
		}

		existing, err = tx.Payments().FindByID(ctx, id)
		if err != nil {
			return err
		}
		r, err := replayDecision(existing, decision)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func replayDecision(existing, requested payment.Tx) (*DecidePaymentResult, error) {
	if !existing.SameDecision(requested) {
		return nil, errs.ErrPaymentIdempotencyConflict
	}
	return &DecidePaymentResult{Tx: existing, Replayed: true}, nil
}
