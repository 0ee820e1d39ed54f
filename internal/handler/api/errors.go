package api

import (
	"net/http"
	"strconv"

	"seat-hold-ticketing/internal/handler/httperr"
	"seat-hold-ticketing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const headerIdempotentReplayed = "Idempotent-Replayed"

var statusByCode = map[errs.Code]int{
	errs.CodeValidationFailed:           http.StatusBadRequest,
	errs.CodeIdempotencyKeyRequired:     http.StatusBadRequest,
	errs.CodeInvalidSeatSet:             http.StatusBadRequest,
	errs.CodeEventNotFound:              http.StatusNotFound,
	errs.CodeEventNotOnSale:             http.StatusConflict,
	errs.CodeHoldLimitExceeded:          http.StatusConflict,
	errs.CodeSeatNotAvailable:           http.StatusConflict,
	errs.CodeIdempotencyConflict:        http.StatusConflict,
	errs.CodeIdempotencyInProgress:      http.StatusConflict,
	errs.CodeHoldTokenNotFound:          http.StatusNotFound,
	errs.CodeHoldExpired:                http.StatusConflict,
	errs.CodePaymentIdempotencyConflict: http.StatusConflict,
	errs.CodePaymentDeclined:            http.StatusConflict,
	errs.CodePaymentTimeout:             http.StatusGatewayTimeout,
	errs.CodeAmountMismatch:             http.StatusConflict,
	errs.CodeConfirmIdempotencyConflict: http.StatusConflict,
	errs.CodeBookingAlreadySaved:        http.StatusConflict,
	errs.CodeBookingItemAlreadySaved:    http.StatusConflict,
	errs.CodeBookingNotFound:            http.StatusNotFound,
	errs.CodeRateLimited:                http.StatusTooManyRequests,
}

// writeBusinessError renders a business rule violation with its code. Anything
// else is an internal error and its message is not exposed.
func writeBusinessError(c *gin.Context, err error) {
	be, ok := errs.AsBusiness(err)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, errs.CodeInternal, "Internal error", nil)
		return
	}
	status, ok := statusByCode[be.Code()]
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, errs.CodeInternal, "Internal error", nil)
		return
	}
	httperr.AbortWithError(c, status, err, be.Code(), be.Message(), nil)
}

func abortValidation(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, errs.CodeValidationFailed, msg, nil)
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user in context"), errs.CodeUnauthorized, "Unauthorized", nil)
}

// positiveIDParam reads a path parameter that must be a positive int64.
func positiveIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.Newf("%s must be positive, got %d", name, id)
		}
		abortValidation(c, err, "Invalid "+name)
		return 0, false
	}
	return id, true
}
