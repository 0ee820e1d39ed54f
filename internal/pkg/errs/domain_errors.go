package errs

// Code is the stable, client-facing identifier of a business rule violation.
type Code string

const (
	CodeValidationFailed           Code = "VALIDATION_FAILED"
	CodeIdempotencyKeyRequired     Code = "IDEMPOTENCY_KEY_REQUIRED"
	CodeInvalidSeatSet             Code = "INVALID_SEAT_SET"
	CodeEventNotFound              Code = "EVENT_NOT_FOUND"
	CodeEventNotOnSale             Code = "EVENT_NOT_ON_SALE"
	CodeHoldLimitExceeded          Code = "HOLD_LIMIT_EXCEEDED"
	CodeSeatNotAvailable           Code = "SEAT_NOT_AVAILABLE"
	CodeIdempotencyConflict        Code = "IDEMPOTENCY_CONFLICT"
	CodeIdempotencyInProgress      Code = "IDEMPOTENCY_IN_PROGRESS"
	CodeHoldTokenNotFound          Code = "HOLD_TOKEN_NOT_FOUND"
	CodeHoldExpired                Code = "HOLD_EXPIRED"
	CodePaymentIdempotencyConflict Code = "PAYMENT_IDEMPOTENCY_CONFLICT"
	CodePaymentDeclined            Code = "PAYMENT_DECLINED"
	CodePaymentTimeout             Code = "PAYMENT_TIMEOUT"
	CodeAmountMismatch             Code = "AMOUNT_MISMATCH"
	CodeConfirmIdempotencyConflict Code = "CONFIRM_IDEMPOTENCY_CONFLICT"
	CodeBookingAlreadySaved        Code = "BOOKING_ALREADY_SAVED"
	CodeBookingItemAlreadySaved    Code = "BOOKING_ITEM_ALREADY_SAVED"
	CodeBookingNotFound            Code = "BOOKING_NOT_FOUND"
	CodeRateLimited                Code = "RATE_LIMITED"
	CodeUnauthorized               Code = "UNAUTHORIZED"
	CodeForbidden                  Code = "FORBIDDEN"
	CodeInternal                   Code = "INTERNAL_ERROR"
)

// BusinessError is a named rule violation. Values are compared by code, so a
// sentinel below matches any wrapped copy of itself under errors.Is.
type BusinessError struct {
	code Code
	msg  string
}

func NewBusinessError(code Code, msg string) *BusinessError {
	return &BusinessError{code: code, msg: msg}
}

func (e *BusinessError) Error() string {
	return string(e.code) + ": " + e.msg
}

func (e *BusinessError) Code() Code {
	return e.code
}

func (e *BusinessError) Message() string {
	return e.msg
}

func (e *BusinessError) Is(target error) bool {
	t, ok := target.(*BusinessError)
	if !ok {
		return false
	}
	return e.code == t.code
}

// AsBusiness returns the outermost BusinessError in err's chain, if any.
func AsBusiness(err error) (*BusinessError, bool) {
	var be *BusinessError
	if As(err, &be) {
		return be, true
	}
	return nil, false
}

var (
	// Request shape
	ErrValidationFailed       = NewBusinessError(CodeValidationFailed, "request validation failed")
	ErrIdempotencyKeyRequired = NewBusinessError(CodeIdempotencyKeyRequired, "idempotency key required")
	ErrInvalidSeatSet         = NewBusinessError(CodeInvalidSeatSet, "seat set must contain at least one seat")

	// Event
	ErrEventNotFound  = NewBusinessError(CodeEventNotFound, "event not found")
	ErrEventNotOnSale = NewBusinessError(CodeEventNotOnSale, "event is not on sale")

	// Hold
	ErrHoldLimitExceeded     = NewBusinessError(CodeHoldLimitExceeded, "per-user hold limit exceeded")
	ErrSeatNotAvailable      = NewBusinessError(CodeSeatNotAvailable, "one or more seats are not available")
	ErrIdempotencyConflict   = NewBusinessError(CodeIdempotencyConflict, "idempotency key reused with a different request")
	ErrIdempotencyInProgress = NewBusinessError(CodeIdempotencyInProgress, "a request with this idempotency key is in progress")

	// Confirm
	ErrHoldTokenNotFound          = NewBusinessError(CodeHoldTokenNotFound, "hold token not found")
	ErrHoldExpired                = NewBusinessError(CodeHoldExpired, "hold expired")
	ErrPaymentIdempotencyConflict = NewBusinessError(CodePaymentIdempotencyConflict, "payment transaction conflict")
	ErrPaymentDeclined            = NewBusinessError(CodePaymentDeclined, "payment declined")
	ErrPaymentTimeout             = NewBusinessError(CodePaymentTimeout, "payment timed out")
	ErrAmountMismatch             = NewBusinessError(CodeAmountMismatch, "amount does not match payment")
	ErrConfirmIdempotencyConflict = NewBusinessError(CodeConfirmIdempotencyConflict, "confirm request conflicts with a previous decision")
	ErrBookingAlreadySaved        = NewBusinessError(CodeBookingAlreadySaved, "booking already saved for this payment")
	ErrBookingItemAlreadySaved    = NewBusinessError(CodeBookingItemAlreadySaved, "seat already booked")

	// Booking queries
	ErrBookingNotFound = NewBusinessError(CodeBookingNotFound, "booking not found")

	// Transport
	ErrRateLimited = NewBusinessError(CodeRateLimited, "too many requests")
)
