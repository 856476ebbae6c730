package errs

import "errors"

// Sentinel errors shared by the stores, usecases and handlers.
var (
	// Directory store errors
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrUserNotFound     = errors.New("user not found")

	// Booking ledger errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// Validation errors
	ErrValidation = errors.New("validation error")

	// Authorization errors
	ErrForbidden = errors.New("operation not permitted for this user")
)
