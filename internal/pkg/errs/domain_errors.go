package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Room errors
	ErrRoomNotFound = errors.New("room not found")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingConflict  = errors.New("booking conflict")
	ErrBookingCanceled  = errors.New("booking already canceled")
	ErrInvalidTimeSlots = errors.New("invalid time slots")

	// Pricing errors
	ErrPricingNotConfigured = errors.New("pricing not configured")

	// Recurrence errors
	ErrInvalidPattern   = errors.New("invalid weekly pattern")
	ErrInvalidDateRange = errors.New("invalid date range")

	// Requester errors
	ErrRequesterNotFound = errors.New("requester not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
