package errs

import "errors"

// Sentinel errors shared across usecase layers; marked onto lower-level
// errors with errs.Mark and matched by handlers with errors.Is.
var (
	// Configuration / lookup errors
	ErrConfiguration   = errors.New("scheduling configuration error")
	ErrServiceNotFound = errors.New("service not found")

	// Availability / contention errors (retryable by re-reading availability)
	ErrSlotUnavailable  = errors.New("slot unavailable")
	ErrCapacityExceeded = errors.New("slot capacity exceeded")
	ErrLockConflict     = errors.New("slot already locked")

	// Lifecycle errors
	ErrInvalidTransition    = errors.New("invalid appointment transition")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrRescheduleNotFound   = errors.New("reschedule request not found")
	ErrRescheduleNotPending = errors.New("reschedule request already resolved")

	// Batch query errors
	ErrInvalidRange  = errors.New("invalid date range")
	ErrRangeTooLarge = errors.New("date range too large")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
