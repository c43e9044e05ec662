package errs

import "errors"

// Sentinel errors shared across layers
var (
	// Shared key-value store (Redis) could not serve the request
	ErrStoreUnavailable = errors.New("shared store unavailable")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
