package errs

import "errors"

// Cross-cutting sentinels shared by the usecase and handler layers.
// Usecases mark concrete errors with these so handlers can pick a status.
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Access errors
	ErrForbidden = errors.New("forbidden")

	// Integration errors
	ErrIntegrationDisabled = errors.New("integration not configured")
	ErrIntegrationFailed   = errors.New("integration call failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
