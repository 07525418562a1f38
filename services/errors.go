// File: /services/errors.go
package services

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the services. Controllers map these onto HTTP
// statuses with errors.Is / errors.As; anything unmatched is an internal
// persistence failure.
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrLoanNotFound    = errors.New("loan not found")

	// ErrOfferNotActive rejects an application against a retired offer.
	ErrOfferNotActive = errors.New("offer is not active")

	// ErrVinLookupUnavailable covers every way the external lookup can fail:
	// disabled, down, timed out, or malformed/empty response. Callers fall
	// back to the simulated estimator and never surface it.
	ErrVinLookupUnavailable = errors.New("vin lookup unavailable")
)

// ValidationError reports an out-of-range or missing input field. It is
// surfaced immediately and nothing is persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}
