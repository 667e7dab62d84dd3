package rates

import (
	"errors"
	"fmt"
)

// GatewayError represents a failure talking to a courier quote
// gateway. Expected failure classes (network, non-2xx, timeout,
// malformed payload, auth) all normalize to this type wrapping
// ErrGatewayUnavailable; the engine recovers from it by falling back
// to the standard rate.
type GatewayError struct {
	Gateway    string
	Code       string
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", e.Gateway, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Gateway, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *GatewayError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrGatewayUnavailable
}

// Is reports gateway errors as unavailable regardless of cause.
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayUnavailable
}

// NewGatewayError creates a new GatewayError.
func NewGatewayError(gateway, code, message string) *GatewayError {
	return &GatewayError{
		Gateway: gateway,
		Code:    code,
		Message: message,
	}
}

// WithCause adds a cause to the error.
func (e *GatewayError) WithCause(err error) *GatewayError {
	e.Cause = err
	return e
}

// WithStatusCode adds an HTTP status code to the error.
func (e *GatewayError) WithStatusCode(code int) *GatewayError {
	e.StatusCode = code
	return e
}

// Sentinel errors for shipping rate scenarios.
var (
	// ErrGatewayUnavailable indicates the courier quote service could
	// not produce a usable response.
	ErrGatewayUnavailable = errors.New("courier gateway unavailable")

	// ErrDestinationRequired indicates the destination state was empty.
	ErrDestinationRequired = errors.New("destination required")

	// ErrInvalidWeight indicates a non-positive shipment weight.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrMissingCredentials indicates required gateway credentials were
	// absent at startup.
	ErrMissingCredentials = errors.New("missing gateway credentials")
)
