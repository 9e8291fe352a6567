package mepost

import (
	"errors"

	"github.com/mepost/mepost-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrBadRequest is matched by 400 responses.
	ErrBadRequest = apierrors.ErrBadRequest

	// ErrUnauthorized is matched by 401 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden is matched by 403 responses.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound is matched by every 404 response.
	ErrNotFound = apierrors.ErrNotFound

	// ErrDomainNotFound is matched by 404 responses from domain endpoints.
	ErrDomainNotFound = apierrors.ErrDomainNotFound

	// ErrGroupNotFound is matched by 404 responses from group endpoints.
	ErrGroupNotFound = apierrors.ErrGroupNotFound

	// ErrSubscriberNotFound is matched by 404 responses from subscriber lookups.
	ErrSubscriberNotFound = apierrors.ErrSubscriberNotFound

	// ErrMessageNotFound is matched by 404 responses from message and schedule lookups.
	ErrMessageNotFound = apierrors.ErrMessageNotFound

	// ErrIPNotFound is matched by 404 responses from outbound IP endpoints.
	ErrIPNotFound = apierrors.ErrIPNotFound

	// ErrIPGroupNotFound is matched by 404 responses from IP group lookups.
	ErrIPGroupNotFound = apierrors.ErrIPGroupNotFound

	// ErrRateLimited is matched by 429 responses.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer is matched by every 5xx response.
	ErrServer = apierrors.ErrServer
)

// MepostError is implemented by all SDK errors.
type MepostError interface {
	error
	MepostError() // marker method
}

// APIError represents a non-2xx HTTP response from the Mepost API.
type APIError = apierrors.APIError

// NetworkError represents a transport failure: no HTTP response was received.
type NetworkError = apierrors.NetworkError

// DecodeError represents a 2xx response whose body could not be decoded.
type DecodeError = apierrors.DecodeError

// StatusCode returns the HTTP status of an *APIError anywhere in err's chain.
func StatusCode(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}
