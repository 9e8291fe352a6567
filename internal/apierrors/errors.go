// Package apierrors provides shared error types for the Mepost client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrBadRequest is returned when the API rejects the request payload (400).
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned when the API key is invalid or revoked (401).
	ErrUnauthorized = errors.New("invalid or revoked API key")

	// ErrForbidden is returned when the API key lacks access to the resource (403).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for any 404 response.
	ErrNotFound = errors.New("resource not found")

	// ErrDomainNotFound is returned when a sending domain is not found.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrGroupNotFound is returned when an email group is not found.
	ErrGroupNotFound = errors.New("group not found")

	// ErrSubscriberNotFound is returned when a subscriber is not found in a group.
	ErrSubscriberNotFound = errors.New("subscriber not found")

	// ErrMessageNotFound is returned when a message or schedule is not found.
	ErrMessageNotFound = errors.New("message not found")

	// ErrIPNotFound is returned when an outbound IP address is not found.
	ErrIPNotFound = errors.New("ip address not found")

	// ErrIPGroupNotFound is returned when an outbound IP group is not found.
	ErrIPGroupNotFound = errors.New("ip group not found")

	// ErrRateLimited is returned when the API rate limit is exceeded (429).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned for any 5xx response.
	ErrServer = errors.New("server error")
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown ResourceType = ""
	// ResourceDomain indicates the error relates to a sending domain.
	ResourceDomain ResourceType = "domain"
	// ResourceGroup indicates the error relates to an email group.
	ResourceGroup ResourceType = "group"
	// ResourceSubscriber indicates the error relates to a group subscriber.
	ResourceSubscriber ResourceType = "subscriber"
	// ResourceMessage indicates the error relates to a message or schedule.
	ResourceMessage ResourceType = "message"
	// ResourceIP indicates the error relates to an outbound IP address.
	ResourceIP ResourceType = "ip"
	// ResourceIPGroup indicates the error relates to an outbound IP group.
	ResourceIPGroup ResourceType = "ip_group"
)

var notFoundByResource = map[ResourceType]error{
	ResourceDomain:     ErrDomainNotFound,
	ResourceGroup:      ErrGroupNotFound,
	ResourceSubscriber: ErrSubscriberNotFound,
	ResourceMessage:    ErrMessageNotFound,
	ResourceIP:         ErrIPNotFound,
	ResourceIPGroup:    ErrIPGroupNotFound,
}

// APIError represents a non-2xx HTTP response from the Mepost API.
type APIError struct {
	StatusCode int
	// Message is the envelope's error string, or the raw body when the
	// response was not an envelope.
	Message      string
	Body         []byte
	ResourceType ResourceType
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// MepostError implements the MepostError marker interface.
func (e *APIError) MepostError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 400:
		return target == ErrBadRequest
	case e.StatusCode == 401:
		return target == ErrUnauthorized
	case e.StatusCode == 403:
		return target == ErrForbidden
	case e.StatusCode == 404:
		if target == ErrNotFound {
			return true
		}
		specific, ok := notFoundByResource[e.ResourceType]
		return ok && target == specific
	case e.StatusCode == 429:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrServer
	}
	return false
}

// WithResourceType returns a copy of the error with the resource type set.
// If the error is not an *APIError, it is returned unchanged.
func WithResourceType(err error, rt ResourceType) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			Message:      apiErr.Message,
			Body:         apiErr.Body,
			ResourceType: rt,
		}
	}
	return err
}

// NetworkError represents a transport-level failure: the request never
// produced an HTTP response.
type NetworkError struct {
	Err    error
	Method string
	URL    string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MepostError implements the MepostError marker interface.
func (e *NetworkError) MepostError() {}

// DecodeError indicates a 2xx response whose body was not valid JSON for
// the expected envelope.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MepostError implements the MepostError marker interface.
func (e *DecodeError) MepostError() {}
