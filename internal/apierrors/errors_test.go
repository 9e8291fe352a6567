package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status code only",
			err:      &APIError{StatusCode: 500},
			expected: "API error 500",
		},
		{
			name:     "with message",
			err:      &APIError{StatusCode: 400, Message: "domain is required"},
			expected: "API error 400: domain is required",
		},
		{
			name:     "body is not part of the message",
			err:      &APIError{StatusCode: 502, Body: []byte("<html>bad gateway</html>")},
			expected: "API error 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		target   error
		expected bool
	}{
		{
			name:     "400 matches ErrBadRequest",
			err:      &APIError{StatusCode: 400},
			target:   ErrBadRequest,
			expected: true,
		},
		{
			name:     "401 matches ErrUnauthorized",
			err:      &APIError{StatusCode: 401},
			target:   ErrUnauthorized,
			expected: true,
		},
		{
			name:     "401 does not match ErrNotFound",
			err:      &APIError{StatusCode: 401},
			target:   ErrNotFound,
			expected: false,
		},
		{
			name:     "403 matches ErrForbidden",
			err:      &APIError{StatusCode: 403},
			target:   ErrForbidden,
			expected: true,
		},
		{
			name:     "404 without resource type matches ErrNotFound",
			err:      &APIError{StatusCode: 404},
			target:   ErrNotFound,
			expected: true,
		},
		{
			name:     "404 without resource type does not match ErrGroupNotFound",
			err:      &APIError{StatusCode: 404},
			target:   ErrGroupNotFound,
			expected: false,
		},
		{
			name:     "404 with group resource matches ErrGroupNotFound",
			err:      &APIError{StatusCode: 404, ResourceType: ResourceGroup},
			target:   ErrGroupNotFound,
			expected: true,
		},
		{
			name:     "404 with group resource still matches ErrNotFound",
			err:      &APIError{StatusCode: 404, ResourceType: ResourceGroup},
			target:   ErrNotFound,
			expected: true,
		},
		{
			name:     "404 with group resource does not match ErrSubscriberNotFound",
			err:      &APIError{StatusCode: 404, ResourceType: ResourceGroup},
			target:   ErrSubscriberNotFound,
			expected: false,
		},
		{
			name:     "404 with ip group resource matches ErrIPGroupNotFound",
			err:      &APIError{StatusCode: 404, ResourceType: ResourceIPGroup},
			target:   ErrIPGroupNotFound,
			expected: true,
		},
		{
			name:     "429 matches ErrRateLimited",
			err:      &APIError{StatusCode: 429},
			target:   ErrRateLimited,
			expected: true,
		},
		{
			name:     "500 matches ErrServer",
			err:      &APIError{StatusCode: 500},
			target:   ErrServer,
			expected: true,
		},
		{
			name:     "503 matches ErrServer",
			err:      &APIError{StatusCode: 503},
			target:   ErrServer,
			expected: true,
		},
		{
			name:     "500 does not match ErrUnauthorized",
			err:      &APIError{StatusCode: 500},
			target:   ErrUnauthorized,
			expected: false,
		},
		{
			name:     "409 matches nothing",
			err:      &APIError{StatusCode: 409},
			target:   ErrBadRequest,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Is(tt.target)
			if got != tt.expected {
				t.Errorf("Is(%v) = %v, want %v", tt.target, got, tt.expected)
			}
		})
	}
}

func TestAPIError_ErrorsIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("get group: %w", &APIError{StatusCode: 404, ResourceType: ResourceGroup})
	if !errors.Is(err, ErrGroupNotFound) {
		t.Error("errors.Is should match ErrGroupNotFound through fmt wrapping")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("errors.As should find *APIError")
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
}

func TestWithResourceType(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		resourceType ResourceType
		checkResult  func(t *testing.T, result error)
	}{
		{
			name:         "nil error returns nil",
			err:          nil,
			resourceType: ResourceDomain,
			checkResult: func(t *testing.T, result error) {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			},
		},
		{
			name:         "APIError gets resource type",
			err:          &APIError{StatusCode: 404, Message: "not found", Body: []byte(`{"error":"not found"}`)},
			resourceType: ResourceSubscriber,
			checkResult: func(t *testing.T, result error) {
				apiErr, ok := result.(*APIError)
				if !ok {
					t.Fatal("expected *APIError")
				}
				if apiErr.ResourceType != ResourceSubscriber {
					t.Errorf("ResourceType = %v, want %v", apiErr.ResourceType, ResourceSubscriber)
				}
				if apiErr.StatusCode != 404 {
					t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
				}
				if apiErr.Message != "not found" {
					t.Errorf("Message = %q, want %q", apiErr.Message, "not found")
				}
				if string(apiErr.Body) != `{"error":"not found"}` {
					t.Errorf("Body = %q", apiErr.Body)
				}
			},
		},
		{
			name:         "network error returned unchanged",
			err:          &NetworkError{Err: fmt.Errorf("connection refused")},
			resourceType: ResourceIP,
			checkResult: func(t *testing.T, result error) {
				var netErr *NetworkError
				if !errors.As(result, &netErr) {
					t.Fatalf("expected *NetworkError, got %T", result)
				}
			},
		},
		{
			name:         "plain error returned unchanged",
			err:          fmt.Errorf("some other error"),
			resourceType: ResourceMessage,
			checkResult: func(t *testing.T, result error) {
				if result.Error() != "some other error" {
					t.Errorf("expected original error, got %v", result)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithResourceType(tt.err, tt.resourceType)
			tt.checkResult(t, result)
		})
	}
}

func TestNetworkError_Error(t *testing.T) {
	underlying := fmt.Errorf("connection refused")
	err := &NetworkError{Err: underlying, Method: "GET", URL: "https://api.mepost.io/v1/groups"}

	expected := "network error: connection refused"
	if got := err.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("connection refused")
	err := &NetworkError{Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}

	if errors.Unwrap(err) != underlying {
		t.Error("errors.Unwrap should return underlying error")
	}
}

func TestDecodeError(t *testing.T) {
	var target map[string]any
	jsonErr := json.Unmarshal([]byte("{not json"), &target)
	err := &DecodeError{StatusCode: 200, Err: jsonErr}

	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("errors.As should reach *json.SyntaxError, got %v", err)
	}
	if got := err.Error(); got == "" {
		t.Error("Error() should not be empty")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrMissingAPIKey,
		ErrBadRequest,
		ErrUnauthorized,
		ErrForbidden,
		ErrNotFound,
		ErrDomainNotFound,
		ErrGroupNotFound,
		ErrSubscriberNotFound,
		ErrMessageNotFound,
		ErrIPNotFound,
		ErrIPGroupNotFound,
		ErrRateLimited,
		ErrServer,
	}

	for _, err := range sentinels {
		if err == nil {
			t.Error("sentinel error should not be nil")
		}
		if err.Error() == "" {
			t.Error("sentinel error message should not be empty")
		}
	}
}

func TestResourceTypeConstants(t *testing.T) {
	if ResourceUnknown != "" {
		t.Errorf("ResourceUnknown = %q, want empty string", ResourceUnknown)
	}
	if ResourceGroup != "group" {
		t.Errorf("ResourceGroup = %q, want 'group'", ResourceGroup)
	}
	if ResourceIPGroup != "ip_group" {
		t.Errorf("ResourceIPGroup = %q, want 'ip_group'", ResourceIPGroup)
	}
}
