// Package api provides the HTTP client for the Mepost API. It owns the
// connection configuration (base URL, API key, *http.Client), the single
// request dispatcher every endpoint goes through, and the JSON DTOs for
// each resource.
//
// # Client Creation
//
// [New] takes the API key and functional options. The key is sent verbatim
// in the Authorization header on every request, alongside
// Accept: application/json. Configuration is fixed once New returns.
//
// # Dispatch
//
// [Call] issues exactly one HTTP request and decodes the body into a
// [Response] envelope. There is no retry: a transport failure is returned
// as *apierrors.NetworkError, a non-2xx status as *apierrors.APIError, and
// an undecodable 2xx body as *apierrors.DecodeError.
//
// Use errors.Is with the apierrors sentinels to check for specific
// conditions:
//
//	if errors.Is(err, apierrors.ErrGroupNotFound) {
//	    // Handle missing group
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
