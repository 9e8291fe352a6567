// Package transport provides http.RoundTripper wrappers installed beneath the
// Mepost API client: request/response debug logging and prometheus
// instrumentation. Neither changes the request that goes on the wire.
package transport

import (
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// Debug logs every request and response at debug level, and transport
// failures at error level. The Authorization header is redacted.
//
// Request bodies are never dumped, only their length; dumping would consume
// the body the next transport still has to send.
type Debug struct {
	Base   http.RoundTripper
	Logger zerolog.Logger
}

// NewDebug wraps base with a debug logger. A nil base uses http.DefaultTransport.
func NewDebug(base http.RoundTripper, logger zerolog.Logger) *Debug {
	return &Debug{Base: base, Logger: logger}
}

func (d *Debug) base() http.RoundTripper {
	if d.Base == nil {
		return http.DefaultTransport
	}
	return d.Base
}

// RoundTrip implements http.RoundTripper.
func (d *Debug) RoundTrip(req *http.Request) (*http.Response, error) {
	if e := d.Logger.Debug(); e.Enabled() {
		logged := req.Clone(req.Context())
		logged.Body = nil
		logged.ContentLength = 0
		if logged.Header.Get("Authorization") != "" {
			logged.Header.Set("Authorization", redacted)
		}
		if dump, err := httputil.DumpRequestOut(logged, false); err == nil {
			e = e.Str("request_dump", string(dump))
		}
		e.Str("method", req.Method).
			Str("url", req.URL.String()).
			Int64("content_length", req.ContentLength).
			Msg("HTTP request")
	}

	start := time.Now()
	resp, err := d.base().RoundTrip(req)
	elapsed := time.Since(start)
	if err != nil {
		d.Logger.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("elapsed", elapsed).
			Msg("HTTP request failed")
		return nil, err
	}

	if e := d.Logger.Debug(); e.Enabled() {
		if dump, err := httputil.DumpResponse(resp, true); err == nil {
			e = e.Str("response_dump", string(dump))
		}
		e.Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Dur("elapsed", elapsed).
			Msg("HTTP response")
	}
	return resp, nil
}
