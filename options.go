package mepost

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/mepost/mepost-go/internal/api"
)

// DefaultBaseURL is the production Mepost API endpoint.
const DefaultBaseURL = api.DefaultBaseURL

// Default paging for list endpoints.
const (
	DefaultLimit = api.DefaultLimit
	DefaultPage  = api.DefaultPage
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string

	debug  bool
	logger *zerolog.Logger

	metrics prometheus.Registerer
}

// Option configures the client.
type Option func(*clientConfig)

// ListOption configures paging on list endpoints.
type ListOption func(*api.ListParams)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The client is copied; the
// caller's value is never modified.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets http.Client.Timeout for every request.
// Default: none; bound calls with the request context instead.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithDebugLogging logs every request and response at debug level when
// enabled. The Authorization header is redacted, but response bodies are
// logged in full; do not enable this in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *clientConfig) {
		c.debug = enabled
	}
}

// WithLogger sets the logger used by debug logging.
// Default: the zerolog global logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithMetrics registers request counters and latency histograms with reg
// and records every request against them.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.metrics = reg
	}
}

// WithLimit sets the page size of a list call.
// Default: 10
func WithLimit(limit int) ListOption {
	return func(p *api.ListParams) {
		p.Limit = limit
	}
}

// WithPage sets the 1-based page of a list call.
// Default: 1
func WithPage(page int) ListOption {
	return func(p *api.ListParams) {
		p.Page = page
	}
}

func listParams(opts []ListOption) api.ListParams {
	params := api.DefaultListParams()
	for _, opt := range opts {
		opt(&params)
	}
	return params
}
