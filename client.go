package mepost

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mepost/mepost-go/internal/api"
	"github.com/mepost/mepost-go/internal/transport"
)

// Client is the Mepost API client. It is safe for concurrent use; its
// configuration cannot change after New returns.
type Client struct {
	apiClient *api.Client
}

// buildHTTPClient copies the configured *http.Client and layers the debug
// and metrics transports beneath it.
func buildHTTPClient(cfg *clientConfig) (*http.Client, error) {
	hc := &http.Client{}
	if cfg.httpClient != nil {
		copied := *cfg.httpClient
		hc = &copied
	}
	if cfg.timeout > 0 {
		hc.Timeout = cfg.timeout
	}

	if cfg.debug {
		logger := log.Logger
		if cfg.logger != nil {
			logger = *cfg.logger
		}
		hc.Transport = transport.NewDebug(hc.Transport, logger)
	}

	if cfg.metrics != nil {
		m, err := transport.NewMetrics(cfg.metrics)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		hc.Transport = m.Instrument(hc.Transport)
	}

	return hc, nil
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	hc, err := buildHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithHTTPClient(hc),
	}
	if cfg.userAgent != "" {
		apiOpts = append(apiOpts, api.WithUserAgent(cfg.userAgent))
	}

	return api.New(apiKey, apiOpts...)
}

// New creates a new Mepost client with the given API key. The key is sent
// verbatim in the Authorization header.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// NewFromEnv creates a client from MEPOST_* environment variables (see
// LoadConfig). Options given here are applied after the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg.APIKey, append(cfg.Options(), opts...)...)
}

// BaseURL returns the API base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}
