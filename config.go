package mepost

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by LoadConfig.
const EnvPrefix = "MEPOST"

// Config is the client configuration read from the environment:
//
//	MEPOST_API_KEY   required
//	MEPOST_BASE_URL  default https://api.mepost.io/v1
//	MEPOST_TIMEOUT   http.Client timeout, e.g. "30s"; default none
//	MEPOST_DEBUG     log requests and responses
type Config struct {
	APIKey  string        `envconfig:"API_KEY"`
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.mepost.io/v1"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"0s"`
	Debug   bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads Config from MEPOST_* environment variables and requires
// an API key.
func LoadConfig() (*Config, error) {
	cfg, err := ReadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// ReadConfig reads Config from MEPOST_* environment variables without
// requiring an API key, so callers can supply one from elsewhere before
// calling Validate.
func ReadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Validate reports a missing API key.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s_API_KEY: %w", EnvPrefix, ErrMissingAPIKey)
	}
	return nil
}

// Options converts the configuration into client options.
func (c *Config) Options() []Option {
	opts := []Option{WithBaseURL(c.BaseURL)}
	if c.Timeout > 0 {
		opts = append(opts, WithTimeout(c.Timeout))
	}
	if c.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	return opts
}
