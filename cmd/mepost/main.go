// Command mepost calls the Mepost API from the shell. Every command prints
// the response envelope as indented JSON on stdout.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mepost/mepost-go"
)

const userAgent = "mepost-cli"

// Config holds the CLI's standard streams.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func run(args []string, cfg Config) error {
	logger := newLogger(cfg.Stderr, zerolog.InfoLevel)

	cmd := NewRootCmd(cfg)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logger.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}

// newLogger writes human-readable log lines to w.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Logger()
}

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	apiKey  string
	baseURL string
	envFile string
	debug   bool
	timeout time.Duration

	logger zerolog.Logger
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd(cfg Config) *cobra.Command {
	o := &rootOptions{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:           "mepost",
		Short:         "Command line client for the Mepost email API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load %s: %w", o.envFile, err)
			}

			level := zerolog.InfoLevel
			if o.debug {
				level = zerolog.DebugLevel
			}
			o.logger = newLogger(cmd.ErrOrStderr(), level)
			o.logger.Debug().Msg("debug logging enabled")
			return nil
		},
	}

	rootCmd.SetIn(cfg.Stdin)
	rootCmd.SetOut(cfg.Stdout)
	rootCmd.SetErr(cfg.Stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.apiKey, "api-key", "", "Mepost API key (default $MEPOST_API_KEY)")
	flags.StringVar(&o.baseURL, "base-url", "", "API base URL (default $MEPOST_BASE_URL or "+mepost.DefaultBaseURL+")")
	flags.StringVar(&o.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.BoolVarP(&o.debug, "debug", "d", false, "log HTTP requests and responses to stderr")
	flags.DurationVar(&o.timeout, "timeout", 30*time.Second, "deadline for the API call")

	rootCmd.AddCommand(newDomainCmd(o))
	rootCmd.AddCommand(newGroupCmd(o))
	rootCmd.AddCommand(newSubscriberCmd(o))
	rootCmd.AddCommand(newMessageCmd(o))
	rootCmd.AddCommand(newIPCmd(o))
	rootCmd.AddCommand(newIPGroupCmd(o))

	return rootCmd
}

// client builds an API client from the environment, with flags taking
// precedence.
func (o *rootOptions) client() (*mepost.Client, error) {
	cfg, err := mepost.ReadConfig()
	if err != nil {
		return nil, err
	}
	if o.apiKey != "" {
		cfg.APIKey = o.apiKey
	}
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("no API key: pass --api-key or set %w", err)
	}
	if cfg.Debug {
		o.logger = o.logger.Level(zerolog.DebugLevel)
	}

	opts := append(cfg.Options(),
		mepost.WithUserAgent(userAgent),
		mepost.WithLogger(o.logger),
	)
	return mepost.New(cfg.APIKey, opts...)
}

// call runs fn with a client and a deadline, then prints its result.
func call[T any](cmd *cobra.Command, o *rootOptions, fn func(ctx context.Context, c *mepost.Client) (T, error)) error {
	c, err := o.client()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	resp, err := fn(ctx, c)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), resp)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readPayload decodes a JSON request body from path, or from stdin when
// path is empty or "-".
func readPayload(cmd *cobra.Command, path string, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
