package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/issuekit/issuekit/pkg/cliconfig"
	"github.com/issuekit/issuekit/pkg/logging"
	"github.com/issuekit/issuekit/pkg/tracker"
	"github.com/issuekit/issuekit/pkg/transport"
)

// newClient builds a tracker client from the resolved CLI configuration.
func newClient() *tracker.Client {
	cfg := cliconfig.Resolve(trackerURL, apiKey)

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	} else if cfg.LogLevel != "" {
		level = logging.ParseLevel(cfg.LogLevel)
	}
	log := logging.New(logging.Config{Level: level, Format: logging.FormatText})

	opts := []tracker.Option{tracker.WithLogger(log)}
	if cfg.APIKey != "" {
		opts = append(opts, tracker.WithAPIKey(cfg.APIKey))
	}
	if cfg.ServerVersion != "" {
		opts = append(opts, tracker.WithServerVersion(cfg.ServerVersion))
	}
	return tracker.New(cfg.URL, opts...)
}

// formatAPIError rewrites tracker API errors into actionable CLI messages.
func formatAPIError(err error) error {
	var apiErr *transport.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401:
			return fmt.Errorf("authentication failed: check --api-key or ISSUEKIT_API_KEY")
		case 404:
			return fmt.Errorf("not found")
		case 422:
			return fmt.Errorf("validation failed: %v", apiErr.Errors)
		}
	}
	return err
}
