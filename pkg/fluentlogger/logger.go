package fluentlogger

import (
	"fmt"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config holds the Fluent Bit connection settings.
type Config struct {
	Host      string // e.g. "127.0.0.1" or "fluent-bit" inside docker compose
	Port      int    // e.g. 24224
	TagPrefix string // common prefix for every tag posted by this service
	// Async makes Post non-blocking; records are buffered and flushed in the background.
	Async bool
}

// NewClient creates a Fluent Bit client.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}

	logger, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
		Async:      cfg.Async,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}

	// There is no ping: a created client does not guarantee a connection,
	// errors surface on the first Post.
	return logger, nil
}
