package sakanifetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/IMRSIV/bank-albilad-demo/internal/contextkeys"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
)

const defaultHealthTimeout = 5 * time.Second

// CheckHealth issues GET <base url>/health. Unlike the candidate endpoints the
// health path is appended to the base URL path.
func (a *SakaniFetcherAdapter) CheckHealth(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "SakaniFetcherAdapter(CheckHealth)"})

	timeout := a.cfg.HealthTimeout
	if timeout <= 0 {
		timeout = defaultHealthTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target := strings.TrimSuffix(a.baseURL.String(), "/") + "/health"
	outcome := a.visit(ctx, target, logger)
	if outcome.ok() {
		return nil
	}
	if outcome.err != nil {
		return fmt.Errorf("health check %s: %w", target, outcome.err)
	}
	return fmt.Errorf("health check %s: unexpected status %d", target, outcome.status)
}
