package sakanifetcher

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/IMRSIV/bank-albilad-demo/internal/contextkeys"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
)

const idPlaceholder = "{id}"

// FetchDetails probes the single-record endpoints for one property id.
func (a *SakaniFetcherAdapter) FetchDetails(ctx context.Context, id string) (*domain.UpstreamResponse, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "SakaniFetcherAdapter(FetchDetails)",
		"property_id": id,
	})

	escaped := url.PathEscape(id)
	candidates := make([]string, 0, len(a.cfg.DetailEndpoints))
	for _, endpoint := range a.cfg.DetailEndpoints {
		target, err := a.resolve(strings.ReplaceAll(endpoint, idPlaceholder, escaped), nil)
		if err != nil {
			return nil, fmt.Errorf("sakani adapter: %w", err)
		}
		candidates = append(candidates, target)
	}

	return a.probe(ctx, candidates, logger, domain.KindNotFound)
}
