package sakanifetcher

import (
	"context"
	"fmt"
	"net/url"

	"github.com/IMRSIV/bank-albilad-demo/internal/contextkeys"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
)

// FetchSearch probes the search endpoints, forwarding every non-empty query value.
func (a *SakaniFetcherAdapter) FetchSearch(ctx context.Context, query url.Values) (*domain.UpstreamResponse, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "SakaniFetcherAdapter(FetchSearch)"})

	candidates := make([]string, 0, len(a.cfg.SearchEndpoints))
	for _, endpoint := range a.cfg.SearchEndpoints {
		target, err := a.resolve(endpoint, query)
		if err != nil {
			return nil, fmt.Errorf("sakani adapter: %w", err)
		}
		candidates = append(candidates, target)
	}

	return a.probe(ctx, candidates, logger, domain.KindUnavailable)
}
