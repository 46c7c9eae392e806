package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/IMRSIV/bank-albilad-demo/internal/configs"
	"github.com/IMRSIV/bank-albilad-demo/internal/contextkeys"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/filter"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
)

// SearchPropertiesUseCase serves a search from the marketplace API when it
// answers with listings, otherwise from the filtered sample set.
type SearchPropertiesUseCase struct {
	cfg        configs.SakaniConfig
	fetcher    port.SakaniFetcherPort
	normalizer port.PropertyNormalizerPort
	sample     port.SampleDatasetPort
}

func NewSearchPropertiesUseCase(
	cfg configs.SakaniConfig,
	fetcher port.SakaniFetcherPort,
	normalizer port.PropertyNormalizerPort,
	sample port.SampleDatasetPort,
) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{
		cfg:        cfg,
		fetcher:    fetcher,
		normalizer: normalizer,
		sample:     sample,
	}
}

// Execute returns an error only for authentication-required answers of the
// API and for a context cancelled during the mock delay.
func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchProperties",
		"params":   params.Values().Encode(),
	})

	ucLogger.Info("Use case started", nil)

	if uc.cfg.UseMockData {
		if err := waitMockDelay(ctx, uc.cfg.MockSearchDelay); err != nil {
			ucLogger.Warn("Request cancelled during mock delay", port.Fields{"error": err.Error()})
			return nil, err
		}
		return uc.fromSample(params, ucLogger), nil
	}

	resp, err := uc.fetcher.FetchSearch(ctx, params.Values())
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			ucLogger.Warn("Marketplace API requires authentication", port.Fields{"error": err.Error()})
			return nil, err
		}
		ucLogger.Warn("Marketplace API unavailable, using sample data", port.Fields{"error": err.Error()})
		return uc.fromSample(params, ucLogger), nil
	}

	properties, err := uc.normalizer.NormalizeList(resp.Body)
	if err != nil {
		ucLogger.Error("Failed to normalize marketplace response, using sample data", err, port.Fields{"endpoint": resp.Endpoint})
		return uc.fromSample(params, ucLogger), nil
	}
	if len(properties) == 0 {
		ucLogger.Info("Marketplace API returned no listings, using sample data", port.Fields{"endpoint": resp.Endpoint})
		return uc.fromSample(params, ucLogger), nil
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"source": domain.SourceUpstream,
		"count":  len(properties),
	})
	return &domain.SearchResult{Properties: properties, Source: domain.SourceUpstream}, nil
}

func (uc *SearchPropertiesUseCase) fromSample(params domain.SearchParams, ucLogger port.LoggerPort) *domain.SearchResult {
	properties := filter.Apply(uc.sample.All(), params)
	ucLogger.Info("Use case finished successfully", port.Fields{
		"source": domain.SourceSample,
		"count":  len(properties),
	})
	return &domain.SearchResult{Properties: properties, Source: domain.SourceSample}
}

// waitMockDelay emulates network latency in mock mode.
func waitMockDelay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
