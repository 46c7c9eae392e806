package usecase

import (
	"context"
	"errors"

	"github.com/IMRSIV/bank-albilad-demo/internal/configs"
	"github.com/IMRSIV/bank-albilad-demo/internal/contextkeys"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	cfg        configs.SakaniConfig
	fetcher    port.SakaniFetcherPort
	normalizer port.PropertyNormalizerPort
	sample     port.SampleDatasetPort
}

func NewGetPropertyDetailsUseCase(
	cfg configs.SakaniConfig,
	fetcher port.SakaniFetcherPort,
	normalizer port.PropertyNormalizerPort,
	sample port.SampleDatasetPort,
) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{
		cfg:        cfg,
		fetcher:    fetcher,
		normalizer: normalizer,
		sample:     sample,
	}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, id string) (*domain.DetailsResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	if uc.cfg.UseMockData {
		if err := waitMockDelay(ctx, uc.cfg.MockDetailsDelay); err != nil {
			ucLogger.Warn("Request cancelled during mock delay", port.Fields{"error": err.Error()})
			return nil, err
		}
		return uc.fromSample(id, ucLogger)
	}

	resp, err := uc.fetcher.FetchDetails(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			ucLogger.Warn("Marketplace API requires authentication", port.Fields{"error": err.Error()})
			return nil, err
		}
		ucLogger.Warn("Property not available from marketplace API, using sample data", port.Fields{"error": err.Error()})
		return uc.fromSample(id, ucLogger)
	}

	property, ok, err := uc.normalizer.NormalizeItem(resp.Body)
	if err != nil {
		ucLogger.Error("Failed to normalize marketplace response, using sample data", err, port.Fields{"endpoint": resp.Endpoint})
		return uc.fromSample(id, ucLogger)
	}
	if !ok {
		ucLogger.Info("Marketplace response holds no property, using sample data", port.Fields{"endpoint": resp.Endpoint})
		return uc.fromSample(id, ucLogger)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"source": domain.SourceUpstream})
	return &domain.DetailsResult{Property: property, Source: domain.SourceUpstream}, nil
}

func (uc *GetPropertyDetailsUseCase) fromSample(id string, ucLogger port.LoggerPort) (*domain.DetailsResult, error) {
	property, ok := uc.sample.FindByID(id)
	if !ok {
		ucLogger.Info("Property not found", nil)
		return nil, domain.ErrPropertyNotFound
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"source": domain.SourceSample})
	return &domain.DetailsResult{Property: property, Source: domain.SourceSample}, nil
}
