package usecase

import (
	"context"
	"net/url"

	"github.com/IMRSIV/bank-albilad-demo/internal/contextkeys"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
)

// ProxySearchUseCase passes a search straight to the marketplace API. There is
// no fallback: the caller decides what to do with a failure.
type ProxySearchUseCase struct {
	fetcher port.SakaniFetcherPort
}

func NewProxySearchUseCase(fetcher port.SakaniFetcherPort) *ProxySearchUseCase {
	return &ProxySearchUseCase{fetcher: fetcher}
}

func (uc *ProxySearchUseCase) Execute(ctx context.Context, query url.Values) (*domain.UpstreamResponse, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ProxySearch",
		"query":    query.Encode(),
	})

	ucLogger.Info("Use case started", nil)

	resp, err := uc.fetcher.FetchSearch(ctx, query)
	if err != nil {
		ucLogger.Warn("Marketplace search failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"endpoint": resp.Endpoint,
		"attempts": resp.Attempts,
	})
	return resp, nil
}

type ProxyDetailsUseCase struct {
	fetcher port.SakaniFetcherPort
}

func NewProxyDetailsUseCase(fetcher port.SakaniFetcherPort) *ProxyDetailsUseCase {
	return &ProxyDetailsUseCase{fetcher: fetcher}
}

func (uc *ProxyDetailsUseCase) Execute(ctx context.Context, id string) (*domain.UpstreamResponse, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ProxyDetails",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	resp, err := uc.fetcher.FetchDetails(ctx, id)
	if err != nil {
		ucLogger.Warn("Marketplace property lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"endpoint": resp.Endpoint,
		"attempts": resp.Attempts,
	})
	return resp, nil
}
