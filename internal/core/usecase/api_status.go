package usecase

import (
	"context"

	"github.com/IMRSIV/bank-albilad-demo/internal/configs"
	"github.com/IMRSIV/bank-albilad-demo/internal/contextkeys"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
)

const (
	MessageMockData  = "Using mock data. Set USE_MOCK_DATA=false to use real API"
	MessageGuestMode = "Guest mode: Accessing public API endpoints without authentication"
	MessageAvailable = "API is available"
)

// APIStatusUseCase reports which mode the service runs in and whether the
// marketplace API answers. The report is informational only.
type APIStatusUseCase struct {
	cfg     configs.SakaniConfig
	fetcher port.SakaniFetcherPort
}

func NewAPIStatusUseCase(cfg configs.SakaniConfig, fetcher port.SakaniFetcherPort) *APIStatusUseCase {
	return &APIStatusUseCase{cfg: cfg, fetcher: fetcher}
}

func (uc *APIStatusUseCase) IsAPIConfigured() bool {
	return !uc.cfg.UseMockData
}

func (uc *APIStatusUseCase) IsGuestMode() bool {
	return uc.cfg.GuestMode() && !uc.cfg.UseMockData
}

func (uc *APIStatusUseCase) Execute(ctx context.Context) domain.APIStatus {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "APIStatus"})

	status := domain.APIStatus{
		GuestMode:     uc.IsGuestMode(),
		MockData:      uc.cfg.UseMockData,
		APIConfigured: uc.IsAPIConfigured(),
	}

	switch {
	case uc.cfg.UseMockData:
		status.Message = MessageMockData
	case status.GuestMode:
		// guest access is assumed to work; the public API has no health route
		status.Available = true
		status.Message = MessageGuestMode
	default:
		if err := uc.fetcher.CheckHealth(ctx); err != nil {
			ucLogger.Warn("Marketplace API health check failed", port.Fields{"error": err.Error()})
			status.Message = "API check failed: " + err.Error()
		} else {
			status.Available = true
			status.Message = MessageAvailable
		}
	}

	ucLogger.Info("API status checked", port.Fields{"available": status.Available})
	return status
}
