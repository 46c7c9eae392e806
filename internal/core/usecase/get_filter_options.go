package usecase

import (
	"context"

	"github.com/IMRSIV/bank-albilad-demo/internal/contextkeys"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
)

type GetFilterOptionsUseCase struct {
	sample port.SampleDatasetPort
}

func NewGetFilterOptionsUseCase(sample port.SampleDatasetPort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{sample: sample}
}

// Execute collects the options offered by the search form: distinct cities,
// types and purposes plus the price range of the sample set.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) domain.FilterOptions {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetFilterOptions"})

	opts := uc.sample.FilterOptions()

	ucLogger.Debug("Filter options collected", port.Fields{
		"cities": len(opts.Cities),
		"count":  opts.Count,
	})
	return opts
}
