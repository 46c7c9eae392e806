package usecases_port

import (
	"context"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
)

type SearchPropertiesUseCase interface {
	Execute(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error)
}
