package usecases_port

import (
	"context"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, id string) (*domain.DetailsResult, error)
}
