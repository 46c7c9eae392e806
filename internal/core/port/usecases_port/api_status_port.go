package usecases_port

import (
	"context"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
)

type APIStatusUseCase interface {
	IsAPIConfigured() bool
	IsGuestMode() bool
	Execute(ctx context.Context) domain.APIStatus
}
