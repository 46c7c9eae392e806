package usecases_port

import (
	"context"
	"net/url"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
)

// ProxySearchUseCase and ProxyDetailsUseCase return the marketplace payload untouched.
type ProxySearchUseCase interface {
	Execute(ctx context.Context, query url.Values) (*domain.UpstreamResponse, error)
}

type ProxyDetailsUseCase interface {
	Execute(ctx context.Context, id string) (*domain.UpstreamResponse, error)
}

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) domain.FilterOptions
}
