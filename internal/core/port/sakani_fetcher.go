package port

import (
	"context"
	"net/url"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
)

// SakaniFetcherPort talks to the marketplace API and returns its raw answer.
// FetchSearch forwards every non-empty query value to the API.
type SakaniFetcherPort interface {
	FetchSearch(ctx context.Context, query url.Values) (*domain.UpstreamResponse, error)
	FetchDetails(ctx context.Context, id string) (*domain.UpstreamResponse, error)
	CheckHealth(ctx context.Context) error
}

// PropertyNormalizerPort converts a raw marketplace payload into canonical records.
type PropertyNormalizerPort interface {
	// NormalizeList maps a search payload; unknown shapes give an empty list.
	NormalizeList(raw []byte) ([]domain.Property, error)
	// NormalizeItem maps a single-record payload; ok is false when it holds no record.
	NormalizeItem(raw []byte) (p domain.Property, ok bool, err error)
}

// SampleDatasetPort is the read-only fallback listing set.
type SampleDatasetPort interface {
	All() []domain.Property
	FindByID(id string) (domain.Property, bool)
	FilterOptions() domain.FilterOptions
}
