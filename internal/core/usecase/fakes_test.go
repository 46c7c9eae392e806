package usecase

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/IMRSIV/bank-albilad-demo/internal/configs"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
)

// fakeFetcher returns canned answers and records the calls it received.
type fakeFetcher struct {
	mu sync.Mutex

	searchResp *domain.UpstreamResponse
	searchErr  error
	detailResp *domain.UpstreamResponse
	detailErr  error
	healthErr  error

	searchQueries []url.Values
	detailIDs     []string
	healthCalls   int
}

func (f *fakeFetcher) FetchSearch(_ context.Context, query url.Values) (*domain.UpstreamResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchQueries = append(f.searchQueries, query)
	return f.searchResp, f.searchErr
}

func (f *fakeFetcher) FetchDetails(_ context.Context, id string) (*domain.UpstreamResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailIDs = append(f.detailIDs, id)
	return f.detailResp, f.detailErr
}

func (f *fakeFetcher) CheckHealth(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.healthCalls++
	return f.healthErr
}

func (f *fakeFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searchQueries) + len(f.detailIDs) + f.healthCalls
}

func okResponse(body string) *domain.UpstreamResponse {
	return &domain.UpstreamResponse{
		Status:   http.StatusOK,
		Body:     []byte(body),
		Endpoint: "https://api.example.com/properties/search",
		Attempts: 1,
	}
}

func unavailable(details string) error {
	return &domain.UpstreamError{Kind: domain.KindUnavailable, Status: http.StatusNotFound, Details: details, Attempts: 10}
}

func notFound() error {
	return &domain.UpstreamError{Kind: domain.KindNotFound, Status: http.StatusNotFound, Details: "All endpoints failed", Attempts: 10}
}

func authRequired(status int) error {
	return &domain.UpstreamError{Kind: domain.KindAuthRequired, Status: status, Attempts: 1}
}

func liveConfig() configs.SakaniConfig {
	cfg := configs.DefaultSakaniConfig()
	cfg.BaseURL = "https://api.example.com/api/v1"
	return cfg
}

func mockConfig() configs.SakaniConfig {
	cfg := configs.DefaultSakaniConfig()
	cfg.UseMockData = true
	cfg.MockSearchDelay = 0
	cfg.MockDetailsDelay = 0
	return cfg
}
