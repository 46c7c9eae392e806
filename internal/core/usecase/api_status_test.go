package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/IMRSIV/bank-albilad-demo/internal/adapters/sampledata"

	"github.com/stretchr/testify/assert"
)

func TestAPIStatus(t *testing.T) {
	tests := []struct {
		name           string
		useMock        bool
		withKey        bool
		healthErr      error
		wantAvailable  bool
		wantMessage    string
		wantGuest      bool
		wantConfigured bool
		wantHealthCall bool
	}{
		{name: "mock data", useMock: true, wantMessage: MessageMockData},
		{name: "mock data with credentials", useMock: true, withKey: true, wantMessage: MessageMockData},
		{name: "guest mode", wantAvailable: true, wantMessage: MessageGuestMode, wantGuest: true, wantConfigured: true},
		{name: "credentials and healthy", withKey: true, wantAvailable: true, wantMessage: MessageAvailable, wantConfigured: true, wantHealthCall: true},
		{
			name:           "credentials and unhealthy",
			withKey:        true,
			healthErr:      errors.New("timeout"),
			wantMessage:    "API check failed: timeout",
			wantConfigured: true,
			wantHealthCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := liveConfig()
			cfg.UseMockData = tt.useMock
			if tt.withKey {
				cfg.APIKey = "secret"
			}
			fetcher := &fakeFetcher{healthErr: tt.healthErr}
			uc := NewAPIStatusUseCase(cfg, fetcher)

			status := uc.Execute(context.Background())

			assert.Equal(t, tt.wantAvailable, status.Available)
			assert.Equal(t, tt.wantMessage, status.Message)
			assert.Equal(t, tt.wantGuest, status.GuestMode)
			assert.Equal(t, tt.useMock, status.MockData)
			assert.Equal(t, tt.wantConfigured, status.APIConfigured)
			assert.Equal(t, tt.wantGuest, uc.IsGuestMode())
			assert.Equal(t, tt.wantConfigured, uc.IsAPIConfigured())
			assert.Equal(t, tt.wantHealthCall, fetcher.healthCalls == 1)
		})
	}
}

func TestGetFilterOptions(t *testing.T) {
	sample := sampledata.New()
	uc := NewGetFilterOptionsUseCase(sample)

	opts := uc.Execute(context.Background())
	assert.Equal(t, sample.FilterOptions(), opts)
	assert.Equal(t, 100, opts.Count)
	assert.Len(t, opts.Cities, 8)
}
