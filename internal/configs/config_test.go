package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "sakani-search", cfg.AppName)
	assert.Equal(t, "8080", cfg.Rest.Port)
	assert.Equal(t, DefaultBaseURL, cfg.Sakani.BaseURL)
	assert.False(t, cfg.Sakani.UseMockData)
	assert.True(t, cfg.Sakani.GuestMode())
	assert.Equal(t, DefaultSearchEndpoints, cfg.Sakani.SearchEndpoints)
	assert.Equal(t, DefaultDetailEndpoints, cfg.Sakani.DetailEndpoints)
	assert.Equal(t, 30*time.Second, cfg.Sakani.Timeout)
	assert.False(t, cfg.FluentBit.Enabled)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SAKANI_API_BASE_URL", "http://upstream.local/api")
	t.Setenv("SAKANI_API_TOKEN", "secret")
	t.Setenv("USE_MOCK_DATA", "true")
	t.Setenv("SAKANI_SEARCH_ENDPOINTS", " /a , ,/b")
	t.Setenv("SAKANI_TIMEOUT", "2s")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "http://upstream.local/api", cfg.Sakani.BaseURL)
	assert.Equal(t, "secret", cfg.Sakani.APIToken)
	assert.False(t, cfg.Sakani.GuestMode())
	assert.True(t, cfg.Sakani.UseMockData)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Sakani.SearchEndpoints)
	assert.Equal(t, 2*time.Second, cfg.Sakani.Timeout)
	assert.Equal(t, "9090", cfg.Rest.Port)
}

func TestLoadConfig_LegacyNames(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_SAKANI_API_KEY", "legacy-key")
	t.Setenv("NEXT_PUBLIC_USE_MOCK_DATA", "true")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "legacy-key", cfg.Sakani.APIKey)
	assert.True(t, cfg.Sakani.UseMockData)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SAKANI_API_KEY=from-file\nHTTP_PORT=7070\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SAKANI_API_KEY")
		os.Unsetenv("HTTP_PORT")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Sakani.APIKey)
	assert.Equal(t, "7070", cfg.Rest.Port)
}

func TestLoadConfig_InvalidBaseURL(t *testing.T) {
	t.Setenv("SAKANI_API_BASE_URL", "ftp://nope")

	_, err := LoadConfig(missingEnvFile(t))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestSakaniConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *SakaniConfig)
		wantErr bool
	}{
		{name: "default", mutate: func(*SakaniConfig) {}},
		{name: "no search endpoints", mutate: func(c *SakaniConfig) { c.SearchEndpoints = nil }, wantErr: true},
		{name: "no detail endpoints", mutate: func(c *SakaniConfig) { c.DetailEndpoints = nil }, wantErr: true},
		{name: "detail without placeholder", mutate: func(c *SakaniConfig) { c.DetailEndpoints = []string{"/properties"} }, wantErr: true},
		{name: "relative base url", mutate: func(c *SakaniConfig) { c.BaseURL = "/api" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSakaniConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
