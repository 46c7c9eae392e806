package configs

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL   = "https://api.sakani.sa/api/v1"
	DefaultUserAgent = "Mozilla/5.0 (compatible; BankAlBilad/1.0)"
	DefaultReferer   = "https://sakani.sa"
)

// DefaultSearchEndpoints are the list-style paths tried, in order, for a search.
var DefaultSearchEndpoints = []string{
	"/properties/search",
	"/marketplace/search",
	"/listings/search",
	"/api/properties",
	"/api/marketplace",
	"/public/properties",
	"/public/marketplace",
	"/guest/properties",
	"/v1/properties",
	"/v1/marketplace",
}

// DefaultDetailEndpoints are the single-record paths; {id} is replaced by the
// escaped property id.
var DefaultDetailEndpoints = []string{
	"/properties/{id}",
	"/marketplace/{id}",
	"/listings/{id}",
	"/api/properties/{id}",
	"/api/marketplace/{id}",
	"/public/properties/{id}",
	"/public/marketplace/{id}",
	"/guest/properties/{id}",
	"/v1/properties/{id}",
	"/v1/marketplace/{id}",
}

// SakaniConfig - everything the marketplace client and the search facade need.
// Built once at startup and passed down explicitly.
type SakaniConfig struct {
	BaseURL  string
	APIKey   string
	APIToken string
	// UseMockData disables every live call and serves the sample set.
	UseMockData bool

	SearchEndpoints []string
	DetailEndpoints []string

	UserAgent     string
	Referer       string
	Timeout       time.Duration
	HealthTimeout time.Duration

	MockSearchDelay  time.Duration
	MockDetailsDelay time.Duration
}

// DefaultSakaniConfig returns a guest-mode configuration against the public API.
func DefaultSakaniConfig() SakaniConfig {
	return SakaniConfig{
		BaseURL:          DefaultBaseURL,
		SearchEndpoints:  append([]string(nil), DefaultSearchEndpoints...),
		DetailEndpoints:  append([]string(nil), DefaultDetailEndpoints...),
		UserAgent:        DefaultUserAgent,
		Referer:          DefaultReferer,
		Timeout:          30 * time.Second,
		HealthTimeout:    5 * time.Second,
		MockSearchDelay:  500 * time.Millisecond,
		MockDetailsDelay: 300 * time.Millisecond,
	}
}

// GuestMode reports whether no credentials are configured.
func (c SakaniConfig) GuestMode() bool {
	return c.APIKey == "" && c.APIToken == ""
}

func (c SakaniConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base url %q: %v", domain.ErrInvalidConfig, c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: base url %q must be http or https", domain.ErrInvalidConfig, c.BaseURL)
	}
	if len(c.SearchEndpoints) == 0 {
		return fmt.Errorf("%w: no search endpoints configured", domain.ErrInvalidConfig)
	}
	if len(c.DetailEndpoints) == 0 {
		return fmt.Errorf("%w: no detail endpoints configured", domain.ErrInvalidConfig)
	}
	for _, e := range c.DetailEndpoints {
		if !strings.Contains(e, "{id}") {
			return fmt.Errorf("%w: detail endpoint %q has no {id} placeholder", domain.ErrInvalidConfig, e)
		}
	}
	return nil
}

type RestConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	AppName      string
	Rest         RestConfig
	Sakani       SakaniConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig reads the configuration from the environment. A .env file is
// loaded first when present; a missing file is not an error.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v. Using environment variables.\n", envPath, err)
	}

	cfg := &AppConfig{
		AppName: getEnv("APP_NAME", "sakani-search"),
	}

	cfg.Rest.Port = getEnv("HTTP_PORT", "8080")
	cfg.Rest.CORSAllowedOrigins = getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"})

	sakani := DefaultSakaniConfig()
	sakani.BaseURL = getEnvWithFallback("SAKANI_API_BASE_URL", "NEXT_PUBLIC_SAKANI_API_BASE_URL", DefaultBaseURL)
	sakani.APIKey = getEnvWithFallback("SAKANI_API_KEY", "NEXT_PUBLIC_SAKANI_API_KEY", "")
	sakani.APIToken = getEnvWithFallback("SAKANI_API_TOKEN", "NEXT_PUBLIC_SAKANI_API_TOKEN", "")
	sakani.UseMockData = getEnvAsBool("USE_MOCK_DATA", getEnvAsBool("NEXT_PUBLIC_USE_MOCK_DATA", false))
	sakani.SearchEndpoints = getEnvAsSlice("SAKANI_SEARCH_ENDPOINTS", sakani.SearchEndpoints)
	sakani.DetailEndpoints = getEnvAsSlice("SAKANI_DETAIL_ENDPOINTS", sakani.DetailEndpoints)
	sakani.Timeout = getEnvAsDuration("SAKANI_TIMEOUT", sakani.Timeout)
	sakani.MockSearchDelay = getEnvAsDuration("MOCK_SEARCH_DELAY", sakani.MockSearchDelay)
	sakani.MockDetailsDelay = getEnvAsDuration("MOCK_DETAILS_DELAY", sakani.MockDetailsDelay)
	if err := sakani.Validate(); err != nil {
		return nil, err
	}
	cfg.Sakani = sakani

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnv("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnv("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

// getEnv - reads an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvWithFallback(key, legacyKey, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return getEnv(legacyKey, fallback)
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool reads a variable as bool or returns the default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return val
}

// getEnvAsSlice splits a comma-separated variable, dropping empty items.
func getEnvAsSlice(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
