// Package sakanifetcher is the client of the Sakani marketplace API. The real
// API schema was never published, so the client probes an ordered list of
// candidate endpoints and mapper.go accepts several payload shapes.
package sakanifetcher

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/IMRSIV/bank-albilad-demo/internal/configs"

	"github.com/gocolly/colly/v2"
)

// SakaniFetcherAdapter is responsible for every interaction with the marketplace API.
type SakaniFetcherAdapter struct {
	// parent collector; every call works on a clone with its own callbacks
	collector *colly.Collector
	baseURL   *url.URL
	cfg       configs.SakaniConfig
}

func NewSakaniFetcherAdapter(cfg configs.SakaniConfig) (*SakaniFetcherAdapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("SakaniFetcherAdapter: %w", err)
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("SakaniFetcherAdapter: invalid base url: %w", err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = configs.DefaultUserAgent
	}

	// No AllowedDomains: the marketplace may redirect to another host.
	// Statuses are classified by probe, so colly reports every response.
	c := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.ParseHTTPErrorResponse(),
		colly.UserAgent(userAgent),
	)
	// clones share the jar; upstream sessions must not leak between requests
	c.DisableCookies()
	if cfg.Timeout > 0 {
		c.SetRequestTimeout(cfg.Timeout)
	}

	return &SakaniFetcherAdapter{
		collector: c,
		baseURL:   base,
		cfg:       cfg,
	}, nil
}

// applyHeaders sets the fixed header set of every marketplace request.
func (a *SakaniFetcherAdapter) applyHeaders(h *http.Header) {
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("Accept-Language", "ar")

	if a.cfg.APIKey != "" {
		h.Set("X-API-Key", a.cfg.APIKey)
	}
	if a.cfg.APIToken != "" {
		h.Set("Authorization", "Bearer "+a.cfg.APIToken)
	}

	// guest mode: look like a same-origin browser request
	if a.cfg.GuestMode() {
		referer := a.cfg.Referer
		if referer == "" {
			referer = configs.DefaultReferer
		}
		h.Set("X-Requested-With", "XMLHttpRequest")
		h.Set("Referer", referer)
	}
}

// resolve turns a host-relative candidate path into an absolute URL.
func (a *SakaniFetcherAdapter) resolve(path string, query url.Values) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", path, err)
	}
	u := a.baseURL.ResolveReference(ref)

	if len(query) > 0 {
		q := u.Query()
		for key, values := range query {
			for _, v := range values {
				if v != "" {
					q.Add(key, v)
				}
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
