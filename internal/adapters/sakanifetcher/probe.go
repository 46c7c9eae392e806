package sakanifetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"

	"github.com/gocolly/colly/v2"
)

// attemptOutcome - result of one GET against one candidate endpoint.
type attemptOutcome struct {
	status int
	body   []byte
	err    error
}

func (o attemptOutcome) ok() bool {
	return o.err == nil && o.status >= 200 && o.status < 300
}

// visit performs a single GET through a fresh clone of the parent collector.
func (a *SakaniFetcherAdapter) visit(ctx context.Context, targetURL string, logger port.LoggerPort) attemptOutcome {
	collector := a.collector.Clone()
	collector.Context = ctx
	collector.ParseHTTPErrorResponse = true

	var outcome attemptOutcome

	collector.OnRequest(func(r *colly.Request) {
		a.applyHeaders(r.Headers)
		logger.Debug("Making request to marketplace API", port.Fields{"url": r.URL.String()})
	})

	collector.OnResponse(func(r *colly.Response) {
		outcome.status = r.StatusCode
		outcome.body = r.Body
	})

	// only transport failures land here; status is 0 when no response was received
	collector.OnError(func(r *colly.Response, err error) {
		outcome.status = r.StatusCode
		outcome.body = r.Body
		outcome.err = err
	})

	if err := collector.Visit(targetURL); err != nil && outcome.err == nil {
		outcome.err = err
	}
	collector.Wait()

	return outcome
}

// probe tries every candidate in order and returns the first 2xx response
// carrying a JSON body. 404 and any other failure move on to the next
// candidate; 401/403 stop the probe immediately. notFound selects the error kind reported when
// every candidate fails.
func (a *SakaniFetcherAdapter) probe(ctx context.Context, candidates []string, logger port.LoggerPort, notFound domain.UpstreamErrorKind) (*domain.UpstreamResponse, error) {
	var lastErr error
	attempts := 0

	for _, targetURL := range candidates {
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}

		attempts++
		outcome := a.visit(ctx, targetURL, logger)

		switch {
		case outcome.ok() && !json.Valid(outcome.body):
			lastErr = fmt.Errorf("request to %s returned status %d with a non-JSON body", targetURL, outcome.status)
			logger.Warn("Marketplace endpoint answered with a non-JSON body, trying next candidate", port.Fields{
				"url": targetURL, "status": outcome.status,
			})

		case outcome.ok():
			logger.Info("Marketplace endpoint answered", port.Fields{
				"url": targetURL, "status": outcome.status, "attempts": attempts,
			})
			return &domain.UpstreamResponse{
				Status:   outcome.status,
				Body:     outcome.body,
				Endpoint: targetURL,
				Attempts: attempts,
			}, nil

		case outcome.status == http.StatusNotFound:
			logger.Debug("Endpoint not found, trying next candidate", port.Fields{"url": targetURL})
			continue

		case outcome.status == http.StatusUnauthorized || outcome.status == http.StatusForbidden:
			logger.Warn("Marketplace API requires authentication, giving up", port.Fields{
				"url": targetURL, "status": outcome.status,
			})
			return nil, &domain.UpstreamError{
				Kind:     domain.KindAuthRequired,
				Status:   outcome.status,
				Attempts: attempts,
			}

		default:
			if outcome.err != nil {
				lastErr = fmt.Errorf("request to %s failed with status %d: %w", targetURL, outcome.status, outcome.err)
			} else {
				lastErr = fmt.Errorf("request to %s failed with status %d", targetURL, outcome.status)
			}
			logger.Warn("Marketplace endpoint failed, trying next candidate", port.Fields{
				"url": targetURL, "status": outcome.status, "error": lastErr.Error(),
			})
		}
	}

	details := "All endpoints failed"
	if lastErr != nil {
		details = lastErr.Error()
	}
	return nil, &domain.UpstreamError{
		Kind:     notFound,
		Status:   http.StatusNotFound,
		Details:  details,
		Attempts: attempts,
	}
}
