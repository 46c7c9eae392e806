package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrAuthRequired        = errors.New("authentication required")
	ErrUpstreamUnavailable = errors.New("no valid api endpoint found")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// UpstreamErrorKind classifies why the marketplace API gave no usable answer.
type UpstreamErrorKind int

const (
	KindUnavailable UpstreamErrorKind = iota
	KindNotFound
	KindAuthRequired
)

// UpstreamError is returned by the marketplace client when no candidate endpoint
// produced a successful response.
type UpstreamError struct {
	Kind     UpstreamErrorKind
	Status   int    // HTTP status to report to the caller
	Details  string // last recorded failure, if any
	Attempts int
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case KindAuthRequired:
		return fmt.Sprintf("upstream: authentication required (status %d)", e.Status)
	case KindNotFound:
		return fmt.Sprintf("upstream: property not found after %d attempts: %s", e.Attempts, e.Details)
	default:
		return fmt.Sprintf("upstream: no valid api endpoint found after %d attempts: %s", e.Attempts, e.Details)
	}
}

func (e *UpstreamError) Unwrap() error {
	switch e.Kind {
	case KindAuthRequired:
		return ErrAuthRequired
	case KindNotFound:
		return ErrPropertyNotFound
	default:
		return ErrUpstreamUnavailable
	}
}

// UpstreamResponse - first successful answer of the marketplace API.
type UpstreamResponse struct {
	Status   int
	Body     []byte
	Endpoint string
	Attempts int
}
