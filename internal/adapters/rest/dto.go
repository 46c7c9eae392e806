package rest

import "github.com/IMRSIV/bank-albilad-demo/internal/core/domain"

type ErrorResponse struct {
	Error string `json:"error"`
}

// InternalFailureResponse carries the trace id so a client can report it.
type InternalFailureResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// AuthErrorResponse is returned with the upstream 401/403 status.
type AuthErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// FallbackErrorResponse tells the client to switch to local data.
type FallbackErrorResponse struct {
	Error    string `json:"error"`
	Details  string `json:"details"`
	Fallback bool   `json:"fallback"`
}

type InternalErrorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Fallback bool   `json:"fallback"`
}

type SearchPropertiesResponse struct {
	Data   []domain.Property `json:"data"`
	Count  int               `json:"count"`
	Source domain.Source     `json:"source"`
}

type PropertyDetailsResponse struct {
	Data   domain.Property `json:"data"`
	Source domain.Source   `json:"source"`
}

type FilterOptionsResponse struct {
	Cities        []string   `json:"cities"`
	PropertyTypes []string   `json:"propertyTypes"`
	Purposes      []string   `json:"purposes"`
	Price         PriceRange `json:"price"`
	Count         int        `json:"count"`
}

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type APIStatusResponse struct {
	Available     bool   `json:"available"`
	Message       string `json:"message"`
	GuestMode     bool   `json:"guest_mode"`
	MockData      bool   `json:"mock_data"`
	APIConfigured bool   `json:"api_configured"`
}

type LivenessResponse struct {
	Status string `json:"status"`
}
