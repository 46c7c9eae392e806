package rest

import (
	"errors"
	"net/http"

	"github.com/IMRSIV/bank-albilad-demo/internal/contextkeys"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type PropertyHandler struct {
	searchUC        usecases_port.SearchPropertiesUseCase
	getDetailsUC    usecases_port.GetPropertyDetailsUseCase
	filterOptionsUC usecases_port.GetFilterOptionsUseCase
}

func NewPropertyHandler(searchUC usecases_port.SearchPropertiesUseCase,
	getDetailsUC usecases_port.GetPropertyDetailsUseCase,
	filterOptionsUC usecases_port.GetFilterOptionsUseCase) *PropertyHandler {
	return &PropertyHandler{
		searchUC:        searchUC,
		getDetailsUC:    getDetailsUC,
		filterOptionsUC: filterOptionsUC,
	}
}

// SearchProperties handles GET /api/v1/properties
func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	params := domain.ParseSearchParams(r.URL.Query())

	result, err := h.searchUC.Execute(r.Context(), params)
	if err != nil {
		writeFacadeError(w, r, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, SearchPropertiesResponse{
		Data:   result.Properties,
		Count:  len(result.Properties),
		Source: result.Source,
	})
}

// GetPropertyDetails handles GET /api/v1/properties/{id}
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteJSONError(w, http.StatusBadRequest, "Property id is required")
		return
	}

	result, err := h.getDetailsUC.Execute(r.Context(), id)
	if err != nil {
		writeFacadeError(w, r, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PropertyDetailsResponse{
		Data:   result.Property,
		Source: result.Source,
	})
}

// GetFilterOptions handles GET /api/v1/filters/options
func (h *PropertyHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts := h.filterOptionsUC.Execute(r.Context())

	RespondWithJSON(w, http.StatusOK, FilterOptionsResponse{
		Cities:        opts.Cities,
		PropertyTypes: opts.PropertyTypes,
		Purposes:      opts.Purposes,
		Price:         PriceRange{Min: opts.PriceMin, Max: opts.PriceMax},
		Count:         opts.Count,
	})
}

func writeFacadeError(w http.ResponseWriter, r *http.Request, err error) {
	var upstreamErr *domain.UpstreamError
	switch {
	case errors.As(err, &upstreamErr) && upstreamErr.Kind == domain.KindAuthRequired:
		RespondWithJSON(w, upstreamErr.Status, AuthErrorResponse{Error: msgAuthRequired, Status: upstreamErr.Status})
	case errors.Is(err, domain.ErrPropertyNotFound):
		WriteJSONError(w, http.StatusNotFound, msgPropertyNotFound)
	default:
		traceID := contextkeys.TraceIDFromContext(r.Context())
		contextkeys.LoggerFromContext(r.Context()).Error("Request failed", err, port.Fields{"path": r.URL.Path})
		RespondWithJSON(w, http.StatusInternalServerError, InternalFailureResponse{Error: msgInternalError, TraceID: traceID})
	}
}
