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

const (
	msgAuthRequired     = "Authentication required"
	msgNoValidEndpoint  = "No valid API endpoint found"
	msgPropertyNotFound = "Property not found"
	msgInternalError    = "Internal server error"
)

// SakaniProxyHandler exposes the marketplace API to browsers: the upstream
// body is relayed untouched and failures carry a "fallback" marker.
type SakaniProxyHandler struct {
	proxySearchUC  usecases_port.ProxySearchUseCase
	proxyDetailsUC usecases_port.ProxyDetailsUseCase
}

func NewSakaniProxyHandler(proxySearchUC usecases_port.ProxySearchUseCase,
	proxyDetailsUC usecases_port.ProxyDetailsUseCase) *SakaniProxyHandler {
	return &SakaniProxyHandler{
		proxySearchUC:  proxySearchUC,
		proxyDetailsUC: proxyDetailsUC,
	}
}

// Search handles GET /api/sakani/search
func (h *SakaniProxyHandler) Search(w http.ResponseWriter, r *http.Request) {
	resp, err := h.proxySearchUC.Execute(r.Context(), r.URL.Query())
	if err != nil {
		h.writeProxyError(w, r, err, msgNoValidEndpoint)
		return
	}
	writeUpstreamBody(w, resp)
}

// PropertyDetails handles GET /api/sakani/property/{id}
func (h *SakaniProxyHandler) PropertyDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.proxyDetailsUC.Execute(r.Context(), id)
	if err != nil {
		h.writeProxyError(w, r, err, msgPropertyNotFound)
		return
	}
	writeUpstreamBody(w, resp)
}

// Preflight answers OPTIONS on the passthrough routes.
func (h *SakaniProxyHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	setProxyCORSHeaders(w)
	w.WriteHeader(http.StatusOK)
}

func writeUpstreamBody(w http.ResponseWriter, resp *domain.UpstreamResponse) {
	setProxyCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.Body)
}

func (h *SakaniProxyHandler) writeProxyError(w http.ResponseWriter, r *http.Request, err error, exhaustedMessage string) {
	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.Kind == domain.KindAuthRequired {
			RespondWithJSON(w, upstreamErr.Status, AuthErrorResponse{Error: msgAuthRequired, Status: upstreamErr.Status})
			return
		}
		RespondWithJSON(w, http.StatusNotFound, FallbackErrorResponse{
			Error:    exhaustedMessage,
			Details:  upstreamErr.Details,
			Fallback: true,
		})
		return
	}

	contextkeys.LoggerFromContext(r.Context()).Error("Proxy error", err, port.Fields{"path": r.URL.Path})
	RespondWithJSON(w, http.StatusInternalServerError, InternalErrorResponse{
		Error:    msgInternalError,
		Message:  err.Error(),
		Fallback: true,
	})
}
