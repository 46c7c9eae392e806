package rest

import (
	"net/http"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/port/usecases_port"
)

type StatusHandler struct {
	apiStatusUC usecases_port.APIStatusUseCase
}

func NewStatusHandler(apiStatusUC usecases_port.APIStatusUseCase) *StatusHandler {
	return &StatusHandler{apiStatusUC: apiStatusUC}
}

// GetStatus handles GET /api/v1/status
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.apiStatusUC.Execute(r.Context())

	RespondWithJSON(w, http.StatusOK, APIStatusResponse{
		Available:     status.Available,
		Message:       status.Message,
		GuestMode:     status.GuestMode,
		MockData:      status.MockData,
		APIConfigured: status.APIConfigured,
	})
}

// Liveness handles GET /healthz
func (h *StatusHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, LivenessResponse{Status: "ok"})
}
