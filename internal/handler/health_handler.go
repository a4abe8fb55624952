package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
	Tables int    `json:"tables"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.HealthService.Check(r.Context())
	if err != nil {
		h.Logger.Error("health check failed", "error", err.Error())
		WriteError(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, HealthResponse{Status: "ok", Tables: count}, http.StatusOK)
}
