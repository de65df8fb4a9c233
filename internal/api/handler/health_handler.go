package handler

import "net/http"

// healthResponse is the JSON body for GET /health.
type healthResponse struct {
	Status string `json:"status"`
}

// HealthHandler serves the liveness probe endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Health handles GET /health
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  healthResponse
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
