// FilePath: api/resources/api.resource.health.go
package resources

import (
	"net/http"

	nuts "github.com/vaudience/go-nuts"
)

const (
	statusOK    = "OK"
	statusError = "ERROR"
)

// HealthResponse is the body of the liveness probes
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Version string `json:"version,omitempty"`
}

// HealthHandlers probes the row store
type HealthHandlers struct {
	service QueryService
}

// @Summary Ping
// @Description Runs SELECT 1 against the row store
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} HealthResponse
// @Router /ping [get]
func (h *HealthHandlers) Ping(w http.ResponseWriter, r *http.Request) {
	h.probe(w, r, "")
}

// @Summary Health
// @Description Runs SELECT 1 against the row store and reports the build version
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} HealthResponse
// @Router /v1/health [get]
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.probe(w, r, nuts.GetVersion())
}

func (h *HealthHandlers) probe(w http.ResponseWriter, r *http.Request, version string) {
	if err := h.service.Health(r.Context()); err != nil {
		nuts.L.Errorf("[API] Health check failed: %v", err)
		respondWithJSON(w, http.StatusInternalServerError, HealthResponse{
			Status:  statusError,
			Message: err.Error(),
			Version: version,
		})
		return
	}
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Version: version})
}
