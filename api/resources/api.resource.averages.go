// FilePath: api/resources/api.resource.averages.go
package resources

import (
	"net/http"

	"github.com/gorilla/mux"
)

// AverageHandlers serves grouped averages
type AverageHandlers struct {
	service QueryService
}

// @Summary Average all readings
// @Description Mean value per room type and data type over all stored readings
// @Tags averages
// @Produce json
// @Success 200 {array} models.AggregatedEntry
// @Failure 503 {object} errors.APIError
// @Router /v1/averages [get]
func (h *AverageHandlers) AverageAll(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID()

	averages, err := h.service.AverageAll(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to compute averages").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, averages)
}

// @Summary Average readings of a room type
// @Description Mean value per room type and data type for one room type and Outside
// @Tags averages
// @Produce json
// @Param roomType path string true "Room type identifier or name"
// @Success 200 {array} models.AggregatedEntry
// @Failure 400 {object} errors.APIError
// @Failure 503 {object} errors.APIError
// @Router /v1/averages/room-types/{roomType} [get]
func (h *AverageHandlers) AverageByRoomType(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID()
	roomType := mux.Vars(r)["roomType"]

	averages, err := h.service.AverageByRoomType(r.Context(), roomType)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to compute averages").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, averages)
}
