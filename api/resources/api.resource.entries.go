// FilePath: api/resources/api.resource.entries.go
package resources

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/guitarkeep/hub/internal/models"
)

// EntryHandlers serves reading listings
type EntryHandlers struct {
	service QueryService
}

// @Summary List readings
// @Description List every reading, oldest first, optionally bounded in time
// @Tags entries
// @Produce json
// @Param start_time query string false "Inclusive lower bound (RFC3339)"
// @Param end_time query string false "Inclusive upper bound (RFC3339)"
// @Success 200 {array} models.QueryResultEntry
// @Failure 400 {object} errors.APIError
// @Failure 503 {object} errors.APIError
// @Router /v1/entries [get]
func (h *EntryHandlers) ListEntries(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, func(tr models.TimeRange) ([]models.QueryResultEntry, error) {
		return h.service.ListEntries(r.Context(), tr)
	})
}

// @Summary List readings of a room type
// @Description List the readings of one room type together with the readings taken outside
// @Tags entries
// @Produce json
// @Param roomType path string true "Room type identifier or name"
// @Param start_time query string false "Inclusive lower bound (RFC3339)"
// @Param end_time query string false "Inclusive upper bound (RFC3339)"
// @Success 200 {array} models.QueryResultEntry
// @Failure 400 {object} errors.APIError
// @Failure 503 {object} errors.APIError
// @Router /v1/entries/room-types/{roomType} [get]
func (h *EntryHandlers) ListByRoomType(w http.ResponseWriter, r *http.Request) {
	roomType := mux.Vars(r)["roomType"]
	h.list(w, r, func(tr models.TimeRange) ([]models.QueryResultEntry, error) {
		return h.service.ListEntriesByRoomType(r.Context(), roomType, tr)
	})
}

// @Summary List readings of a data type
// @Tags entries
// @Produce json
// @Param dataType path string true "Data type identifier or name"
// @Param start_time query string false "Inclusive lower bound (RFC3339)"
// @Param end_time query string false "Inclusive upper bound (RFC3339)"
// @Success 200 {array} models.QueryResultEntry
// @Failure 400 {object} errors.APIError
// @Failure 503 {object} errors.APIError
// @Router /v1/entries/data-types/{dataType} [get]
func (h *EntryHandlers) ListByDataType(w http.ResponseWriter, r *http.Request) {
	dataType := mux.Vars(r)["dataType"]
	h.list(w, r, func(tr models.TimeRange) ([]models.QueryResultEntry, error) {
		return h.service.ListEntriesByDataType(r.Context(), dataType, tr)
	})
}

func (h *EntryHandlers) list(w http.ResponseWriter, r *http.Request, query func(models.TimeRange) ([]models.QueryResultEntry, error)) {
	requestID := newRequestID()

	tr, apiErr := decodeTimeRange(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	entries, err := query(tr)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to list entries").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}
