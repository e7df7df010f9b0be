package resources

import "net/http"

// CategoryHandlers lists the configured categories
type CategoryHandlers struct {
	service QueryService
}

// @Summary List categories
// @Description Configured room types and data types with their identifiers
// @Tags categories
// @Produce json
// @Success 200 {object} models.CategoryListing
// @Router /v1/categories [get]
func (h *CategoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Categories())
}
