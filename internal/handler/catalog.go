package handler

import (
	"net/http"

	"github.com/raayanhq/raayan/internal/domain"
)

// GET /restaurants/search?q=&city=
func (h *Handler) SuggestRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	city := r.URL.Query().Get("city")

	items, err := h.service.SuggestRestaurants(r.Context(), q, city)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if items == nil {
		items = []domain.Restaurant{}
	}
	writeJSON(w, http.StatusOK, items)
}

// GET /locations/search?q=
func (h *Handler) SuggestLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.SuggestLocations(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	writeJSON(w, http.StatusOK, locations)
}
