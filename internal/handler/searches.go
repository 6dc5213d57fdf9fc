package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/raayanhq/raayan/internal/domain"
)

type saveSearchRequest struct {
	Category       domain.Category `json:"category" validate:"required,oneof=food travel"`
	Query          string          `json:"query" validate:"required"`
	Results        string          `json:"results" validate:"required"`
	Recommendation string          `json:"recommendation" validate:"required"`
}

// POST /searches
func (h *Handler) SaveSearch(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req saveSearchRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.service.SaveSearch(r.Context(), &domain.SavedSearch{
		UserID:         uid,
		Category:       req.Category,
		Query:          req.Query,
		Results:        req.Results,
		Recommendation: req.Recommendation,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// GET /searches
func (h *Handler) ListSearches(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListSearches(r.Context(), uid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if items == nil {
		items = []domain.SavedSearch{}
	}
	writeJSON(w, http.StatusOK, items)
}

// DELETE /searches/{searchID}
func (h *Handler) DeleteSearch(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "searchID"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid search id")
		return
	}

	if err := h.service.DeleteSearch(r.Context(), uid, id); err != nil {
		if errors.Is(err, domain.ErrSearchNotFound) {
			writeError(w, http.StatusNotFound, "search_not_found", "Search not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
