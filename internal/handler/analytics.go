package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/raayanhq/raayan/internal/domain"
)

// GET /analytics/spend?start=<unix_ms>&end=<unix_ms>
func (h *Handler) SpendSummary(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	start, ok := parseTimeParam(w, r, "start")
	if !ok {
		return
	}
	end, ok := parseTimeParam(w, r, "end")
	if !ok {
		return
	}

	summary, err := h.service.SpendSummary(r.Context(), uid, start, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GET /analytics/savings
func (h *Handler) SavingsAnalysis(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	analysis, err := h.service.SavingsAnalysis(r.Context(), uid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// GET /analytics/platforms
func (h *Handler) TopPlatforms(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	platforms, err := h.service.TopPlatforms(r.Context(), uid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if platforms == nil {
		platforms = []domain.PlatformSpend{}
	}
	writeJSON(w, http.StatusOK, platforms)
}

func parseTimeParam(w http.ResponseWriter, r *http.Request, name string) (*time.Time, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, true
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil || ms < 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid "+name+" parameter")
		return nil, false
	}
	t := time.UnixMilli(ms).UTC()
	return &t, true
}
