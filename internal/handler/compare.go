package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/raayanhq/raayan/internal/domain"
	"github.com/raayanhq/raayan/internal/service"
)

type foodCompareRequest struct {
	Location   string            `json:"location" validate:"required"`
	Restaurant string            `json:"restaurant"`
	Cart       []domain.CartLine `json:"selectedItems" validate:"dive"`
	IsNewUser  *bool             `json:"isNewUser"`
}

type travelCompareRequest struct {
	Source      string `json:"source" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

// POST /compare/food
func (h *Handler) CompareFood(w http.ResponseWriter, r *http.Request) {
	var req foodCompareRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	// Absent flag means new user, matching the comparison UI's default.
	isNewUser := true
	if req.IsNewUser != nil {
		isNewUser = *req.IsNewUser
	}

	result, err := h.service.CompareFood(r.Context(), service.FoodCompareRequest{
		Location:   req.Location,
		Restaurant: req.Restaurant,
		Cart:       req.Cart,
		IsNewUser:  isNewUser,
	})
	if err != nil {
		writeCompareError(w, err, "No restaurants found for this search")
		return
	}

	writeJSON(w, http.StatusOK, FoodCompareResponse{
		Results:        result.Analysis.Results,
		Recommendation: result.Analysis.Recommendation,
		Metadata:       compareMeta(result.CacheHit, len(result.Analysis.Results)),
	})
}

// POST /compare/travel
func (h *Handler) CompareTravel(w http.ResponseWriter, r *http.Request) {
	var req travelCompareRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.CompareTravel(r.Context(), service.TravelCompareRequest{
		Source:      req.Source,
		Destination: req.Destination,
		Date:        req.Date,
	})
	if err != nil {
		writeCompareError(w, err, "No buses found for this route")
		return
	}

	writeJSON(w, http.StatusOK, TravelCompareResponse{
		Results:        result.Analysis.Results,
		Recommendation: result.Analysis.Recommendation,
		Metadata:       compareMeta(result.CacheHit, len(result.Analysis.Results)),
	})
}

// DELETE /cache/searches
func (h *Handler) ClearSearchCache(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearSearchCache(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeCompareError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNoOffers):
		writeError(w, http.StatusNotFound, "no_offers_found", notFoundMsg)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "Request timed out, please try again")
	default:
		writeError(w, http.StatusBadGateway, "search_unavailable", "The search provider is temporarily unavailable")
	}
}

func compareMeta(cacheHit bool, count int) CompareMeta {
	return CompareMeta{
		CacheHit:    cacheHit,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		TotalCount:  count,
	}
}
