package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/raayanhq/raayan/internal/domain"
	"github.com/raayanhq/raayan/internal/service"
)

type createBookingRequest struct {
	Category    domain.Category `json:"category" validate:"required,oneof=food travel"`
	Platform    string          `json:"platform" validate:"required"`
	Restaurant  string          `json:"restaurant"`
	Operator    string          `json:"operator"`
	Location    string          `json:"location"`
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
	FinalPrice  float64         `json:"finalPrice" validate:"gte=0"`
	BookingData string          `json:"bookingData" validate:"required"`
}

type updateStatusRequest struct {
	Status domain.BookingStatus `json:"status" validate:"required,oneof=pending redirected completed cancelled"`
}

// POST /bookings
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req createBookingRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), service.CreateBookingRequest{
		UserID:      uid,
		Category:    req.Category,
		Platform:    req.Platform,
		Restaurant:  req.Restaurant,
		Operator:    req.Operator,
		Location:    req.Location,
		Source:      req.Source,
		Destination: req.Destination,
		FinalPrice:  req.FinalPrice,
		BookingData: req.BookingData,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

// GET /bookings
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListBookings(r.Context(), uid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if items == nil {
		items = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, items)
}

// GET /bookings/{bookingID}
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	booking, err := h.service.GetBooking(r.Context(), uid, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			writeError(w, http.StatusNotFound, "booking_not_found", "Booking not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// PATCH /bookings/{bookingID}/status
func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	h.patchStatus(w, r, uid, id, req.Status)
}

// POST /bookings/{bookingID}/confirm
func (h *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	if id, ok := bookingID(w, r); ok {
		h.patchStatus(w, r, uid, id, domain.BookingCompleted)
	}
}

// POST /bookings/{bookingID}/cancel
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	if id, ok := bookingID(w, r); ok {
		h.patchStatus(w, r, uid, id, domain.BookingCancelled)
	}
}

func (h *Handler) patchStatus(w http.ResponseWriter, r *http.Request, uid string, id int64, status domain.BookingStatus) {
	if err := h.service.UpdateBookingStatus(r.Context(), uid, id, status); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			writeError(w, http.StatusNotFound, "booking_not_found", "Booking not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

func bookingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid booking id")
		return 0, false
	}
	return id, true
}
