package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/raayanhq/raayan/internal/service"
)

// Caller identity is an opaque id; auth lives outside this service.
const userIDHeader = "X-User-ID"

type Handler struct {
	service  *service.Service
	validate *validator.Validate
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		service:  svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// decodeAndValidate decodes a JSON body into v and runs struct validation.
// A false return means the error response has already been written.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body is not valid JSON")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return false
	}
	return true
}

// userID extracts the caller identity header. A false return means the
// error response has already been written.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(userIDHeader)
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_user", "X-User-ID header is required")
		return "", false
	}
	return id, true
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
