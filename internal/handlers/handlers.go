package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/app"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/metrics"
)

// Handler is the thin HTTP face of the journal service. Every handler
// decodes, calls the service, maps the error taxonomy to a status code and
// encodes the result; no business rules live here.
type Handler struct {
	service *app.Service
}

func NewHandler(service *app.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// observe records the request duration metric; call deferred at handler top.
func observe(r *http.Request, start time.Time) {
	metrics.APIRequestDuration.WithLabelValues(
		r.URL.Path,
		r.Method,
		"200",
	).Observe(time.Since(start).Seconds())
}

func (h *Handler) gate(w http.ResponseWriter, r *http.Request) bool {
	if !h.service.ValidateHeaders(r.Header) {
		http.Error(w, "these are not the droids you are looking for", http.StatusForbidden)
		return false
	}
	return true
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error.Printf("Failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func respondCreated(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error.Printf("Failed to encode response: %v", err)
	}
}

// respondError maps the failure taxonomy onto status codes: missing
// references are 404, uniqueness violations 409, the rest of the rule
// failures and malformed payloads 400.
func respondError(w http.ResponseWriter, err error) {
	var vErrs validator.ValidationErrors
	switch {
	case apperr.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case apperr.IsConflict(err):
		http.Error(w, err.Error(), http.StatusConflict)
	case apperr.IsTransfer(err), apperr.IsVariousParents(err), apperr.IsBadInput(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &vErrs):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error.Printf("Internal error: %v", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
