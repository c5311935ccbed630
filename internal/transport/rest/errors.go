package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/feedback-insights/internal/domain"
	"github.com/heartmarshall/feedback-insights/internal/service/feedback"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Detail: message})
}

// handleError maps service errors to HTTP statuses. Unknown errors are
// logged and reported as 500 without details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid input")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, feedback.ErrGeneratorUnavailable):
		writeError(w, http.StatusServiceUnavailable, "insight generation is not configured")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
