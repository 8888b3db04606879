// Package httpapi holds the JSON response helpers and middleware shared by
// the module handlers.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability/attr"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	var verr *rounddomain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, pointsdomain.ErrRoundNotFound),
		errors.Is(err, rounddomain.ErrTournamentNotFound),
		errors.Is(err, rounddomain.ErrMemberNotFound),
		errors.Is(err, rounddomain.ErrGreenieNotFound):
		return http.StatusNotFound
	case errors.Is(err, pointsdomain.ErrDuplicateRound),
		errors.Is(err, rounddomain.ErrRoundExists):
		return http.StatusConflict
	case errors.Is(err, rounddomain.ErrCourseDataMissing):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to a status and writes it. Server errors are logged
// and their details hidden from the client.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed",
			attr.ExtractCorrelationID(r.Context()),
			attr.String("path", r.URL.Path),
			attr.Error(err),
		)
		WriteJSON(w, status, ErrorResponse{Error: http.StatusText(status)})
		return
	}

	body := ErrorResponse{Error: err.Error()}
	var verr *rounddomain.ValidationError
	if errors.As(err, &verr) {
		body = ErrorResponse{Error: verr.Reason, Field: verr.Field}
	}
	WriteJSON(w, status, body)
}

// BadRequest writes a 400 for malformed input that never reached a service.
func BadRequest(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// DecodeJSON reads the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
