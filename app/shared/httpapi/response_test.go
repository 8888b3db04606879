package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &rounddomain.ValidationError{Field: "hole", Reason: "bad"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("CreateGreenie: %w", &rounddomain.ValidationError{Field: "hole"}), http.StatusBadRequest},
		{"round not found", pointsdomain.ErrRoundNotFound, http.StatusNotFound},
		{"tournament not found", rounddomain.ErrTournamentNotFound, http.StatusNotFound},
		{"greenie not found", rounddomain.ErrGreenieNotFound, http.StatusNotFound},
		{"member not found", fmt.Errorf("create: %w", rounddomain.ErrMemberNotFound), http.StatusNotFound},
		{"duplicate", pointsdomain.ErrDuplicateRound, http.StatusConflict},
		{"round exists", rounddomain.ErrRoundExists, http.StatusConflict},
		{"course data", fmt.Errorf("x: %w", rounddomain.ErrCourseDataMissing), http.StatusUnprocessableEntity},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("validation exposes field", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/greenies", nil)
		WriteError(rr, req, logger, &rounddomain.ValidationError{Field: "inches", Reason: "must be between 0 and 11"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var body ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "inches", body.Field)
	})

	t.Run("internal errors are hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/rounds/x", nil)
		WriteError(rr, req, logger, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "password")
	})
}
