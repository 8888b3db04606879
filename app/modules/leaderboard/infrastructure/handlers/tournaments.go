package leaderboardhandlers

import (
	"net/http"
	"time"

	"github.com/Black-And-White-Club/golf-league/app/shared/httpapi"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
)

func (h *LeaderboardHandlers) HandleTournamentWinners(w http.ResponseWriter, r *http.Request) {
	date, ok := tournamentDate(w, r)
	if !ok {
		return
	}

	winners, err := h.service.TournamentWinners(r.Context(), date)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, winners)
}

func (h *LeaderboardHandlers) HandleTournamentStandings(w http.ResponseWriter, r *http.Request) {
	date, ok := tournamentDate(w, r)
	if !ok {
		return
	}

	rows, err := h.service.TournamentStandings(r.Context(), date)
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, rows)
}

func (h *LeaderboardHandlers) HandleRecalculateTournament(w http.ResponseWriter, r *http.Request) {
	date, ok := tournamentDate(w, r)
	if !ok {
		return
	}

	if err := h.recalculator.RecalculateTournament(r.Context(), date); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}
	h.logger.InfoContext(r.Context(), "Tournament recalculated",
		attr.ExtractCorrelationID(r.Context()),
		attr.String("tournament_date", date),
	)
	w.WriteHeader(http.StatusNoContent)
}

func tournamentDate(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httpapi.BadRequest(w, "tournament date must be YYYY-MM-DD")
		return "", false
	}
	return date, true
}
