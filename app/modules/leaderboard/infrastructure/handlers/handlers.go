package leaderboardhandlers

import (
	"context"
	"log/slog"
	"net/http"

	leaderboardservice "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/application"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Handlers is the HTTP surface for winners, standings and exports.
type Handlers interface {
	HandleTournamentWinners(w http.ResponseWriter, r *http.Request)
	HandleTournamentStandings(w http.ResponseWriter, r *http.Request)
	HandleRecalculateTournament(w http.ResponseWriter, r *http.Request)
	HandleYearlyStandings(w http.ResponseWriter, r *http.Request)
	HandleExportYearlyStandings(w http.ResponseWriter, r *http.Request)
	HandleHandicapChart(w http.ResponseWriter, r *http.Request)
}

// Recalculator re-runs a tournament's placement passes.
type Recalculator interface {
	RecalculateTournament(ctx context.Context, tournamentDate string) error
}

// LeaderboardHandlers implements Handlers.
type LeaderboardHandlers struct {
	service      leaderboardservice.Service
	recalculator Recalculator
	defaultTopN  int
	logger       *slog.Logger
	tracer       trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers instance.
// defaultTopN applies when a standings request has no top parameter.
func NewLeaderboardHandlers(
	service leaderboardservice.Service,
	recalculator Recalculator,
	defaultTopN int,
	logger *slog.Logger,
	tracer trace.Tracer,
) *LeaderboardHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeaderboardHandlers{
		service:      service,
		recalculator: recalculator,
		defaultTopN:  defaultTopN,
		logger:       logger,
		tracer:       tracer,
	}
}

var _ Handlers = (*LeaderboardHandlers)(nil)

// Routes registers the tournament, standings and player endpoints.
func Routes(r chi.Router, h Handlers) {
	r.Route("/tournaments/{date}", func(r chi.Router) {
		r.Get("/winners", h.HandleTournamentWinners)
		r.Get("/standings", h.HandleTournamentStandings)
		r.Post("/recalculate", h.HandleRecalculateTournament)
	})
	r.Route("/standings/{tourYear}", func(r chi.Router) {
		r.Get("/", h.HandleYearlyStandings)
		r.Get("/export", h.HandleExportYearlyStandings)
	})
	r.Get("/players/{username}/handicap.png", h.HandleHandicapChart)
}
