package leaderboard

import (
	leaderboardservice "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/infrastructure/handlers"
	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/modules/points"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the read side: winners, standings, exports and charts.
type Module struct {
	Service  leaderboardservice.Service
	Handlers leaderboardhandlers.Handlers
}

// NewLeaderboardModule creates a new instance of the Leaderboard module.
func NewLeaderboardModule(
	db *bun.DB,
	rounds rounddb.Repository,
	league leaguedb.Repository,
	pointsModule *points.Module,
	defaultTopN int,
	obs observability.Observability,
) *Module {
	obs.Logger.Info("leaderboard.NewLeaderboardModule called")

	service := leaderboardservice.NewLeaderboardService(
		rounds,
		pointsModule.Repo,
		league,
		obs.Logger,
		obs.Metrics,
		obs.Tracer,
		db,
	)

	return &Module{
		Service:  service,
		Handlers: leaderboardhandlers.NewLeaderboardHandlers(service, pointsModule.Service, defaultTopN, obs.Logger, obs.Tracer),
	}
}

// Routes mounts the leaderboard endpoints on r.
func (m *Module) Routes(r chi.Router) {
	leaderboardhandlers.Routes(r, m.Handlers)
}
