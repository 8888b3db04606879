package league

import (
	"log/slog"

	leagueservice "github.com/Black-And-White-Club/golf-league/app/modules/league/application"
	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Module represents the league module: courses, tournaments and members.
type Module struct {
	Repo    leaguedb.Repository
	Service leagueservice.Service
	logger  *slog.Logger
}

// NewLeagueModule creates a new instance of the League module.
func NewLeagueModule(db *bun.DB, logger *slog.Logger) *Module {
	logger.Info("league.NewLeagueModule called")

	repo := leaguedb.NewRepository(db)
	return &Module{
		Repo:    repo,
		Service: leagueservice.NewLeagueService(repo, logger, db),
		logger:  logger,
	}
}
