package points

import (
	pointsservice "github.com/Black-And-White-Club/golf-league/app/modules/points/application"
	pointsdb "github.com/Black-And-White-Club/golf-league/app/modules/points/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability"
	"github.com/uptrace/bun"
)

// Module represents the points engine.
type Module struct {
	Repo    pointsdb.Repository
	Service *pointsservice.PointsService
	// Locker serialises tournament mutations and must be shared with the
	// round module.
	Locker *pointsservice.TournamentLocker
}

// NewPointsModule creates a new instance of the Points module. Greenie
// bonuses are read back through greenies, normally the round repository.
func NewPointsModule(db *bun.DB, greenies pointsservice.GreenieSource, obs observability.Observability) *Module {
	obs.Logger.Info("points.NewPointsModule called")

	repo := pointsdb.NewRepository(db)
	locker := pointsservice.NewTournamentLocker()
	service := pointsservice.NewPointsService(repo, greenies, locker, obs.Logger, obs.Metrics, obs.Tracer, db)

	return &Module{
		Repo:    repo,
		Service: service,
		Locker:  locker,
	}
}
