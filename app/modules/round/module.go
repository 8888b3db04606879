package round

import (
	"github.com/Black-And-White-Club/golf-league/app/eventbus"
	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/modules/points"
	roundservice "github.com/Black-And-White-Club/golf-league/app/modules/round/application"
	roundhandlers "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/handlers"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the round module.
type Module struct {
	Repo     rounddb.Repository
	Service  roundservice.Service
	Handlers roundhandlers.Handlers
}

// NewRoundModule creates a new instance of the Round module. The repository
// is built by the caller because the points engine reads greenies from it.
func NewRoundModule(
	db *bun.DB,
	repo rounddb.Repository,
	league leaguedb.Repository,
	pointsModule *points.Module,
	publisher eventbus.Publisher,
	obs observability.Observability,
) *Module {
	obs.Logger.Info("round.NewRoundModule called")

	service := roundservice.NewRoundService(
		repo,
		league,
		pointsModule.Service,
		pointsModule.Locker,
		publisher,
		obs.Logger,
		obs.Metrics,
		obs.Tracer,
		db,
	)

	return &Module{
		Repo:     repo,
		Service:  service,
		Handlers: roundhandlers.NewRoundHandlers(service, obs.Logger, obs.Tracer),
	}
}

// Routes mounts the round endpoints on r.
func (m *Module) Routes(r chi.Router) {
	roundhandlers.Routes(r, m.Handlers)
}
