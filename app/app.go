package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/Black-And-White-Club/golf-league/app/eventbus"
	"github.com/Black-And-White-Club/golf-league/app/modules/leaderboard"
	"github.com/Black-And-White-Club/golf-league/app/modules/league"
	"github.com/Black-And-White-Club/golf-league/app/modules/points"
	"github.com/Black-And-White-Club/golf-league/app/modules/round"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability"
	"github.com/Black-And-White-Club/golf-league/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// App holds the wired modules and shared infrastructure.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB
	EventBus      *eventbus.EventBus

	LeagueModule      *league.Module
	PointsModule      *points.Module
	RoundModule       *round.Module
	LeaderboardModule *leaderboard.Module

	server *http.Server
}

// NewDB opens a bun handle on the Postgres DSN.
func NewDB(dsn string) *bun.DB {
	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(pgdb, pgdialect.New())
}

// NewApp builds the observability stack, connects to Postgres and the event
// bus, and wires every module.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.New(observability.Config{
		Environment: cfg.Observability.Environment,
		LogLevel:    cfg.Observability.LogLevel,
		ServiceName: cfg.Observability.ServiceName,
	})
	logger := obs.Logger

	db := NewDB(cfg.Postgres.DSN)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Database connection established")

	bus, err := eventbus.NewEventBus(cfg.NATS.URL, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}

	return New(cfg, obs, db, bus), nil
}

// New wires every module on an open database and event bus. Modules are
// built in dependency order: the points engine reads greenies from the round
// repository, and the round service drives the points engine.
func New(cfg *config.Config, obs observability.Observability, db *bun.DB, bus *eventbus.EventBus) *App {
	app := &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		EventBus:      bus,
	}

	app.LeagueModule = league.NewLeagueModule(db, obs.Logger)

	roundRepo := rounddb.NewRepository(db)
	app.PointsModule = points.NewPointsModule(db, roundRepo, obs)
	app.RoundModule = round.NewRoundModule(db, roundRepo, app.LeagueModule.Repo, app.PointsModule, bus, obs)
	app.LeaderboardModule = leaderboard.NewLeaderboardModule(
		db,
		roundRepo,
		app.LeagueModule.Repo,
		app.PointsModule,
		cfg.League.StandingsDefaultTopN,
		obs,
	)
	return app
}

// Close releases the event bus and the database.
func (app *App) Close() error {
	logger := app.Observability.Logger

	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			logger.Error("Error closing event bus", "error", err)
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	logger.Info("Application shut down gracefully")
	return nil
}
