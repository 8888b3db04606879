package testutils

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Black-And-White-Club/golf-league/app"
	"github.com/Black-And-White-Club/golf-league/app/eventbus"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability"
	"github.com/Black-And-White-Club/golf-league/config"
	"github.com/Black-And-White-Club/golf-league/integration_tests/containers"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"

	// registers the pgx driver used by the container wait strategy
	_ "github.com/jackc/pgx/v5/stdlib"
)

// appTables lists every table truncated between tests.
var appTables = []string{"points", "greenies", "rounds", "tournaments", "courses", "members"}

// TestEnvironment holds all resources needed for integration testing.
type TestEnvironment struct {
	Ctx         context.Context
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	EventBus    *eventbus.EventBus
	App         *app.App
}

// NewTestEnvironment starts Postgres, applies every migration and wires the
// application against it with an in-memory event bus.
func NewTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	db := app.NewDB(connStr)
	if err := app.MigrateAll(ctx, db); err != nil {
		db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	obs := observability.NewNoop()
	bus := eventbus.NewInMemoryEventBus(obs.Logger)
	cfg := &config.Config{
		Postgres: config.PostgresConfig{DSN: connStr},
		League:   config.LeagueConfig{StandingsDefaultTopN: 8},
	}

	return &TestEnvironment{
		Ctx:         ctx,
		PgContainer: pgContainer,
		DB:          db,
		EventBus:    bus,
		App:         app.New(cfg, obs, db, bus),
	}, nil
}

// Reset truncates every application table.
func (env *TestEnvironment) Reset(t *testing.T) {
	t.Helper()
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(appTables, ", "))
	if _, err := env.DB.ExecContext(env.Ctx, query); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// Cleanup closes connections and terminates the container.
func (env *TestEnvironment) Cleanup() {
	if env.App != nil {
		_ = env.App.Close()
	}
	if env.PgContainer != nil {
		_ = env.PgContainer.Terminate(env.Ctx)
	}
}
