package app

import (
	"context"
	"fmt"

	leaguemigrations "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories/migrations"
	pointsmigrations "github.com/Black-And-White-Club/golf-league/app/modules/points/infrastructure/repositories/migrations"
	roundmigrations "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator is the migrator of a single module.
type ModuleMigrator struct {
	Name     string
	Migrator *migrate.Migrator
}

// Migrators returns one migrator per module in dependency order: rounds
// reference tournaments and points reference rounds. Each module keeps its
// own bookkeeping tables.
func Migrators(db *bun.DB) []ModuleMigrator {
	build := func(name string, migrations *migrate.Migrations) ModuleMigrator {
		return ModuleMigrator{
			Name: name,
			Migrator: migrate.NewMigrator(db, migrations,
				migrate.WithTableName("bun_migrations_"+name),
				migrate.WithLocksTableName("bun_migration_locks_"+name),
			),
		}
	}
	return []ModuleMigrator{
		build("league", leaguemigrations.Migrations),
		build("round", roundmigrations.Migrations),
		build("points", pointsmigrations.Migrations),
	}
}

// MigrateAll initialises the bookkeeping tables and applies every pending
// migration of every module.
func MigrateAll(ctx context.Context, db *bun.DB) error {
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("init %s migrations: %w", m.Name, err)
		}
		if _, err := m.Migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate %s: %w", m.Name, err)
		}
	}
	return nil
}
