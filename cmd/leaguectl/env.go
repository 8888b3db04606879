package main

import (
	"fmt"

	"github.com/Black-And-White-Club/golf-league/app"
	"github.com/Black-And-White-Club/golf-league/config"
	"github.com/uptrace/bun"
	"github.com/urfave/cli/v2"
)

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// withDB opens a bare database handle; migrations must not depend on the
// rest of the application being wired.
func withDB(fn func(c *cli.Context, db *bun.DB) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		db := app.NewDB(cfg.Postgres.DSN)
		defer db.Close()
		return fn(c, db)
	}
}

// withApp wires the full application for commands that go through the
// services.
func withApp(fn func(c *cli.Context, a *app.App) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		a, err := app.NewApp(c.Context, cfg)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(c, a)
	}
}
