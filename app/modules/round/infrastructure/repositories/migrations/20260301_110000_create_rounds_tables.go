package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rounds and greenies tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS rounds (
					id UUID PRIMARY KEY,
					tournament_date TEXT NOT NULL REFERENCES tournaments(date),
					username TEXT NOT NULL REFERENCES members(username),
					strokes JSONB NOT NULL DEFAULT '{}'::jsonb,
					putts JSONB NOT NULL DEFAULT '{}'::jsonb,
					total_strokes INTEGER NOT NULL DEFAULT 0,
					total_putts INTEGER NOT NULL DEFAULT 0,
					is_complete BOOLEAN NOT NULL DEFAULT FALSE,
					score_differential DOUBLE PRECISION,
					player_index DOUBLE PRECISION,
					course_handicap INTEGER NOT NULL DEFAULT 0,
					net_strokes INTEGER NOT NULL DEFAULT 0,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					UNIQUE (tournament_date, username)
				);
				CREATE INDEX IF NOT EXISTS idx_rounds_username_date ON rounds(username, tournament_date DESC);
			`); err != nil {
				return fmt.Errorf("failed to create rounds table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS greenies (
					id UUID PRIMARY KEY,
					round_id UUID NOT NULL REFERENCES rounds(id) ON DELETE CASCADE,
					hole INTEGER NOT NULL CHECK (hole BETWEEN 1 AND 18),
					feet INTEGER NOT NULL CHECK (feet >= 0),
					inches INTEGER NOT NULL CHECK (inches BETWEEN 0 AND 11),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_greenies_round_id ON greenies(round_id);
			`); err != nil {
				return fmt.Errorf("failed to create greenies table: %w", err)
			}

			fmt.Println("Rounds tables created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping rounds and greenies tables...")

		if _, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS greenies;
			DROP TABLE IF EXISTS rounds CASCADE;
		`); err != nil {
			return fmt.Errorf("failed to drop rounds tables: %w", err)
		}
		return nil
	})
}
