package leaguemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating courses, tournaments and members tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS courses (
					handle TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					rating DOUBLE PRECISION,
					slope INTEGER CHECK (slope IS NULL OR slope > 0),
					pars INTEGER[] NOT NULL CHECK (cardinality(pars) = 18),
					handicaps INTEGER[] NOT NULL CHECK (cardinality(handicaps) = 18),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create courses table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS tournaments (
					date TEXT PRIMARY KEY CHECK (date ~ '^\d{4}-\d{2}-\d{2}$'),
					course_handle TEXT NOT NULL REFERENCES courses(handle),
					tour_year TEXT NOT NULL,
					name TEXT,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_tournaments_tour_year ON tournaments(tour_year);
			`); err != nil {
				return fmt.Errorf("failed to create tournaments table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS members (
					username TEXT PRIMARY KEY,
					first_name TEXT NOT NULL DEFAULT '',
					last_name TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create members table: %w", err)
			}

			fmt.Println("League tables created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping league tables...")

		if _, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS members;
			DROP TABLE IF EXISTS tournaments;
			DROP TABLE IF EXISTS courses;
		`); err != nil {
			return fmt.Errorf("failed to drop league tables: %w", err)
		}
		return nil
	})
}
