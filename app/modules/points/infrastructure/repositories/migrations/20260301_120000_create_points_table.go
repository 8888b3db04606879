package pointsmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating points table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS points (
				round_id UUID PRIMARY KEY REFERENCES rounds(id) ON DELETE CASCADE,
				participation INTEGER NOT NULL DEFAULT 0,
				strokes INTEGER NOT NULL DEFAULT 0,
				putts INTEGER NOT NULL DEFAULT 0,
				greenies INTEGER NOT NULL DEFAULT 0,
				pars INTEGER NOT NULL DEFAULT 0,
				birdies INTEGER NOT NULL DEFAULT 0,
				eagles INTEGER NOT NULL DEFAULT 0,
				aces INTEGER NOT NULL DEFAULT 0,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`); err != nil {
			return fmt.Errorf("failed to create points table: %w", err)
		}

		fmt.Println("points table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping points table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS points;`); err != nil {
			return fmt.Errorf("failed to drop points table: %w", err)
		}
		return nil
	})
}
