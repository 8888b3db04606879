package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a round or greenie does not exist.
var ErrNotFound = errors.New("round record not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new round repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func expectRows(result sql.Result, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get rows affected: %w", op, err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) CreateRound(ctx context.Context, db bun.IDB, round *Round) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(round).Exec(ctx); err != nil {
		return fmt.Errorf("rounddb.CreateRound: %w", err)
	}
	return nil
}

func (r *Impl) GetRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*Round, error) {
	db = r.resolveDB(db)
	round := new(Round)
	err := db.NewSelect().
		Model(round).
		Where("id = ?", roundID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("rounddb.GetRound: %w", err)
	}
	return round, nil
}

func (r *Impl) FindRound(ctx context.Context, db bun.IDB, tournamentDate, username string) (*Round, error) {
	db = r.resolveDB(db)
	round := new(Round)
	err := db.NewSelect().
		Model(round).
		Where("tournament_date = ?", tournamentDate).
		Where("username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("rounddb.FindRound: %w", err)
	}
	return round, nil
}

func (r *Impl) UpdateRound(ctx context.Context, db bun.IDB, round *Round) error {
	db = r.resolveDB(db)
	round.UpdatedAt = time.Now()
	result, err := db.NewUpdate().
		Model(round).
		Column("strokes", "putts", "total_strokes", "total_putts", "is_complete",
			"score_differential", "player_index", "course_handicap", "net_strokes", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("rounddb.UpdateRound: %w", err)
	}
	return expectRows(result, "rounddb.UpdateRound")
}

func (r *Impl) DeleteRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Round)(nil)).
		Where("id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("rounddb.DeleteRound: %w", err)
	}
	return expectRows(result, "rounddb.DeleteRound")
}

func (r *Impl) ListRoundsByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]Round, error) {
	db = r.resolveDB(db)
	var rounds []Round
	err := db.NewSelect().
		Model(&rounds).
		Where("tournament_date = ?", tournamentDate).
		Order("username ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("rounddb.ListRoundsByTournament: %w", err)
	}
	return rounds, nil
}

func (r *Impl) HandicapHistory(ctx context.Context, db bun.IDB, username, beforeDate string, limit int) ([]float64, error) {
	db = r.resolveDB(db)
	var diffs []float64
	err := db.NewSelect().
		Model((*Round)(nil)).
		Column("score_differential").
		Where("username = ?", username).
		Where("tournament_date < ?", beforeDate).
		Where("is_complete").
		Where("score_differential IS NOT NULL").
		Order("tournament_date DESC").
		Limit(limit).
		Scan(ctx, &diffs)
	if err != nil {
		return nil, fmt.Errorf("rounddb.HandicapHistory: %w", err)
	}
	return diffs, nil
}

func (r *Impl) ListHandicapPoints(ctx context.Context, db bun.IDB, username string) ([]HandicapPoint, error) {
	db = r.resolveDB(db)
	var points []HandicapPoint
	err := db.NewSelect().
		Model((*Round)(nil)).
		Column("tournament_date", "player_index", "net_strokes").
		Where("username = ?", username).
		Where("player_index IS NOT NULL").
		Order("tournament_date ASC").
		Scan(ctx, &points)
	if err != nil {
		return nil, fmt.Errorf("rounddb.ListHandicapPoints: %w", err)
	}
	return points, nil
}
