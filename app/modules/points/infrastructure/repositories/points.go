package pointsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	// ErrNotFound is returned when a round has no points row.
	ErrNotFound = errors.New("points not found")
	// ErrAlreadyExists is returned when inserting a second row for a round.
	ErrAlreadyExists = errors.New("points already exist")
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new points repository.
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

func (r *Impl) Insert(ctx context.Context, db bun.IDB, points *Points) error {
	db = r.resolveDB(db)
	points.UpdatedAt = time.Now()
	result, err := db.NewInsert().
		Model(points).
		On("CONFLICT (round_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("pointsdb.Insert: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pointsdb.Insert: failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (r *Impl) Get(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*Points, error) {
	db = r.resolveDB(db)
	points := new(Points)
	err := db.NewSelect().
		Model(points).
		Where("round_id = ?", roundID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("pointsdb.Get: %w", err)
	}
	return points, nil
}

func (r *Impl) UpdateHoleScores(ctx context.Context, db bun.IDB, roundID uuid.UUID, b pointsdomain.HoleScoreBonuses) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Points)(nil)).
		Set("pars = ?", b.Pars).
		Set("birdies = ?", b.Birdies).
		Set("eagles = ?", b.Eagles).
		Set("aces = ?", b.Aces).
		Set("updated_at = ?", time.Now()).
		Where("round_id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("pointsdb.UpdateHoleScores: %w", err)
	}
	return expectRows(result, "pointsdb.UpdateHoleScores")
}

func (r *Impl) UpdateGreenies(ctx context.Context, db bun.IDB, roundID uuid.UUID, greenies int) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Points)(nil)).
		Set("greenies = ?", greenies).
		Set("updated_at = ?", time.Now()).
		Where("round_id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("pointsdb.UpdateGreenies: %w", err)
	}
	return expectRows(result, "pointsdb.UpdateGreenies")
}

func (r *Impl) SetPlacements(ctx context.Context, db bun.IDB, column PlacementColumn, values map[uuid.UUID]int) error {
	if column != PlacementStrokes && column != PlacementPutts {
		return fmt.Errorf("pointsdb.SetPlacements: unknown column %q", column)
	}
	db = r.resolveDB(db)
	now := time.Now()
	for roundID, value := range values {
		_, err := db.NewUpdate().
			Model((*Points)(nil)).
			Set("? = ?", bun.Ident(column), value).
			Set("updated_at = ?", now).
			Where("round_id = ?", roundID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("pointsdb.SetPlacements: %w", err)
		}
	}
	return nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Points)(nil)).
		Where("round_id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("pointsdb.Delete: %w", err)
	}
	return expectRows(result, "pointsdb.Delete")
}

func (r *Impl) ListPlacementRows(ctx context.Context, db bun.IDB, tournamentDate string) ([]PlacementRow, error) {
	db = r.resolveDB(db)
	var rows []PlacementRow
	err := db.NewSelect().
		TableExpr("points AS p").
		ColumnExpr("p.round_id, r.net_strokes, r.total_putts, r.is_complete").
		Join("JOIN rounds AS r ON r.id = p.round_id").
		Where("r.tournament_date = ?", tournamentDate).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("pointsdb.ListPlacementRows: %w", err)
	}
	return rows, nil
}

func (r *Impl) ListByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]RoundPointsRow, error) {
	db = r.resolveDB(db)
	var rows []RoundPointsRow
	err := db.NewSelect().
		Model(&rows).
		ColumnExpr("p.*").
		ColumnExpr("r.username, r.tournament_date").
		Join("JOIN rounds AS r ON r.id = p.round_id").
		Where("r.tournament_date = ?", tournamentDate).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("pointsdb.ListByTournament: %w", err)
	}
	return rows, nil
}

func (r *Impl) ListByTourYear(ctx context.Context, db bun.IDB, tourYear string) ([]RoundPointsRow, error) {
	db = r.resolveDB(db)
	var rows []RoundPointsRow
	err := db.NewSelect().
		Model(&rows).
		ColumnExpr("p.*").
		ColumnExpr("r.username, r.tournament_date").
		Join("JOIN rounds AS r ON r.id = p.round_id").
		Join("JOIN tournaments AS t ON t.date = r.tournament_date").
		Where("t.tour_year = ?", tourYear).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("pointsdb.ListByTourYear: %w", err)
	}
	return rows, nil
}

func (r *Impl) AcquireTournamentLock(ctx context.Context, db bun.IDB, tournamentDate string) error {
	db = r.resolveDB(db)
	_, err := db.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", "tournament:"+tournamentDate).Exec(ctx)
	if err != nil {
		return fmt.Errorf("pointsdb.AcquireTournamentLock: %w", err)
	}
	return nil
}
