package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateGreenie(ctx context.Context, db bun.IDB, greenie *Greenie) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(greenie).Exec(ctx); err != nil {
		return fmt.Errorf("rounddb.CreateGreenie: %w", err)
	}
	return nil
}

func (r *Impl) GetGreenie(ctx context.Context, db bun.IDB, greenieID uuid.UUID) (*Greenie, error) {
	db = r.resolveDB(db)
	greenie := new(Greenie)
	err := db.NewSelect().
		Model(greenie).
		Where("id = ?", greenieID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("rounddb.GetGreenie: %w", err)
	}
	return greenie, nil
}

func (r *Impl) UpdateGreenie(ctx context.Context, db bun.IDB, greenie *Greenie) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(greenie).
		Column("hole", "feet", "inches").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("rounddb.UpdateGreenie: %w", err)
	}
	return expectRows(result, "rounddb.UpdateGreenie")
}

func (r *Impl) DeleteGreenie(ctx context.Context, db bun.IDB, greenieID uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Greenie)(nil)).
		Where("id = ?", greenieID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("rounddb.DeleteGreenie: %w", err)
	}
	return expectRows(result, "rounddb.DeleteGreenie")
}

func (r *Impl) ListGreeniesByRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]Greenie, error) {
	db = r.resolveDB(db)
	var greenies []Greenie
	err := db.NewSelect().
		Model(&greenies).
		Where("round_id = ?", roundID).
		Order("hole ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("rounddb.ListGreeniesByRound: %w", err)
	}
	return greenies, nil
}

func (r *Impl) ListGreeniesByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]TournamentGreenie, error) {
	db = r.resolveDB(db)
	var greenies []TournamentGreenie
	err := db.NewSelect().
		Model(&greenies).
		ColumnExpr("g.*").
		ColumnExpr("r.username").
		Join("JOIN rounds AS r ON r.id = g.round_id").
		Where("r.tournament_date = ?", tournamentDate).
		Order("g.hole ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("rounddb.ListGreeniesByTournament: %w", err)
	}
	return greenies, nil
}
