package pointsservice

import (
	"context"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	pointsdb "github.com/Black-And-White-Club/golf-league/app/modules/points/infrastructure/repositories"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Points Repo
// ------------------------

type FakePointsRepo struct {
	trace []string

	InsertFunc                func(ctx context.Context, db bun.IDB, points *pointsdb.Points) error
	GetFunc                   func(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*pointsdb.Points, error)
	UpdateHoleScoresFunc      func(ctx context.Context, db bun.IDB, roundID uuid.UUID, b pointsdomain.HoleScoreBonuses) error
	UpdateGreeniesFunc        func(ctx context.Context, db bun.IDB, roundID uuid.UUID, greenies int) error
	SetPlacementsFunc         func(ctx context.Context, db bun.IDB, column pointsdb.PlacementColumn, values map[uuid.UUID]int) error
	DeleteFunc                func(ctx context.Context, db bun.IDB, roundID uuid.UUID) error
	ListPlacementRowsFunc     func(ctx context.Context, db bun.IDB, tournamentDate string) ([]pointsdb.PlacementRow, error)
	ListByTournamentFunc      func(ctx context.Context, db bun.IDB, tournamentDate string) ([]pointsdb.RoundPointsRow, error)
	ListByTourYearFunc        func(ctx context.Context, db bun.IDB, tourYear string) ([]pointsdb.RoundPointsRow, error)
	AcquireTournamentLockFunc func(ctx context.Context, db bun.IDB, tournamentDate string) error
}

func NewFakePointsRepo() *FakePointsRepo {
	return &FakePointsRepo{trace: []string{}}
}

func (f *FakePointsRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePointsRepo) Insert(ctx context.Context, db bun.IDB, points *pointsdb.Points) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, points)
	}
	return nil
}

func (f *FakePointsRepo) Get(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*pointsdb.Points, error) {
	f.record("Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, db, roundID)
	}
	return nil, pointsdb.ErrNotFound
}

func (f *FakePointsRepo) UpdateHoleScores(ctx context.Context, db bun.IDB, roundID uuid.UUID, b pointsdomain.HoleScoreBonuses) error {
	f.record("UpdateHoleScores")
	if f.UpdateHoleScoresFunc != nil {
		return f.UpdateHoleScoresFunc(ctx, db, roundID, b)
	}
	return nil
}

func (f *FakePointsRepo) UpdateGreenies(ctx context.Context, db bun.IDB, roundID uuid.UUID, greenies int) error {
	f.record("UpdateGreenies")
	if f.UpdateGreeniesFunc != nil {
		return f.UpdateGreeniesFunc(ctx, db, roundID, greenies)
	}
	return nil
}

func (f *FakePointsRepo) SetPlacements(ctx context.Context, db bun.IDB, column pointsdb.PlacementColumn, values map[uuid.UUID]int) error {
	f.record("SetPlacements:" + string(column))
	if f.SetPlacementsFunc != nil {
		return f.SetPlacementsFunc(ctx, db, column, values)
	}
	return nil
}

func (f *FakePointsRepo) Delete(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, roundID)
	}
	return nil
}

func (f *FakePointsRepo) ListPlacementRows(ctx context.Context, db bun.IDB, tournamentDate string) ([]pointsdb.PlacementRow, error) {
	f.record("ListPlacementRows")
	if f.ListPlacementRowsFunc != nil {
		return f.ListPlacementRowsFunc(ctx, db, tournamentDate)
	}
	return nil, nil
}

func (f *FakePointsRepo) ListByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]pointsdb.RoundPointsRow, error) {
	f.record("ListByTournament")
	if f.ListByTournamentFunc != nil {
		return f.ListByTournamentFunc(ctx, db, tournamentDate)
	}
	return nil, nil
}

func (f *FakePointsRepo) ListByTourYear(ctx context.Context, db bun.IDB, tourYear string) ([]pointsdb.RoundPointsRow, error) {
	f.record("ListByTourYear")
	if f.ListByTourYearFunc != nil {
		return f.ListByTourYearFunc(ctx, db, tourYear)
	}
	return nil, nil
}

func (f *FakePointsRepo) AcquireTournamentLock(ctx context.Context, db bun.IDB, tournamentDate string) error {
	f.record("AcquireTournamentLock")
	if f.AcquireTournamentLockFunc != nil {
		return f.AcquireTournamentLockFunc(ctx, db, tournamentDate)
	}
	return nil
}

func (f *FakePointsRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ pointsdb.Repository = (*FakePointsRepo)(nil)

// ------------------------
// Fake Greenie Source
// ------------------------

type FakeGreenieSource struct {
	Greenies map[uuid.UUID][]rounddb.Greenie
}

func (f *FakeGreenieSource) ListGreeniesByRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]rounddb.Greenie, error) {
	return f.Greenies[roundID], nil
}

var _ GreenieSource = (*FakeGreenieSource)(nil)
