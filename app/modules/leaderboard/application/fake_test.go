package leaderboardservice

import (
	"context"

	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	pointsdb "github.com/Black-And-White-Club/golf-league/app/modules/points/infrastructure/repositories"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Round Repo
// ------------------------

type FakeRoundRepo struct {
	ListRoundsByTournamentFunc   func(ctx context.Context, db bun.IDB, tournamentDate string) ([]rounddb.Round, error)
	ListGreeniesByTournamentFunc func(ctx context.Context, db bun.IDB, tournamentDate string) ([]rounddb.TournamentGreenie, error)
	ListHandicapPointsFunc       func(ctx context.Context, db bun.IDB, username string) ([]rounddb.HandicapPoint, error)
}

func (f *FakeRoundRepo) CreateRound(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	return nil
}

func (f *FakeRoundRepo) GetRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*rounddb.Round, error) {
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) FindRound(ctx context.Context, db bun.IDB, tournamentDate, username string) (*rounddb.Round, error) {
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) UpdateRound(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	return nil
}

func (f *FakeRoundRepo) DeleteRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
	return nil
}

func (f *FakeRoundRepo) ListRoundsByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]rounddb.Round, error) {
	if f.ListRoundsByTournamentFunc != nil {
		return f.ListRoundsByTournamentFunc(ctx, db, tournamentDate)
	}
	return nil, nil
}

func (f *FakeRoundRepo) HandicapHistory(ctx context.Context, db bun.IDB, username, beforeDate string, limit int) ([]float64, error) {
	return nil, nil
}

func (f *FakeRoundRepo) ListHandicapPoints(ctx context.Context, db bun.IDB, username string) ([]rounddb.HandicapPoint, error) {
	if f.ListHandicapPointsFunc != nil {
		return f.ListHandicapPointsFunc(ctx, db, username)
	}
	return nil, nil
}

func (f *FakeRoundRepo) CreateGreenie(ctx context.Context, db bun.IDB, greenie *rounddb.Greenie) error {
	return nil
}

func (f *FakeRoundRepo) GetGreenie(ctx context.Context, db bun.IDB, greenieID uuid.UUID) (*rounddb.Greenie, error) {
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) UpdateGreenie(ctx context.Context, db bun.IDB, greenie *rounddb.Greenie) error {
	return nil
}

func (f *FakeRoundRepo) DeleteGreenie(ctx context.Context, db bun.IDB, greenieID uuid.UUID) error {
	return nil
}

func (f *FakeRoundRepo) ListGreeniesByRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]rounddb.Greenie, error) {
	return nil, nil
}

func (f *FakeRoundRepo) ListGreeniesByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]rounddb.TournamentGreenie, error) {
	if f.ListGreeniesByTournamentFunc != nil {
		return f.ListGreeniesByTournamentFunc(ctx, db, tournamentDate)
	}
	return nil, nil
}

var _ rounddb.Repository = (*FakeRoundRepo)(nil)

// ------------------------
// Fake Points Repo
// ------------------------

type FakePointsRepo struct {
	ListByTournamentFunc func(ctx context.Context, db bun.IDB, tournamentDate string) ([]pointsdb.RoundPointsRow, error)
	ListByTourYearFunc   func(ctx context.Context, db bun.IDB, tourYear string) ([]pointsdb.RoundPointsRow, error)
}

func (f *FakePointsRepo) Insert(ctx context.Context, db bun.IDB, points *pointsdb.Points) error {
	return nil
}

func (f *FakePointsRepo) Get(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*pointsdb.Points, error) {
	return nil, pointsdb.ErrNotFound
}

func (f *FakePointsRepo) UpdateHoleScores(ctx context.Context, db bun.IDB, roundID uuid.UUID, b pointsdomain.HoleScoreBonuses) error {
	return nil
}

func (f *FakePointsRepo) UpdateGreenies(ctx context.Context, db bun.IDB, roundID uuid.UUID, greenies int) error {
	return nil
}

func (f *FakePointsRepo) SetPlacements(ctx context.Context, db bun.IDB, column pointsdb.PlacementColumn, values map[uuid.UUID]int) error {
	return nil
}

func (f *FakePointsRepo) Delete(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
	return nil
}

func (f *FakePointsRepo) ListPlacementRows(ctx context.Context, db bun.IDB, tournamentDate string) ([]pointsdb.PlacementRow, error) {
	return nil, nil
}

func (f *FakePointsRepo) ListByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]pointsdb.RoundPointsRow, error) {
	if f.ListByTournamentFunc != nil {
		return f.ListByTournamentFunc(ctx, db, tournamentDate)
	}
	return nil, nil
}

func (f *FakePointsRepo) ListByTourYear(ctx context.Context, db bun.IDB, tourYear string) ([]pointsdb.RoundPointsRow, error) {
	if f.ListByTourYearFunc != nil {
		return f.ListByTourYearFunc(ctx, db, tourYear)
	}
	return nil, nil
}

func (f *FakePointsRepo) AcquireTournamentLock(ctx context.Context, db bun.IDB, tournamentDate string) error {
	return nil
}

var _ pointsdb.Repository = (*FakePointsRepo)(nil)

// ------------------------
// Fake League Repo
// ------------------------

type FakeLeagueRepo struct {
	Tournament *leaguedb.Tournament
	Course     *leaguedb.Course
	Names      map[string]string

	requestedNames []string
}

func (f *FakeLeagueRepo) GetCourse(ctx context.Context, db bun.IDB, handle string) (*leaguedb.Course, error) {
	if f.Course == nil {
		return nil, leaguedb.ErrNotFound
	}
	return f.Course, nil
}

func (f *FakeLeagueRepo) UpsertCourse(ctx context.Context, db bun.IDB, course *leaguedb.Course) error {
	return nil
}

func (f *FakeLeagueRepo) GetTournament(ctx context.Context, db bun.IDB, date string) (*leaguedb.Tournament, error) {
	if f.Tournament == nil || f.Tournament.Date != date {
		return nil, leaguedb.ErrNotFound
	}
	return f.Tournament, nil
}

func (f *FakeLeagueRepo) GetTournamentCourse(ctx context.Context, db bun.IDB, date string) (*leaguedb.Tournament, *leaguedb.Course, error) {
	t, err := f.GetTournament(ctx, db, date)
	if err != nil {
		return nil, nil, err
	}
	c, err := f.GetCourse(ctx, db, t.CourseHandle)
	if err != nil {
		return nil, nil, err
	}
	return t, c, nil
}

func (f *FakeLeagueRepo) UpsertTournament(ctx context.Context, db bun.IDB, tournament *leaguedb.Tournament) error {
	return nil
}

func (f *FakeLeagueRepo) ListTournamentsByTourYear(ctx context.Context, db bun.IDB, tourYear string) ([]leaguedb.Tournament, error) {
	return nil, nil
}

func (f *FakeLeagueRepo) GetMember(ctx context.Context, db bun.IDB, username string) (*leaguedb.Member, error) {
	if n, ok := f.Names[username]; ok {
		return &leaguedb.Member{Username: username, FirstName: n}, nil
	}
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) UpsertMember(ctx context.Context, db bun.IDB, member *leaguedb.Member) error {
	return nil
}

func (f *FakeLeagueRepo) GetMemberNames(ctx context.Context, db bun.IDB, usernames []string) (map[string]string, error) {
	f.requestedNames = append(f.requestedNames, usernames...)
	out := make(map[string]string)
	for _, u := range usernames {
		if n, ok := f.Names[u]; ok {
			out[u] = n
		}
	}
	return out, nil
}

var _ leaguedb.Repository = (*FakeLeagueRepo)(nil)
