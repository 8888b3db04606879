package roundservice

import (
	"context"
	"sync"

	"github.com/Black-And-White-Club/golf-league/app/eventbus"
	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	pointsservice "github.com/Black-And-White-Club/golf-league/app/modules/points/application"
	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Round Repo
// ------------------------

// FakeRoundRepo keeps rounds and greenies in memory and records every call.
type FakeRoundRepo struct {
	mu       sync.Mutex
	trace    []string
	rounds   map[uuid.UUID]*rounddb.Round
	greenies map[uuid.UUID]*rounddb.Greenie

	HandicapHistoryFunc func(ctx context.Context, db bun.IDB, username, beforeDate string, limit int) ([]float64, error)
	CreateRoundFunc     func(ctx context.Context, db bun.IDB, round *rounddb.Round) error
}

func NewFakeRoundRepo() *FakeRoundRepo {
	return &FakeRoundRepo{
		trace:    []string{},
		rounds:   map[uuid.UUID]*rounddb.Round{},
		greenies: map[uuid.UUID]*rounddb.Greenie{},
	}
}

func (f *FakeRoundRepo) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeRoundRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRoundRepo) CreateRound(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	f.record("CreateRound")
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, db, round)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *round
	f.rounds[round.ID] = &cp
	return nil
}

func (f *FakeRoundRepo) GetRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*rounddb.Round, error) {
	f.record("GetRound")
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rounds[roundID]
	if !ok {
		return nil, rounddb.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *FakeRoundRepo) FindRound(ctx context.Context, db bun.IDB, tournamentDate, username string) (*rounddb.Round, error) {
	f.record("FindRound")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rounds {
		if r.TournamentDate == tournamentDate && r.Username == username {
			cp := *r
			return &cp, nil
		}
	}
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) UpdateRound(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	f.record("UpdateRound")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rounds[round.ID]; !ok {
		return rounddb.ErrNotFound
	}
	cp := *round
	f.rounds[round.ID] = &cp
	return nil
}

func (f *FakeRoundRepo) DeleteRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
	f.record("DeleteRound")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rounds[roundID]; !ok {
		return rounddb.ErrNotFound
	}
	delete(f.rounds, roundID)
	for id, g := range f.greenies {
		if g.RoundID == roundID {
			delete(f.greenies, id)
		}
	}
	return nil
}

func (f *FakeRoundRepo) ListRoundsByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]rounddb.Round, error) {
	f.record("ListRoundsByTournament")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []rounddb.Round
	for _, r := range f.rounds {
		if r.TournamentDate == tournamentDate {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *FakeRoundRepo) HandicapHistory(ctx context.Context, db bun.IDB, username, beforeDate string, limit int) ([]float64, error) {
	f.record("HandicapHistory")
	if f.HandicapHistoryFunc != nil {
		return f.HandicapHistoryFunc(ctx, db, username, beforeDate, limit)
	}
	return nil, nil
}

func (f *FakeRoundRepo) ListHandicapPoints(ctx context.Context, db bun.IDB, username string) ([]rounddb.HandicapPoint, error) {
	f.record("ListHandicapPoints")
	return nil, nil
}

func (f *FakeRoundRepo) CreateGreenie(ctx context.Context, db bun.IDB, greenie *rounddb.Greenie) error {
	f.record("CreateGreenie")
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *greenie
	f.greenies[greenie.ID] = &cp
	return nil
}

func (f *FakeRoundRepo) GetGreenie(ctx context.Context, db bun.IDB, greenieID uuid.UUID) (*rounddb.Greenie, error) {
	f.record("GetGreenie")
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.greenies[greenieID]
	if !ok {
		return nil, rounddb.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *FakeRoundRepo) UpdateGreenie(ctx context.Context, db bun.IDB, greenie *rounddb.Greenie) error {
	f.record("UpdateGreenie")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.greenies[greenie.ID]; !ok {
		return rounddb.ErrNotFound
	}
	cp := *greenie
	f.greenies[greenie.ID] = &cp
	return nil
}

func (f *FakeRoundRepo) DeleteGreenie(ctx context.Context, db bun.IDB, greenieID uuid.UUID) error {
	f.record("DeleteGreenie")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.greenies[greenieID]; !ok {
		return rounddb.ErrNotFound
	}
	delete(f.greenies, greenieID)
	return nil
}

func (f *FakeRoundRepo) ListGreeniesByRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]rounddb.Greenie, error) {
	f.record("ListGreeniesByRound")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []rounddb.Greenie
	for _, g := range f.greenies {
		if g.RoundID == roundID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *FakeRoundRepo) ListGreeniesByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]rounddb.TournamentGreenie, error) {
	f.record("ListGreeniesByTournament")
	return nil, nil
}

var _ rounddb.Repository = (*FakeRoundRepo)(nil)

// ------------------------
// Fake League Repo
// ------------------------

type FakeLeagueRepo struct {
	Tournaments map[string]*leaguedb.Tournament
	Courses     map[string]*leaguedb.Course
	Members     map[string]*leaguedb.Member
}

func (f *FakeLeagueRepo) GetCourse(ctx context.Context, db bun.IDB, handle string) (*leaguedb.Course, error) {
	if c, ok := f.Courses[handle]; ok {
		return c, nil
	}
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) UpsertCourse(ctx context.Context, db bun.IDB, course *leaguedb.Course) error {
	return nil
}

func (f *FakeLeagueRepo) GetTournament(ctx context.Context, db bun.IDB, date string) (*leaguedb.Tournament, error) {
	if t, ok := f.Tournaments[date]; ok {
		return t, nil
	}
	return nil, leaguedb.ErrNotFound
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
	if m, ok := f.Members[username]; ok {
		return m, nil
	}
	return nil, leaguedb.ErrNotFound
}

func (f *FakeLeagueRepo) UpsertMember(ctx context.Context, db bun.IDB, member *leaguedb.Member) error {
	return nil
}

func (f *FakeLeagueRepo) GetMemberNames(ctx context.Context, db bun.IDB, usernames []string) (map[string]string, error) {
	return map[string]string{}, nil
}

var _ leaguedb.Repository = (*FakeLeagueRepo)(nil)

// ------------------------
// Fake Points Service
// ------------------------

type FakePointsService struct {
	mu    sync.Mutex
	trace []string

	CreateFunc         func(ctx context.Context, db bun.IDB, scores pointsservice.RoundScores) (*pointsdomain.Points, error)
	UpdateScoresFunc   func(ctx context.Context, db bun.IDB, scores pointsservice.RoundScores) (*pointsdomain.Points, error)
	UpdateGreeniesFunc func(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*pointsdomain.Points, error)
	RemoveFunc         func(ctx context.Context, db bun.IDB, roundID uuid.UUID) error
}

func (f *FakePointsService) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakePointsService) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePointsService) Create(ctx context.Context, db bun.IDB, scores pointsservice.RoundScores) (*pointsdomain.Points, error) {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, scores)
	}
	p := pointsdomain.NewPoints(scores.RoundID, scores.Strokes, scores.Pars)
	return &p, nil
}

func (f *FakePointsService) UpdateScores(ctx context.Context, db bun.IDB, scores pointsservice.RoundScores) (*pointsdomain.Points, error) {
	f.record("UpdateScores")
	if f.UpdateScoresFunc != nil {
		return f.UpdateScoresFunc(ctx, db, scores)
	}
	p := pointsdomain.NewPoints(scores.RoundID, scores.Strokes, scores.Pars)
	return &p, nil
}

func (f *FakePointsService) UpdateGreenies(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*pointsdomain.Points, error) {
	f.record("UpdateGreenies")
	if f.UpdateGreeniesFunc != nil {
		return f.UpdateGreeniesFunc(ctx, db, roundID)
	}
	return &pointsdomain.Points{RoundID: roundID}, nil
}

func (f *FakePointsService) UpdateStrokesPositions(ctx context.Context, db bun.IDB, tournamentDate string) error {
	f.record("UpdateStrokesPositions")
	return nil
}

func (f *FakePointsService) UpdatePuttsPositions(ctx context.Context, db bun.IDB, tournamentDate string) error {
	f.record("UpdatePuttsPositions")
	return nil
}

func (f *FakePointsService) Remove(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
	f.record("Remove")
	if f.RemoveFunc != nil {
		return f.RemoveFunc(ctx, db, roundID)
	}
	return nil
}

func (f *FakePointsService) AcquireTournamentLock(ctx context.Context, db bun.IDB, tournamentDate string) error {
	f.record("AcquireTournamentLock")
	return nil
}

func (f *FakePointsService) GetPoints(ctx context.Context, roundID uuid.UUID) (*pointsdomain.Points, error) {
	f.record("GetPoints")
	return &pointsdomain.Points{RoundID: roundID, Participation: pointsdomain.ParticipationPoints}, nil
}

func (f *FakePointsService) RecalculateTournament(ctx context.Context, tournamentDate string) error {
	f.record("RecalculateTournament")
	return nil
}

var _ pointsservice.Service = (*FakePointsService)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type publishedEvent struct {
	Topic   string
	Payload any
}

type FakePublisher struct {
	mu     sync.Mutex
	Events []publishedEvent
	Err    error
}

func (f *FakePublisher) Publish(ctx context.Context, topic string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Events = append(f.Events, publishedEvent{Topic: topic, Payload: payload})
	return nil
}

func (f *FakePublisher) Close() error { return nil }

func (f *FakePublisher) Topics() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Events))
	for i, e := range f.Events {
		out[i] = e.Topic
	}
	return out
}

var _ eventbus.Publisher = (*FakePublisher)(nil)
