package leaderboardhandlers

import (
	"context"

	leaderboardservice "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/application"
	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
)

type FakeService struct {
	TournamentWinnersFunc     func(ctx context.Context, tournamentDate string) (*leaderboarddomain.TournamentWinners, error)
	TournamentStandingsFunc   func(ctx context.Context, tournamentDate string) ([]leaderboarddomain.StandingsRow, error)
	YearlyStandingsFunc       func(ctx context.Context, tourYear string, topN int) ([]leaderboarddomain.StandingsRow, error)
	ExportYearlyStandingsFunc func(ctx context.Context, tourYear string, topN int) ([]byte, error)
	HandicapChartFunc         func(ctx context.Context, username string) ([]byte, error)
}

func (f *FakeService) TournamentWinners(ctx context.Context, tournamentDate string) (*leaderboarddomain.TournamentWinners, error) {
	if f.TournamentWinnersFunc != nil {
		return f.TournamentWinnersFunc(ctx, tournamentDate)
	}
	return &leaderboarddomain.TournamentWinners{}, nil
}

func (f *FakeService) TournamentStandings(ctx context.Context, tournamentDate string) ([]leaderboarddomain.StandingsRow, error) {
	if f.TournamentStandingsFunc != nil {
		return f.TournamentStandingsFunc(ctx, tournamentDate)
	}
	return nil, nil
}

func (f *FakeService) YearlyStandings(ctx context.Context, tourYear string, topN int) ([]leaderboarddomain.StandingsRow, error) {
	if f.YearlyStandingsFunc != nil {
		return f.YearlyStandingsFunc(ctx, tourYear, topN)
	}
	return nil, nil
}

func (f *FakeService) ExportYearlyStandings(ctx context.Context, tourYear string, topN int) ([]byte, error) {
	if f.ExportYearlyStandingsFunc != nil {
		return f.ExportYearlyStandingsFunc(ctx, tourYear, topN)
	}
	return []byte("xlsx"), nil
}

func (f *FakeService) HandicapChart(ctx context.Context, username string) ([]byte, error) {
	if f.HandicapChartFunc != nil {
		return f.HandicapChartFunc(ctx, username)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

var _ leaderboardservice.Service = (*FakeService)(nil)

type FakeRecalculator struct {
	Calls []string
	Err   error
}

func (f *FakeRecalculator) RecalculateTournament(ctx context.Context, tournamentDate string) error {
	f.Calls = append(f.Calls, tournamentDate)
	return f.Err
}
