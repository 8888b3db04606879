package leaderboardservice

import (
	"context"
	"fmt"

	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	pointsdb "github.com/Black-And-White-Club/golf-league/app/modules/points/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
)

type standingsResult = results.OperationResult[[]leaderboarddomain.StandingsRow, error]

// TournamentStandings lists every round of a tournament with its point total.
func (s *LeaderboardService) TournamentStandings(ctx context.Context, tournamentDate string) ([]leaderboarddomain.StandingsRow, error) {
	result, err := withTelemetry(s, ctx, "TournamentStandings", tournamentDate, func(ctx context.Context) (standingsResult, error) {
		rows, err := s.points.ListByTournament(ctx, s.db, tournamentDate)
		if err != nil {
			return standingsResult{}, fmt.Errorf("failed to list tournament points: %w", err)
		}
		rounds, names, err := s.withNames(ctx, rows)
		if err != nil {
			return standingsResult{}, err
		}
		return results.SuccessResult[[]leaderboarddomain.StandingsRow, error](leaderboarddomain.TournamentStandings(rounds, names)), nil
	})
	return operation.Unwrap(result, err)
}

// YearlyStandings sums each player's best topN rounds of the tour year.
func (s *LeaderboardService) YearlyStandings(ctx context.Context, tourYear string, topN int) ([]leaderboarddomain.StandingsRow, error) {
	result, err := withTelemetry(s, ctx, "YearlyStandings", tourYear, func(ctx context.Context) (standingsResult, error) {
		rows, err := s.points.ListByTourYear(ctx, s.db, tourYear)
		if err != nil {
			return standingsResult{}, fmt.Errorf("failed to list tour year points: %w", err)
		}
		rounds, names, err := s.withNames(ctx, rows)
		if err != nil {
			return standingsResult{}, err
		}
		return results.SuccessResult[[]leaderboarddomain.StandingsRow, error](leaderboarddomain.YearlyStandings(rounds, names, topN)), nil
	})
	return operation.Unwrap(result, err)
}

func (s *LeaderboardService) withNames(ctx context.Context, rows []pointsdb.RoundPointsRow) ([]leaderboarddomain.RoundPoints, map[string]string, error) {
	rounds := make([]leaderboarddomain.RoundPoints, len(rows))
	seen := make(map[string]bool, len(rows))
	usernames := make([]string, 0, len(rows))
	for i, row := range rows {
		rounds[i] = leaderboarddomain.RoundPoints{
			Username:       row.Username,
			TournamentDate: row.TournamentDate,
			Points:         row.ToDomain(),
		}
		if !seen[row.Username] {
			seen[row.Username] = true
			usernames = append(usernames, row.Username)
		}
	}

	if len(usernames) == 0 {
		return rounds, map[string]string{}, nil
	}
	names, err := s.league.GetMemberNames(ctx, s.db, usernames)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load member names: %w", err)
	}
	return rounds, names, nil
}
