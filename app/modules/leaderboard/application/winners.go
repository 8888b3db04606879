package leaderboardservice

import (
	"context"
	"errors"
	"fmt"

	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
)

type winnersResult = results.OperationResult[*leaderboarddomain.TournamentWinners, error]

// TournamentWinners resolves the strokes, putts, greenie and skins winners of
// a tournament.
func (s *LeaderboardService) TournamentWinners(ctx context.Context, tournamentDate string) (*leaderboarddomain.TournamentWinners, error) {
	result, err := withTelemetry(s, ctx, "TournamentWinners", tournamentDate, func(ctx context.Context) (winnersResult, error) {
		_, course, err := s.league.GetTournamentCourse(ctx, s.db, tournamentDate)
		if err != nil {
			if errors.Is(err, leaguedb.ErrNotFound) {
				return results.FailureResult[*leaderboarddomain.TournamentWinners, error](rounddomain.ErrTournamentNotFound), nil
			}
			return winnersResult{}, fmt.Errorf("failed to load tournament: %w", err)
		}

		rounds, err := s.rounds.ListRoundsByTournament(ctx, s.db, tournamentDate)
		if err != nil {
			return winnersResult{}, fmt.Errorf("failed to list rounds: %w", err)
		}
		greenies, err := s.rounds.ListGreeniesByTournament(ctx, s.db, tournamentDate)
		if err != nil {
			return winnersResult{}, fmt.Errorf("failed to list greenies: %w", err)
		}

		roundResults := make([]leaderboarddomain.RoundResult, len(rounds))
		for i, r := range rounds {
			roundResults[i] = leaderboarddomain.RoundResult{
				RoundID:        r.ID,
				Username:       r.Username,
				Strokes:        r.Strokes,
				Putts:          r.Putts,
				TotalStrokes:   r.TotalStrokes,
				TotalPutts:     r.TotalPutts,
				NetStrokes:     r.NetStrokes,
				CourseHandicap: r.CourseHandicap,
			}
		}

		entries := make([]leaderboarddomain.GreenieEntry, len(greenies))
		for i, g := range greenies {
			entries[i] = leaderboarddomain.GreenieEntry{
				GreenieID: g.ID,
				RoundID:   g.RoundID,
				Username:  g.Username,
				Hole:      g.Hole,
				Feet:      g.Feet,
				Inches:    g.Inches,
			}
		}

		winners := leaderboarddomain.ResolveTournamentWinners(roundResults, entries, course.CourseData().Handicaps)
		return results.SuccessResult[*leaderboarddomain.TournamentWinners, error](&winners), nil
	})
	return operation.Unwrap(result, err)
}
