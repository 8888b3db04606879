package roundservice

import (
	"context"
	"errors"
	"fmt"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
	"github.com/google/uuid"
)

// GetRound returns a round with its stored stats.
func (s *RoundService) GetRound(ctx context.Context, roundID uuid.UUID) (*RoundView, error) {
	result, err := withTelemetry(s, ctx, "GetRound", roundID.String(), func(ctx context.Context) (roundResult, error) {
		round, err := s.repo.GetRound(ctx, nil, roundID)
		if err != nil {
			if errors.Is(err, rounddb.ErrNotFound) {
				return results.FailureResult[*RoundView, error](pointsdomain.ErrRoundNotFound), nil
			}
			return roundResult{}, fmt.Errorf("failed to load round: %w", err)
		}
		return results.SuccessResult[*RoundView, error](newRoundView(round)), nil
	})
	return operation.Unwrap(result, err)
}

// GetRoundPoints returns the points breakdown of a round.
func (s *RoundService) GetRoundPoints(ctx context.Context, roundID uuid.UUID) (*pointsdomain.Points, error) {
	return s.points.GetPoints(ctx, roundID)
}
