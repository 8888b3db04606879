package pointsservice

import (
	"context"
	"errors"
	"fmt"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	pointsdb "github.com/Black-And-White-Club/golf-league/app/modules/points/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability/attr"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type pointsResult = results.OperationResult[*pointsdomain.Points, error]

// Create inserts the points row for a new round.
func (s *PointsService) Create(ctx context.Context, db bun.IDB, scores RoundScores) (*pointsdomain.Points, error) {
	result, err := withTelemetry(s, ctx, "Create", scores.RoundID.String(), func(ctx context.Context) (pointsResult, error) {
		return runInTx(s, ctx, db, func(ctx context.Context, db bun.IDB) (pointsResult, error) {
			return s.createLogic(ctx, db, scores)
		})
	})
	return operation.Unwrap(result, err)
}

func (s *PointsService) createLogic(ctx context.Context, db bun.IDB, scores RoundScores) (pointsResult, error) {
	points := pointsdomain.NewPoints(scores.RoundID, scores.Strokes, scores.Pars)
	if err := s.repo.Insert(ctx, db, pointsdb.FromDomain(points)); err != nil {
		if errors.Is(err, pointsdb.ErrAlreadyExists) {
			return results.FailureResult[*pointsdomain.Points, error](pointsdomain.ErrDuplicateRound), nil
		}
		return pointsResult{}, fmt.Errorf("failed to insert points: %w", err)
	}
	return results.SuccessResult[*pointsdomain.Points, error](&points), nil
}

// UpdateScores recomputes pars, birdies, eagles and aces. Participation,
// placement and greenie categories are left alone.
func (s *PointsService) UpdateScores(ctx context.Context, db bun.IDB, scores RoundScores) (*pointsdomain.Points, error) {
	result, err := withTelemetry(s, ctx, "UpdateScores", scores.RoundID.String(), func(ctx context.Context) (pointsResult, error) {
		return runInTx(s, ctx, db, func(ctx context.Context, db bun.IDB) (pointsResult, error) {
			return s.updateScoresLogic(ctx, db, scores)
		})
	})
	return operation.Unwrap(result, err)
}

func (s *PointsService) updateScoresLogic(ctx context.Context, db bun.IDB, scores RoundScores) (pointsResult, error) {
	bonuses := pointsdomain.ComputeHoleScoreBonuses(scores.Strokes, scores.Pars)
	if err := s.repo.UpdateHoleScores(ctx, db, scores.RoundID, bonuses); err != nil {
		if errors.Is(err, pointsdb.ErrNotFound) {
			return results.FailureResult[*pointsdomain.Points, error](pointsdomain.ErrRoundNotFound), nil
		}
		return pointsResult{}, fmt.Errorf("failed to update hole scores: %w", err)
	}
	return s.reload(ctx, db, scores.RoundID)
}

// UpdateGreenies recomputes the greenies category from the round's greenie rows.
func (s *PointsService) UpdateGreenies(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*pointsdomain.Points, error) {
	result, err := withTelemetry(s, ctx, "UpdateGreenies", roundID.String(), func(ctx context.Context) (pointsResult, error) {
		return runInTx(s, ctx, db, func(ctx context.Context, db bun.IDB) (pointsResult, error) {
			return s.updateGreeniesLogic(ctx, db, roundID)
		})
	})
	return operation.Unwrap(result, err)
}

func (s *PointsService) updateGreeniesLogic(ctx context.Context, db bun.IDB, roundID uuid.UUID) (pointsResult, error) {
	greenies, err := s.greenies.ListGreeniesByRound(ctx, db, roundID)
	if err != nil {
		return pointsResult{}, fmt.Errorf("failed to list greenies: %w", err)
	}

	distances := make([]pointsdomain.Distance, len(greenies))
	for i, g := range greenies {
		distances[i] = pointsdomain.Distance{Feet: g.Feet, Inches: g.Inches}
	}

	if err := s.repo.UpdateGreenies(ctx, db, roundID, pointsdomain.ComputeGreeniePoints(distances)); err != nil {
		if errors.Is(err, pointsdb.ErrNotFound) {
			return results.FailureResult[*pointsdomain.Points, error](pointsdomain.ErrRoundNotFound), nil
		}
		return pointsResult{}, fmt.Errorf("failed to update greenies: %w", err)
	}
	return s.reload(ctx, db, roundID)
}

// Remove deletes a round's points row.
func (s *PointsService) Remove(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
	result, err := withTelemetry(s, ctx, "Remove", roundID.String(), func(ctx context.Context) (results.OperationResult[bool, error], error) {
		return runInTx(s, ctx, db, func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
			if err := s.repo.Delete(ctx, db, roundID); err != nil {
				if errors.Is(err, pointsdb.ErrNotFound) {
					return results.FailureResult[bool, error](pointsdomain.ErrRoundNotFound), nil
				}
				return results.OperationResult[bool, error]{}, fmt.Errorf("failed to delete points: %w", err)
			}
			return results.SuccessResult[bool, error](true), nil
		})
	})
	_, err = operation.Unwrap(result, err)
	return err
}

// GetPoints returns a round's points.
func (s *PointsService) GetPoints(ctx context.Context, roundID uuid.UUID) (*pointsdomain.Points, error) {
	result, err := withTelemetry(s, ctx, "GetPoints", roundID.String(), func(ctx context.Context) (pointsResult, error) {
		return s.reload(ctx, nil, roundID)
	})
	return operation.Unwrap(result, err)
}

func (s *PointsService) reload(ctx context.Context, db bun.IDB, roundID uuid.UUID) (pointsResult, error) {
	row, err := s.repo.Get(ctx, db, roundID)
	if err != nil {
		if errors.Is(err, pointsdb.ErrNotFound) {
			return results.FailureResult[*pointsdomain.Points, error](pointsdomain.ErrRoundNotFound), nil
		}
		return pointsResult{}, fmt.Errorf("failed to load points: %w", err)
	}
	points := row.ToDomain()
	return results.SuccessResult[*pointsdomain.Points, error](&points), nil
}

// AcquireTournamentLock takes the cross-process lock for a tournament. The
// caller must hold the in-process lock and be inside a transaction.
func (s *PointsService) AcquireTournamentLock(ctx context.Context, db bun.IDB, tournamentDate string) error {
	if err := s.repo.AcquireTournamentLock(ctx, db, tournamentDate); err != nil {
		s.logger.ErrorContext(ctx, "Failed to acquire tournament lock",
			attr.ExtractCorrelationID(ctx),
			attr.String("tournament_date", tournamentDate),
			attr.Error(err),
		)
		return err
	}
	return nil
}
