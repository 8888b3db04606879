package roundservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/golf-league/app/eventbus"
	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type greenieResult = results.OperationResult[*greenieChange, error]

type greenieChange struct {
	greenie *rounddb.Greenie
	points  *pointsdomain.Points
}

// CreateGreenie records a greenie on a par-3 hole and refreshes the round's
// greenie points.
func (s *RoundService) CreateGreenie(ctx context.Context, req GreenieRequest) (*GreenieView, error) {
	if err := req.validateShape(); err != nil {
		return nil, err
	}

	result, err := withTelemetry(s, ctx, "CreateGreenie", req.RoundID.String(), func(ctx context.Context) (greenieResult, error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (greenieResult, error) {
			if failure, err := s.checkGreenieHole(ctx, db, req.RoundID, req); failure != nil || err != nil {
				return greenieFailureOrError(failure, err)
			}

			greenie := &rounddb.Greenie{
				ID:      uuid.New(),
				RoundID: req.RoundID,
				Hole:    req.Hole,
				Feet:    req.Feet,
				Inches:  req.Inches,
			}
			if err := s.repo.CreateGreenie(ctx, db, greenie); err != nil {
				return greenieResult{}, fmt.Errorf("failed to create greenie: %w", err)
			}
			return s.refreshGreeniePoints(ctx, db, greenie)
		})
	})
	change, err := operation.Unwrap(result, err)
	if err != nil {
		return nil, err
	}

	s.publishGreenie(ctx, change, "created")
	return newGreenieView(change.greenie), nil
}

// UpdateGreenie edits the hole or distance of a greenie. The round is fixed.
func (s *RoundService) UpdateGreenie(ctx context.Context, greenieID uuid.UUID, req GreenieRequest) (*GreenieView, error) {
	if err := req.validateShape(); err != nil {
		return nil, err
	}

	result, err := withTelemetry(s, ctx, "UpdateGreenie", greenieID.String(), func(ctx context.Context) (greenieResult, error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (greenieResult, error) {
			greenie, err := s.repo.GetGreenie(ctx, db, greenieID)
			if err != nil {
				if errors.Is(err, rounddb.ErrNotFound) {
					return results.FailureResult[*greenieChange, error](rounddomain.ErrGreenieNotFound), nil
				}
				return greenieResult{}, fmt.Errorf("failed to load greenie: %w", err)
			}

			if failure, err := s.checkGreenieHole(ctx, db, greenie.RoundID, req); failure != nil || err != nil {
				return greenieFailureOrError(failure, err)
			}

			greenie.Hole = req.Hole
			greenie.Feet = req.Feet
			greenie.Inches = req.Inches
			if err := s.repo.UpdateGreenie(ctx, db, greenie); err != nil {
				if errors.Is(err, rounddb.ErrNotFound) {
					return results.FailureResult[*greenieChange, error](rounddomain.ErrGreenieNotFound), nil
				}
				return greenieResult{}, fmt.Errorf("failed to update greenie: %w", err)
			}
			return s.refreshGreeniePoints(ctx, db, greenie)
		})
	})
	change, err := operation.Unwrap(result, err)
	if err != nil {
		return nil, err
	}

	s.publishGreenie(ctx, change, "updated")
	return newGreenieView(change.greenie), nil
}

// DeleteGreenie removes a greenie and refreshes the round's greenie points.
func (s *RoundService) DeleteGreenie(ctx context.Context, greenieID uuid.UUID) error {
	result, err := withTelemetry(s, ctx, "DeleteGreenie", greenieID.String(), func(ctx context.Context) (greenieResult, error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (greenieResult, error) {
			greenie, err := s.repo.GetGreenie(ctx, db, greenieID)
			if err != nil {
				if errors.Is(err, rounddb.ErrNotFound) {
					return results.FailureResult[*greenieChange, error](rounddomain.ErrGreenieNotFound), nil
				}
				return greenieResult{}, fmt.Errorf("failed to load greenie: %w", err)
			}
			if err := s.repo.DeleteGreenie(ctx, db, greenieID); err != nil {
				if errors.Is(err, rounddb.ErrNotFound) {
					return results.FailureResult[*greenieChange, error](rounddomain.ErrGreenieNotFound), nil
				}
				return greenieResult{}, fmt.Errorf("failed to delete greenie: %w", err)
			}
			return s.refreshGreeniePoints(ctx, db, greenie)
		})
	})
	change, err := operation.Unwrap(result, err)
	if err != nil {
		return err
	}

	s.publishGreenie(ctx, change, "deleted")
	return nil
}

// checkGreenieHole confirms the round exists and the hole is a par 3 on the
// tournament's course.
func (s *RoundService) checkGreenieHole(ctx context.Context, db bun.IDB, roundID uuid.UUID, req GreenieRequest) (failure error, err error) {
	round, err := s.repo.GetRound(ctx, db, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return pointsdomain.ErrRoundNotFound, nil
		}
		return nil, fmt.Errorf("failed to load round: %w", err)
	}

	_, course, err := s.league.GetTournamentCourse(ctx, db, round.TournamentDate)
	if err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return rounddomain.ErrTournamentNotFound, nil
		}
		return nil, fmt.Errorf("failed to load tournament: %w", err)
	}

	if err := rounddomain.ValidateGreenie(req.Hole, req.Feet, req.Inches, course.CourseData().Pars); err != nil {
		return err, nil
	}
	return nil, nil
}

func (s *RoundService) refreshGreeniePoints(ctx context.Context, db bun.IDB, greenie *rounddb.Greenie) (greenieResult, error) {
	points, err := s.points.UpdateGreenies(ctx, db, greenie.RoundID)
	if err != nil {
		if errors.Is(err, pointsdomain.ErrRoundNotFound) {
			return results.FailureResult[*greenieChange, error](pointsdomain.ErrRoundNotFound), nil
		}
		return greenieResult{}, err
	}
	return results.SuccessResult[*greenieChange, error](&greenieChange{greenie: greenie, points: points}), nil
}

func (s *RoundService) publishGreenie(ctx context.Context, change *greenieChange, action string) {
	payload := eventbus.GreenieEventPayload{
		GreenieID: change.greenie.ID.String(),
		RoundID:   change.greenie.RoundID.String(),
		Action:    action,
	}
	if change.points != nil {
		payload.Greenies = change.points.Greenies
	}
	s.publish(ctx, eventbus.GreenieChangedV1, payload)
}

func greenieFailureOrError(failure, err error) (greenieResult, error) {
	if err != nil {
		return greenieResult{}, err
	}
	return results.FailureResult[*greenieChange, error](failure), nil
}
