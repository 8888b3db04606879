package roundservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/golf-league/app/eventbus"
	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	pointsservice "github.com/Black-And-White-Club/golf-league/app/modules/points/application"
	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type roundResult = results.OperationResult[*RoundView, error]

// CreateRound stores a new scorecard with its stats, creates its points row
// and re-ranks the tournament.
func (s *RoundService) CreateRound(ctx context.Context, req CreateRoundRequest) (*RoundView, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(req.TournamentDate)
	defer unlock()

	result, err := withTelemetry(s, ctx, "CreateRound", req.TournamentDate+"/"+req.Username, func(ctx context.Context) (roundResult, error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (roundResult, error) {
			return s.createRoundLogic(ctx, db, req)
		})
	})
	view, err := operation.Unwrap(result, err)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, eventbus.RoundCreatedV1, roundPayload(view))
	s.publish(ctx, eventbus.PointsRecalculatedV1, eventbus.PointsRecalculatedPayload{TournamentDate: view.TournamentDate, Trigger: "round.created"})
	return view, nil
}

func (s *RoundService) createRoundLogic(ctx context.Context, db bun.IDB, req CreateRoundRequest) (roundResult, error) {
	if err := s.points.AcquireTournamentLock(ctx, db, req.TournamentDate); err != nil {
		return roundResult{}, err
	}

	_, course, err := s.league.GetTournamentCourse(ctx, db, req.TournamentDate)
	if err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return results.FailureResult[*RoundView, error](rounddomain.ErrTournamentNotFound), nil
		}
		return roundResult{}, fmt.Errorf("failed to load tournament: %w", err)
	}

	if _, err := s.league.GetMember(ctx, db, req.Username); err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return results.FailureResult[*RoundView, error](rounddomain.ErrMemberNotFound), nil
		}
		return roundResult{}, fmt.Errorf("failed to load member: %w", err)
	}

	if _, err := s.repo.FindRound(ctx, db, req.TournamentDate, req.Username); err == nil {
		return results.FailureResult[*RoundView, error](rounddomain.ErrRoundExists), nil
	} else if !errors.Is(err, rounddb.ErrNotFound) {
		return roundResult{}, fmt.Errorf("failed to check existing round: %w", err)
	}

	round := &rounddb.Round{
		ID:             uuid.New(),
		TournamentDate: req.TournamentDate,
		Username:       req.Username,
		Strokes:        req.Strokes,
		Putts:          req.Putts,
	}
	if failure, err := s.computeStats(ctx, db, round, course); failure != nil || err != nil {
		return failureOrError(failure, err)
	}

	if err := s.repo.CreateRound(ctx, db, round); err != nil {
		return roundResult{}, fmt.Errorf("failed to create round: %w", err)
	}

	scores := pointsservice.RoundScores{RoundID: round.ID, Strokes: round.Strokes, Pars: course.CourseData().Pars}
	if _, err := s.points.Create(ctx, db, scores); err != nil {
		return pointsFailure(err)
	}
	if err := s.reRank(ctx, db, round.TournamentDate); err != nil {
		return roundResult{}, err
	}

	return results.SuccessResult[*RoundView, error](newRoundView(round)), nil
}

// UpdateRound replaces the hole entries, recomputes the round's stats and
// hole-score points, then re-ranks the tournament. Stats of later rounds
// are not revisited.
func (s *RoundService) UpdateRound(ctx context.Context, roundID uuid.UUID, req UpdateRoundRequest) (*RoundView, error) {
	if err := rounddomain.ValidateScores(req.Strokes, req.Putts); err != nil {
		return nil, err
	}

	existing, err := s.lookupRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(existing.TournamentDate)
	defer unlock()

	result, err := withTelemetry(s, ctx, "UpdateRound", roundID.String(), func(ctx context.Context) (roundResult, error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (roundResult, error) {
			return s.updateRoundLogic(ctx, db, existing.TournamentDate, roundID, req)
		})
	})
	view, err := operation.Unwrap(result, err)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, eventbus.RoundUpdatedV1, roundPayload(view))
	s.publish(ctx, eventbus.PointsRecalculatedV1, eventbus.PointsRecalculatedPayload{TournamentDate: view.TournamentDate, Trigger: "round.updated"})
	return view, nil
}

func (s *RoundService) updateRoundLogic(ctx context.Context, db bun.IDB, tournamentDate string, roundID uuid.UUID, req UpdateRoundRequest) (roundResult, error) {
	if err := s.points.AcquireTournamentLock(ctx, db, tournamentDate); err != nil {
		return roundResult{}, err
	}

	round, err := s.repo.GetRound(ctx, db, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return results.FailureResult[*RoundView, error](pointsdomain.ErrRoundNotFound), nil
		}
		return roundResult{}, fmt.Errorf("failed to load round: %w", err)
	}

	_, course, err := s.league.GetTournamentCourse(ctx, db, round.TournamentDate)
	if err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return results.FailureResult[*RoundView, error](rounddomain.ErrTournamentNotFound), nil
		}
		return roundResult{}, fmt.Errorf("failed to load tournament: %w", err)
	}

	round.Strokes = req.Strokes
	round.Putts = req.Putts
	if failure, err := s.computeStats(ctx, db, round, course); failure != nil || err != nil {
		return failureOrError(failure, err)
	}

	if err := s.repo.UpdateRound(ctx, db, round); err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return results.FailureResult[*RoundView, error](pointsdomain.ErrRoundNotFound), nil
		}
		return roundResult{}, fmt.Errorf("failed to update round: %w", err)
	}

	scores := pointsservice.RoundScores{RoundID: round.ID, Strokes: round.Strokes, Pars: course.CourseData().Pars}
	if _, err := s.points.UpdateScores(ctx, db, scores); err != nil {
		return pointsFailure(err)
	}
	if err := s.reRank(ctx, db, round.TournamentDate); err != nil {
		return roundResult{}, err
	}

	return results.SuccessResult[*RoundView, error](newRoundView(round)), nil
}

// DeleteRound removes a round, its points and greenies, then re-ranks the
// remaining rounds of the tournament.
func (s *RoundService) DeleteRound(ctx context.Context, roundID uuid.UUID) error {
	existing, err := s.lookupRound(ctx, roundID)
	if err != nil {
		return err
	}

	unlock := s.locker.Lock(existing.TournamentDate)
	defer unlock()

	result, err := withTelemetry(s, ctx, "DeleteRound", roundID.String(), func(ctx context.Context) (roundResult, error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (roundResult, error) {
			return s.deleteRoundLogic(ctx, db, existing)
		})
	})
	if _, err := operation.Unwrap(result, err); err != nil {
		return err
	}

	s.publish(ctx, eventbus.RoundDeletedV1, roundPayload(newRoundView(existing)))
	s.publish(ctx, eventbus.PointsRecalculatedV1, eventbus.PointsRecalculatedPayload{TournamentDate: existing.TournamentDate, Trigger: "round.deleted"})
	return nil
}

func (s *RoundService) deleteRoundLogic(ctx context.Context, db bun.IDB, round *rounddb.Round) (roundResult, error) {
	if err := s.points.AcquireTournamentLock(ctx, db, round.TournamentDate); err != nil {
		return roundResult{}, err
	}

	if err := s.points.Remove(ctx, db, round.ID); err != nil {
		return pointsFailure(err)
	}

	if err := s.repo.DeleteRound(ctx, db, round.ID); err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return results.FailureResult[*RoundView, error](pointsdomain.ErrRoundNotFound), nil
		}
		return roundResult{}, fmt.Errorf("failed to delete round: %w", err)
	}

	if err := s.reRank(ctx, db, round.TournamentDate); err != nil {
		return roundResult{}, err
	}
	return results.SuccessResult[*RoundView, error](newRoundView(round)), nil
}

// computeStats fills the derived columns of round from its holes, the course
// and the player's handicap history before the tournament date.
func (s *RoundService) computeStats(ctx context.Context, db bun.IDB, round *rounddb.Round, course *leaguedb.Course) (failure error, err error) {
	history, err := s.repo.HandicapHistory(ctx, db, round.Username, round.TournamentDate, rounddomain.MaxHistoryRounds)
	if err != nil {
		return nil, fmt.Errorf("failed to load handicap history: %w", err)
	}

	stats, err := rounddomain.ComputeRoundStats(round.Strokes, round.Putts, course.CourseData(), history)
	if err != nil {
		if errors.Is(err, rounddomain.ErrCourseDataMissing) {
			return err, nil
		}
		return nil, fmt.Errorf("failed to compute round stats: %w", err)
	}
	round.ApplyStats(stats)
	return nil, nil
}

func (s *RoundService) reRank(ctx context.Context, db bun.IDB, tournamentDate string) error {
	if err := s.points.UpdateStrokesPositions(ctx, db, tournamentDate); err != nil {
		return fmt.Errorf("failed to update strokes positions: %w", err)
	}
	if err := s.points.UpdatePuttsPositions(ctx, db, tournamentDate); err != nil {
		return fmt.Errorf("failed to update putts positions: %w", err)
	}
	return nil
}

// lookupRound reads a round outside any transaction to learn its tournament.
func (s *RoundService) lookupRound(ctx context.Context, roundID uuid.UUID) (*rounddb.Round, error) {
	round, err := s.repo.GetRound(ctx, nil, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return nil, pointsdomain.ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to load round: %w", err)
	}
	return round, nil
}

func failureOrError(failure, err error) (roundResult, error) {
	if err != nil {
		return roundResult{}, err
	}
	return results.FailureResult[*RoundView, error](failure), nil
}

// pointsFailure turns points engine errors into domain failures when they
// are client visible.
func pointsFailure(err error) (roundResult, error) {
	if errors.Is(err, pointsdomain.ErrDuplicateRound) {
		return results.FailureResult[*RoundView, error](pointsdomain.ErrDuplicateRound), nil
	}
	if errors.Is(err, pointsdomain.ErrRoundNotFound) {
		return results.FailureResult[*RoundView, error](pointsdomain.ErrRoundNotFound), nil
	}
	return roundResult{}, err
}

func roundPayload(v *RoundView) eventbus.RoundEventPayload {
	return eventbus.RoundEventPayload{
		RoundID:        v.ID.String(),
		TournamentDate: v.TournamentDate,
		Username:       v.Username,
		NetStrokes:     v.NetStrokes,
		IsComplete:     v.IsComplete,
	}
}
