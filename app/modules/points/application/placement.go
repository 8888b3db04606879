package pointsservice

import (
	"context"
	"fmt"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	pointsdb "github.com/Black-And-White-Club/golf-league/app/modules/points/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability/attr"
	"github.com/Black-And-White-Club/golf-league/app/shared/operation"
	"github.com/Black-And-White-Club/golf-league/app/shared/results"
	"github.com/uptrace/bun"
)

type rankResult = results.OperationResult[int, error]

// UpdateStrokesPositions re-ranks every round of the tournament by net strokes.
// Callers must hold the tournament lock.
func (s *PointsService) UpdateStrokesPositions(ctx context.Context, db bun.IDB, tournamentDate string) error {
	return s.updatePositions(ctx, db, "UpdateStrokesPositions", tournamentDate, pointsdb.PlacementStrokes)
}

// UpdatePuttsPositions re-ranks every round of the tournament by total putts.
// Callers must hold the tournament lock.
func (s *PointsService) UpdatePuttsPositions(ctx context.Context, db bun.IDB, tournamentDate string) error {
	return s.updatePositions(ctx, db, "UpdatePuttsPositions", tournamentDate, pointsdb.PlacementPutts)
}

func (s *PointsService) updatePositions(ctx context.Context, db bun.IDB, opName, tournamentDate string, column pointsdb.PlacementColumn) error {
	result, err := withTelemetry(s, ctx, opName, tournamentDate, func(ctx context.Context) (rankResult, error) {
		return runInTx(s, ctx, db, func(ctx context.Context, db bun.IDB) (rankResult, error) {
			return s.updatePositionsLogic(ctx, db, tournamentDate, column)
		})
	})
	_, err = operation.Unwrap(result, err)
	return err
}

func (s *PointsService) updatePositionsLogic(ctx context.Context, db bun.IDB, tournamentDate string, column pointsdb.PlacementColumn) (rankResult, error) {
	rows, err := s.repo.ListPlacementRows(ctx, db, tournamentDate)
	if err != nil {
		return rankResult{}, fmt.Errorf("failed to list placement rows: %w", err)
	}

	entries := make([]pointsdomain.PlacementEntry, len(rows))
	bonuses := pointsdomain.StrokesPlacementBonuses
	if column == pointsdb.PlacementPutts {
		bonuses = pointsdomain.PuttsPlacementBonuses
	}
	for i, row := range rows {
		value := row.NetStrokes
		if column == pointsdb.PlacementPutts {
			value = row.TotalPutts
		}
		entries[i] = pointsdomain.PlacementEntry{RoundID: row.RoundID, Value: value, Complete: row.IsComplete}
	}

	awards := pointsdomain.AssignPlacementPoints(entries, bonuses)
	if err := s.repo.SetPlacements(ctx, db, column, awards); err != nil {
		return rankResult{}, fmt.Errorf("failed to write placements: %w", err)
	}

	ranked := 0
	for _, e := range entries {
		if e.Complete {
			ranked++
		}
	}
	if s.metrics != nil {
		s.metrics.RecordPointsRecalculation(ctx, string(column), ranked)
	}
	s.logger.InfoContext(ctx, "Placement points updated",
		attr.ExtractCorrelationID(ctx),
		attr.String("tournament_date", tournamentDate),
		attr.String("category", string(column)),
		attr.Int("ranked_rounds", ranked),
	)
	return results.SuccessResult[int, error](ranked), nil
}

// RecalculateTournament re-runs both placement passes in one transaction
// holding the tournament lock.
func (s *PointsService) RecalculateTournament(ctx context.Context, tournamentDate string) error {
	unlock := s.locker.Lock(tournamentDate)
	defer unlock()

	result, err := withTelemetry(s, ctx, "RecalculateTournament", tournamentDate, func(ctx context.Context) (results.OperationResult[bool, error], error) {
		return operation.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
			if err := s.AcquireTournamentLock(ctx, db, tournamentDate); err != nil {
				return results.OperationResult[bool, error]{}, err
			}
			if err := s.UpdateStrokesPositions(ctx, db, tournamentDate); err != nil {
				return results.OperationResult[bool, error]{}, err
			}
			if err := s.UpdatePuttsPositions(ctx, db, tournamentDate); err != nil {
				return results.OperationResult[bool, error]{}, err
			}
			return results.SuccessResult[bool, error](true), nil
		})
	})
	_, err = operation.Unwrap(result, err)
	return err
}
