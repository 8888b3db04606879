package pointsdb

import (
	"context"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for points persistence.
//
// Error semantics:
//   - ErrNotFound: no points row for the round
//   - ErrAlreadyExists: Insert found an existing row
type Repository interface {
	Insert(ctx context.Context, db bun.IDB, points *Points) error
	Get(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*Points, error)
	UpdateHoleScores(ctx context.Context, db bun.IDB, roundID uuid.UUID, bonuses pointsdomain.HoleScoreBonuses) error
	UpdateGreenies(ctx context.Context, db bun.IDB, roundID uuid.UUID, greenies int) error
	// SetPlacements writes one placement column for every listed round.
	SetPlacements(ctx context.Context, db bun.IDB, column PlacementColumn, values map[uuid.UUID]int) error
	Delete(ctx context.Context, db bun.IDB, roundID uuid.UUID) error

	ListPlacementRows(ctx context.Context, db bun.IDB, tournamentDate string) ([]PlacementRow, error)
	ListByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]RoundPointsRow, error)
	ListByTourYear(ctx context.Context, db bun.IDB, tourYear string) ([]RoundPointsRow, error)

	// AcquireTournamentLock takes a transaction-scoped advisory lock for the
	// tournament. Must be called within a transaction.
	AcquireTournamentLock(ctx context.Context, db bun.IDB, tournamentDate string) error
}
