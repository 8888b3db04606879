package rounddb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for round and greenie persistence.
//
// Error semantics:
//   - ErrNotFound: the round or greenie does not exist
//   - Other errors: infrastructure failures
type Repository interface {
	CreateRound(ctx context.Context, db bun.IDB, round *Round) error
	GetRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*Round, error)
	FindRound(ctx context.Context, db bun.IDB, tournamentDate, username string) (*Round, error)
	// UpdateRound rewrites the hole entries and derived stats.
	UpdateRound(ctx context.Context, db bun.IDB, round *Round) error
	DeleteRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) error
	ListRoundsByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]Round, error)

	// HandicapHistory returns up to limit score differentials of the player's
	// complete rounds before the given date, newest first.
	HandicapHistory(ctx context.Context, db bun.IDB, username, beforeDate string, limit int) ([]float64, error)
	// ListHandicapPoints returns the player's rounds that carry an index, oldest first.
	ListHandicapPoints(ctx context.Context, db bun.IDB, username string) ([]HandicapPoint, error)

	CreateGreenie(ctx context.Context, db bun.IDB, greenie *Greenie) error
	GetGreenie(ctx context.Context, db bun.IDB, greenieID uuid.UUID) (*Greenie, error)
	UpdateGreenie(ctx context.Context, db bun.IDB, greenie *Greenie) error
	DeleteGreenie(ctx context.Context, db bun.IDB, greenieID uuid.UUID) error
	ListGreeniesByRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]Greenie, error)
	ListGreeniesByTournament(ctx context.Context, db bun.IDB, tournamentDate string) ([]TournamentGreenie, error)
}
