package leaguedb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for course, tournament and member persistence.
type Repository interface {
	GetCourse(ctx context.Context, db bun.IDB, handle string) (*Course, error)
	UpsertCourse(ctx context.Context, db bun.IDB, course *Course) error

	GetTournament(ctx context.Context, db bun.IDB, date string) (*Tournament, error)
	// GetTournamentCourse loads a tournament together with its course.
	GetTournamentCourse(ctx context.Context, db bun.IDB, date string) (*Tournament, *Course, error)
	UpsertTournament(ctx context.Context, db bun.IDB, tournament *Tournament) error
	ListTournamentsByTourYear(ctx context.Context, db bun.IDB, tourYear string) ([]Tournament, error)

	GetMember(ctx context.Context, db bun.IDB, username string) (*Member, error)
	UpsertMember(ctx context.Context, db bun.IDB, member *Member) error
	// GetMemberNames maps username to display name. Unknown usernames are omitted.
	GetMemberNames(ctx context.Context, db bun.IDB, usernames []string) (map[string]string, error)
}
