package leaguedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a course, tournament or member does not exist.
var ErrNotFound = errors.New("league record not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new league repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetCourse(ctx context.Context, db bun.IDB, handle string) (*Course, error) {
	db = r.resolveDB(db)
	course := new(Course)
	err := db.NewSelect().
		Model(course).
		Where("handle = ?", handle).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("leaguedb.GetCourse: %w", err)
	}
	return course, nil
}

func (r *Impl) UpsertCourse(ctx context.Context, db bun.IDB, course *Course) error {
	db = r.resolveDB(db)
	course.UpdatedAt = time.Now()
	_, err := db.NewInsert().
		Model(course).
		On("CONFLICT (handle) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("rating = EXCLUDED.rating").
		Set("slope = EXCLUDED.slope").
		Set("pars = EXCLUDED.pars").
		Set("handicaps = EXCLUDED.handicaps").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("leaguedb.UpsertCourse: %w", err)
	}
	return nil
}

func (r *Impl) GetTournament(ctx context.Context, db bun.IDB, date string) (*Tournament, error) {
	db = r.resolveDB(db)
	tournament := new(Tournament)
	err := db.NewSelect().
		Model(tournament).
		Where("date = ?", date).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("leaguedb.GetTournament: %w", err)
	}
	return tournament, nil
}

func (r *Impl) GetTournamentCourse(ctx context.Context, db bun.IDB, date string) (*Tournament, *Course, error) {
	tournament, err := r.GetTournament(ctx, db, date)
	if err != nil {
		return nil, nil, err
	}
	course, err := r.GetCourse(ctx, db, tournament.CourseHandle)
	if err != nil {
		return nil, nil, err
	}
	return tournament, course, nil
}

func (r *Impl) UpsertTournament(ctx context.Context, db bun.IDB, tournament *Tournament) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(tournament).
		On("CONFLICT (date) DO UPDATE").
		Set("course_handle = EXCLUDED.course_handle").
		Set("tour_year = EXCLUDED.tour_year").
		Set("name = EXCLUDED.name").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("leaguedb.UpsertTournament: %w", err)
	}
	return nil
}

func (r *Impl) ListTournamentsByTourYear(ctx context.Context, db bun.IDB, tourYear string) ([]Tournament, error) {
	db = r.resolveDB(db)
	var tournaments []Tournament
	err := db.NewSelect().
		Model(&tournaments).
		Where("tour_year = ?", tourYear).
		Order("date ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaguedb.ListTournamentsByTourYear: %w", err)
	}
	return tournaments, nil
}

func (r *Impl) GetMember(ctx context.Context, db bun.IDB, username string) (*Member, error) {
	db = r.resolveDB(db)
	member := new(Member)
	err := db.NewSelect().
		Model(member).
		Where("username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("leaguedb.GetMember: %w", err)
	}
	return member, nil
}

func (r *Impl) UpsertMember(ctx context.Context, db bun.IDB, member *Member) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(member).
		On("CONFLICT (username) DO UPDATE").
		Set("first_name = EXCLUDED.first_name").
		Set("last_name = EXCLUDED.last_name").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("leaguedb.UpsertMember: %w", err)
	}
	return nil
}

func (r *Impl) GetMemberNames(ctx context.Context, db bun.IDB, usernames []string) (map[string]string, error) {
	names := make(map[string]string, len(usernames))
	if len(usernames) == 0 {
		return names, nil
	}

	db = r.resolveDB(db)
	var members []Member
	err := db.NewSelect().
		Model(&members).
		Where("username IN (?)", bun.In(usernames)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaguedb.GetMemberNames: %w", err)
	}
	for _, m := range members {
		names[m.Username] = m.DisplayName()
	}
	return names, nil
}
