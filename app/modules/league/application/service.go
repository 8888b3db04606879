package leagueservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	leaguedb "github.com/Black-And-White-Club/golf-league/app/modules/league/infrastructure/repositories"
	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability/attr"
	"github.com/uptrace/bun"
)

const dateLayout = "2006-01-02"

// ErrCourseNotFound is returned when a tournament names an unknown course.
var ErrCourseNotFound = errors.New("course not found")

// Service manages the courses, tournaments and members the engine reads.
type Service interface {
	UpsertCourse(ctx context.Context, in CourseInput) (*leaguedb.Course, error)
	CreateTournament(ctx context.Context, in TournamentInput) (*leaguedb.Tournament, error)
	ListTournaments(ctx context.Context, tourYear string) ([]leaguedb.Tournament, error)
	AddMember(ctx context.Context, in MemberInput) (*leaguedb.Member, error)
}

// CourseInput defines a course. Rating and slope may be left out until the
// course is rated.
type CourseInput struct {
	Handle    string   `yaml:"handle"`
	Name      string   `yaml:"name"`
	Rating    *float64 `yaml:"rating"`
	Slope     *int     `yaml:"slope"`
	Pars      []int    `yaml:"pars"`
	Handicaps []int    `yaml:"handicaps"`
}

// TournamentInput schedules a league day.
type TournamentInput struct {
	Date         time.Time
	CourseHandle string
	TourYear     string
	Name         string
}

// MemberInput registers a player.
type MemberInput struct {
	Username  string
	FirstName string
	LastName  string
}

// LeagueService implements the Service interface.
type LeagueService struct {
	repo   leaguedb.Repository
	logger *slog.Logger
	db     bun.IDB
}

// NewLeagueService creates a new LeagueService.
func NewLeagueService(repo leaguedb.Repository, logger *slog.Logger, db bun.IDB) *LeagueService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeagueService{repo: repo, logger: logger, db: db}
}

var _ Service = (*LeagueService)(nil)

// UpsertCourse validates and stores a course definition.
func (s *LeagueService) UpsertCourse(ctx context.Context, in CourseInput) (*leaguedb.Course, error) {
	handle := strings.TrimSpace(in.Handle)
	if handle == "" {
		return nil, &rounddomain.ValidationError{Field: "handle", Reason: "must not be empty"}
	}
	if len(in.Pars) != rounddomain.HoleCount || len(in.Handicaps) != rounddomain.HoleCount {
		return nil, &rounddomain.ValidationError{Field: "pars", Reason: "pars and handicaps need 18 entries"}
	}

	course := &leaguedb.Course{
		Handle:    handle,
		Name:      in.Name,
		Rating:    in.Rating,
		Slope:     in.Slope,
		Pars:      in.Pars,
		Handicaps: in.Handicaps,
	}

	data := course.CourseData()
	if err := rounddomain.ValidateCourse(data); err != nil {
		// unrated courses are allowed; only the layout must be valid
		if !errors.Is(err, rounddomain.ErrCourseDataMissing) {
			return nil, err
		}
		data.Rating, data.Slope = 1, 1
		if err := rounddomain.ValidateCourse(data); err != nil {
			return nil, err
		}
		s.logger.WarnContext(ctx, "Course stored without rating or slope", attr.String("course", handle))
	}

	if err := s.repo.UpsertCourse(ctx, s.db, course); err != nil {
		return nil, fmt.Errorf("failed to upsert course: %w", err)
	}
	s.logger.InfoContext(ctx, "Course upserted", attr.String("course", handle))
	return course, nil
}

// CreateTournament schedules a tournament on an existing course. Re-running
// it for the same date updates the course, tour year and name.
func (s *LeagueService) CreateTournament(ctx context.Context, in TournamentInput) (*leaguedb.Tournament, error) {
	if in.Date.IsZero() {
		return nil, &rounddomain.ValidationError{Field: "date", Reason: "must be set"}
	}
	if strings.TrimSpace(in.TourYear) == "" {
		in.TourYear = in.Date.Format("2006")
	}

	if _, err := s.repo.GetCourse(ctx, s.db, in.CourseHandle); err != nil {
		if errors.Is(err, leaguedb.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, in.CourseHandle)
		}
		return nil, fmt.Errorf("failed to load course: %w", err)
	}

	tournament := &leaguedb.Tournament{
		Date:         in.Date.Format(dateLayout),
		CourseHandle: in.CourseHandle,
		TourYear:     in.TourYear,
		Name:         in.Name,
	}
	if err := s.repo.UpsertTournament(ctx, s.db, tournament); err != nil {
		return nil, fmt.Errorf("failed to upsert tournament: %w", err)
	}
	s.logger.InfoContext(ctx, "Tournament scheduled",
		attr.String("tournament_date", tournament.Date),
		attr.String("course", tournament.CourseHandle),
		attr.String("tour_year", tournament.TourYear),
	)
	return tournament, nil
}

// ListTournaments returns the tournaments of a tour year in date order.
func (s *LeagueService) ListTournaments(ctx context.Context, tourYear string) ([]leaguedb.Tournament, error) {
	tournaments, err := s.repo.ListTournamentsByTourYear(ctx, s.db, tourYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

// AddMember registers or renames a player.
func (s *LeagueService) AddMember(ctx context.Context, in MemberInput) (*leaguedb.Member, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, &rounddomain.ValidationError{Field: "username", Reason: "must not be empty"}
	}

	member := &leaguedb.Member{Username: username, FirstName: in.FirstName, LastName: in.LastName}
	if err := s.repo.UpsertMember(ctx, s.db, member); err != nil {
		return nil, fmt.Errorf("failed to upsert member: %w", err)
	}
	return member, nil
}
