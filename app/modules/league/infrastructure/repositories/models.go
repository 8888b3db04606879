package leaguedb

import (
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/uptrace/bun"
)

// Course is a playable course. Rating and slope stay nullable so a course can
// be registered before it has been rated.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	Handle    string    `bun:"handle,pk"`
	Name      string    `bun:"name,notnull"`
	Rating    *float64  `bun:"rating"`
	Slope     *int      `bun:"slope"`
	Pars      []int     `bun:"pars,array,notnull"`
	Handicaps []int     `bun:"handicaps,array,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// CourseData converts the row to the values used for scoring. Missing rating
// or slope come through as zero and fail validation downstream.
func (c *Course) CourseData() rounddomain.CourseData {
	var data rounddomain.CourseData
	if c.Rating != nil {
		data.Rating = *c.Rating
	}
	if c.Slope != nil {
		data.Slope = *c.Slope
	}
	copy(data.Pars[:], c.Pars)
	copy(data.Handicaps[:], c.Handicaps)
	return data
}

// Tournament is a single league day, keyed by its YYYY-MM-DD date.
type Tournament struct {
	bun.BaseModel `bun:"table:tournaments,alias:t"`

	Date         string    `bun:"date,pk"`
	CourseHandle string    `bun:"course_handle,notnull"`
	TourYear     string    `bun:"tour_year,notnull"`
	Name         string    `bun:"name"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Member is a league player.
type Member struct {
	bun.BaseModel `bun:"table:members,alias:m"`

	Username  string    `bun:"username,pk"`
	FirstName string    `bun:"first_name,notnull"`
	LastName  string    `bun:"last_name,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// DisplayName joins first and last name.
func (m Member) DisplayName() string {
	switch {
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	default:
		return m.FirstName + " " + m.LastName
	}
}
