package rounddb

import (
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Round is one player's scorecard for a tournament. The stat columns are
// derived at write time and never edited directly.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID                uuid.UUID         `bun:"id,pk,type:uuid"`
	TournamentDate    string            `bun:"tournament_date,notnull"`
	Username          string            `bun:"username,notnull"`
	Strokes           rounddomain.Holes `bun:"strokes,type:jsonb,notnull"`
	Putts             rounddomain.Holes `bun:"putts,type:jsonb,notnull"`
	TotalStrokes      int               `bun:"total_strokes,notnull"`
	TotalPutts        int               `bun:"total_putts,notnull"`
	IsComplete        bool              `bun:"is_complete,notnull"`
	ScoreDifferential *float64          `bun:"score_differential"`
	PlayerIndex       *float64          `bun:"player_index"`
	CourseHandicap    int               `bun:"course_handicap,notnull"`
	NetStrokes        int               `bun:"net_strokes,notnull"`
	CreatedAt         time.Time         `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt         time.Time         `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ApplyStats copies derived values onto the row.
func (r *Round) ApplyStats(s rounddomain.RoundStats) {
	r.TotalStrokes = s.TotalStrokes
	r.TotalPutts = s.TotalPutts
	r.IsComplete = s.IsComplete
	r.ScoreDifferential = s.ScoreDifferential
	r.PlayerIndex = s.PlayerIndex
	r.CourseHandicap = s.CourseHandicap
	r.NetStrokes = s.NetStrokes
}

// Stats returns the derived values stored on the row.
func (r *Round) Stats() rounddomain.RoundStats {
	return rounddomain.RoundStats{
		TotalStrokes:      r.TotalStrokes,
		TotalPutts:        r.TotalPutts,
		IsComplete:        r.IsComplete,
		ScoreDifferential: r.ScoreDifferential,
		PlayerIndex:       r.PlayerIndex,
		CourseHandicap:    r.CourseHandicap,
		NetStrokes:        r.NetStrokes,
	}
}

// Greenie is a tee shot that finished on a par-3 green.
type Greenie struct {
	bun.BaseModel `bun:"table:greenies,alias:g"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	RoundID   uuid.UUID `bun:"round_id,type:uuid,notnull"`
	Hole      int       `bun:"hole,notnull"`
	Feet      int       `bun:"feet,notnull"`
	Inches    int       `bun:"inches,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// TournamentGreenie is a greenie joined with its round's player.
type TournamentGreenie struct {
	Greenie  `bun:",extend"`
	Username string `bun:"username"`
}

// HandicapPoint is one entry of a player's index history.
type HandicapPoint struct {
	TournamentDate string   `bun:"tournament_date"`
	PlayerIndex    *float64 `bun:"player_index"`
	NetStrokes     int      `bun:"net_strokes"`
}
