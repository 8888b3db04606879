package pointsdb

import (
	"time"

	pointsdomain "github.com/Black-And-White-Club/golf-league/app/modules/points/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Points is the persisted score card for one round. The total is derived.
type Points struct {
	bun.BaseModel `bun:"table:points,alias:p"`

	RoundID       uuid.UUID `bun:"round_id,pk,type:uuid"`
	Participation int       `bun:"participation,notnull"`
	Strokes       int       `bun:"strokes,notnull"`
	Putts         int       `bun:"putts,notnull"`
	Greenies      int       `bun:"greenies,notnull"`
	Pars          int       `bun:"pars,notnull"`
	Birdies       int       `bun:"birdies,notnull"`
	Eagles        int       `bun:"eagles,notnull"`
	Aces          int       `bun:"aces,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// FromDomain builds a row from domain points.
func FromDomain(p pointsdomain.Points) *Points {
	return &Points{
		RoundID:       p.RoundID,
		Participation: p.Participation,
		Strokes:       p.Strokes,
		Putts:         p.Putts,
		Greenies:      p.Greenies,
		Pars:          p.Pars,
		Birdies:       p.Birdies,
		Eagles:        p.Eagles,
		Aces:          p.Aces,
	}
}

// ToDomain converts the row to domain points.
func (p *Points) ToDomain() pointsdomain.Points {
	return pointsdomain.Points{
		RoundID:       p.RoundID,
		Participation: p.Participation,
		Strokes:       p.Strokes,
		Putts:         p.Putts,
		Greenies:      p.Greenies,
		Pars:          p.Pars,
		Birdies:       p.Birdies,
		Eagles:        p.Eagles,
		Aces:          p.Aces,
	}
}

// PlacementRow is the ranking input for one round of a tournament.
type PlacementRow struct {
	RoundID    uuid.UUID `bun:"round_id"`
	NetStrokes int       `bun:"net_strokes"`
	TotalPutts int       `bun:"total_putts"`
	IsComplete bool      `bun:"is_complete"`
}

// RoundPointsRow joins a points row with the round's player and tournament.
type RoundPointsRow struct {
	Points         `bun:",extend"`
	Username       string `bun:"username"`
	TournamentDate string `bun:"tournament_date"`
}

// PlacementColumn names a placement category column.
type PlacementColumn string

const (
	PlacementStrokes PlacementColumn = "strokes"
	PlacementPutts   PlacementColumn = "putts"
)
