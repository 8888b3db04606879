package pointsdomain

import (
	"errors"

	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/google/uuid"
)

// ParticipationPoints is awarded once to every round at creation.
const ParticipationPoints = 3

var (
	// ErrDuplicateRound is returned when a round already has a points row.
	ErrDuplicateRound = errors.New("points already exist for round")
	// ErrRoundNotFound is returned when a round has no points row.
	ErrRoundNotFound = errors.New("round not found")
)

// Points is the per-round league score card.
type Points struct {
	RoundID       uuid.UUID `json:"roundId"`
	Participation int       `json:"participation"`
	Strokes       int       `json:"strokes"`
	Putts         int       `json:"putts"`
	Greenies      int       `json:"greenies"`
	Pars          int       `json:"pars"`
	Birdies       int       `json:"birdies"`
	Eagles        int       `json:"eagles"`
	Aces          int       `json:"aces"`
}

// Total sums every category.
func (p Points) Total() int {
	return p.Participation + p.Strokes + p.Putts + p.Greenies +
		p.Pars + p.Birdies + p.Eagles + p.Aces
}

// NewPoints builds the initial points row for a freshly created round.
// Placement and greenie categories start at zero.
func NewPoints(roundID uuid.UUID, strokes rounddomain.Holes, pars [rounddomain.HoleCount]int) Points {
	p := Points{RoundID: roundID, Participation: ParticipationPoints}
	p.ApplyHoleScores(ComputeHoleScoreBonuses(strokes, pars))
	return p
}

// ApplyHoleScores overwrites the hole-score categories only.
func (p *Points) ApplyHoleScores(b HoleScoreBonuses) {
	p.Pars = b.Pars
	p.Birdies = b.Birdies
	p.Eagles = b.Eagles
	p.Aces = b.Aces
}
