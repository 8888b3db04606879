package roundservice

import (
	"strings"
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/golf-league/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CreateRoundRequest enters a new scorecard.
type CreateRoundRequest struct {
	TournamentDate string            `json:"tournamentDate"`
	Username       string            `json:"username"`
	Strokes        rounddomain.Holes `json:"strokes"`
	Putts          rounddomain.Holes `json:"putts"`
}

// UpdateRoundRequest replaces a scorecard's hole entries.
type UpdateRoundRequest struct {
	Strokes rounddomain.Holes `json:"strokes"`
	Putts   rounddomain.Holes `json:"putts"`
}

// GreenieRequest creates or edits a greenie. RoundID is ignored on edit.
type GreenieRequest struct {
	RoundID uuid.UUID `json:"roundId"`
	Hole    int       `json:"hole"`
	Feet    int       `json:"feet"`
	Inches  int       `json:"inches"`
}

// RoundView is a round with its derived stats.
type RoundView struct {
	ID             uuid.UUID         `json:"id"`
	TournamentDate string            `json:"tournamentDate"`
	Username       string            `json:"username"`
	Strokes        rounddomain.Holes `json:"strokes"`
	Putts          rounddomain.Holes `json:"putts"`
	rounddomain.RoundStats
}

// GreenieView is a stored greenie.
type GreenieView struct {
	ID      uuid.UUID `json:"id"`
	RoundID uuid.UUID `json:"roundId"`
	Hole    int       `json:"hole"`
	Feet    int       `json:"feet"`
	Inches  int       `json:"inches"`
}

func newRoundView(r *rounddb.Round) *RoundView {
	return &RoundView{
		ID:             r.ID,
		TournamentDate: r.TournamentDate,
		Username:       r.Username,
		Strokes:        r.Strokes,
		Putts:          r.Putts,
		RoundStats:     r.Stats(),
	}
}

func newGreenieView(g *rounddb.Greenie) *GreenieView {
	return &GreenieView{ID: g.ID, RoundID: g.RoundID, Hole: g.Hole, Feet: g.Feet, Inches: g.Inches}
}

func (r CreateRoundRequest) validate() error {
	if _, err := time.Parse(dateLayout, r.TournamentDate); err != nil {
		return &rounddomain.ValidationError{Field: "tournamentDate", Reason: "must be a YYYY-MM-DD date"}
	}
	if strings.TrimSpace(r.Username) == "" {
		return &rounddomain.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	return rounddomain.ValidateScores(r.Strokes, r.Putts)
}

func (r GreenieRequest) validateShape() error {
	if r.Hole < 1 || r.Hole > rounddomain.HoleCount {
		return &rounddomain.ValidationError{Field: "hole", Reason: "must be between 1 and 18"}
	}
	if r.Feet < 0 {
		return &rounddomain.ValidationError{Field: "feet", Reason: "must not be negative"}
	}
	if r.Inches < 0 || r.Inches >= 12 {
		return &rounddomain.ValidationError{Field: "inches", Reason: "must be between 0 and 11"}
	}
	return nil
}
