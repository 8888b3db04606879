package leaderboarddomain

import (
	"sort"

	rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"
	"github.com/google/uuid"
)

// podiumSlots is how many displayed places a winners list covers.
const podiumSlots = 3

// RoundResult is the read model the winners resolver works on.
type RoundResult struct {
	RoundID        uuid.UUID
	Username       string
	Strokes        rounddomain.Holes
	Putts          rounddomain.Holes
	TotalStrokes   int
	TotalPutts     int
	NetStrokes     int
	CourseHandicap int
}

// RankedRound is one row of a strokes or putts leaderboard.
type RankedRound struct {
	Position int       `json:"position"`
	RoundID  uuid.UUID `json:"roundId"`
	Username string    `json:"username"`
	Value    int       `json:"value"`
}

// GreenieEntry is a recorded greenie joined with its round's player.
type GreenieEntry struct {
	GreenieID uuid.UUID
	RoundID   uuid.UUID
	Username  string
	Hole      int
	Feet      int
	Inches    int
}

func (g GreenieEntry) distance() int { return g.Feet*12 + g.Inches }

// GreenieWinner is the player awarded a par-3 hole.
type GreenieWinner struct {
	Hole      int       `json:"hole"`
	GreenieID uuid.UUID `json:"greenieId"`
	RoundID   uuid.UUID `json:"roundId"`
	Username  string    `json:"username"`
	Feet      int       `json:"feet"`
	Inches    int       `json:"inches"`
}

// SkinWinner is the unique low adjusted score on a hole.
type SkinWinner struct {
	Hole     int       `json:"hole"`
	RoundID  uuid.UUID `json:"roundId"`
	Username string    `json:"username"`
	Score    int       `json:"score"`
}

// TournamentWinners bundles every competition for one tournament.
type TournamentWinners struct {
	Strokes    []RankedRound   `json:"strokes"`
	Putts      []RankedRound   `json:"putts"`
	Greenies   []GreenieWinner `json:"greenies"`
	Skins      []SkinWinner    `json:"skins"`
	IsComplete bool            `json:"isComplete"`
}

// StrokesWinners ranks rounds with all 18 strokes recorded by net strokes.
func StrokesWinners(rounds []RoundResult) []RankedRound {
	var candidates []RankedRound
	for _, r := range rounds {
		if r.Strokes.Complete() {
			candidates = append(candidates, RankedRound{RoundID: r.RoundID, Username: r.Username, Value: r.NetStrokes})
		}
	}
	return podium(candidates)
}

// PuttsWinners ranks rounds with all 18 putts recorded by total putts.
func PuttsWinners(rounds []RoundResult) []RankedRound {
	var candidates []RankedRound
	for _, r := range rounds {
		if r.Putts.Complete() {
			candidates = append(candidates, RankedRound{RoundID: r.RoundID, Username: r.Username, Value: r.TotalPutts})
		}
	}
	return podium(candidates)
}

// podium sorts ascending, labels shared positions 1-1-3 style and keeps
// every round tied with the third displayed slot.
func podium(rows []RankedRound) []RankedRound {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value < rows[j].Value
		}
		return rows[i].Username < rows[j].Username
	})

	for i := range rows {
		if i > 0 && rows[i].Value == rows[i-1].Value {
			rows[i].Position = rows[i-1].Position
		} else {
			rows[i].Position = i + 1
		}
	}

	if len(rows) <= podiumSlots {
		return rows
	}
	cutoff := rows[podiumSlots-1].Value
	n := podiumSlots
	for n < len(rows) && rows[n].Value <= cutoff {
		n++
	}
	return rows[:n]
}

// GreenieWinners awards each par-3 hole to at most one player and each
// player at most one hole. The closest remaining greenie is awarded first;
// equal distances fall back to hole number and then round id.
func GreenieWinners(greenies []GreenieEntry) []GreenieWinner {
	sorted := append([]GreenieEntry(nil), greenies...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.distance() != b.distance() {
			return a.distance() < b.distance()
		}
		if a.Hole != b.Hole {
			return a.Hole < b.Hole
		}
		return a.RoundID.String() < b.RoundID.String()
	})

	holes := make(map[int]bool)
	players := make(map[string]bool)
	var winners []GreenieWinner
	for _, g := range sorted {
		if holes[g.Hole] || players[g.Username] {
			continue
		}
		holes[g.Hole] = true
		players[g.Username] = true
		winners = append(winners, GreenieWinner{
			Hole:      g.Hole,
			GreenieID: g.GreenieID,
			RoundID:   g.RoundID,
			Username:  g.Username,
			Feet:      g.Feet,
			Inches:    g.Inches,
		})
	}

	sort.Slice(winners, func(i, j int) bool { return winners[i].Hole < winners[j].Hole })
	return winners
}

// SkinsAllowance is the number of holes on which a player gets a stroke.
func SkinsAllowance(courseHandicap int) int {
	if courseHandicap <= 0 {
		return 0
	}
	return min(courseHandicap/2, rounddomain.HoleCount)
}

// SkinsWinners awards each hole to the unique strictly lowest adjusted score.
// A player gets one stroke off every hole whose difficulty rank is within
// their allowance. A tie for low means nobody wins the hole.
func SkinsWinners(rounds []RoundResult, holeHandicaps [rounddomain.HoleCount]int) []SkinWinner {
	var winners []SkinWinner
	for hole := range rounddomain.HoleCount {
		best := -1
		bestScore := 0
		tied := false
		for i, r := range rounds {
			s := r.Strokes[hole]
			if s == nil {
				continue
			}
			score := *s
			if holeHandicaps[hole] <= SkinsAllowance(r.CourseHandicap) {
				score--
			}
			switch {
			case best == -1 || score < bestScore:
				best, bestScore, tied = i, score, false
			case score == bestScore:
				tied = true
			}
		}
		if best == -1 || tied {
			continue
		}
		winners = append(winners, SkinWinner{
			Hole:     hole + 1,
			RoundID:  rounds[best].RoundID,
			Username: rounds[best].Username,
			Score:    bestScore,
		})
	}
	return winners
}

// TournamentIsComplete reports whether every round has all strokes and putts.
// A tournament without rounds is not complete.
func TournamentIsComplete(rounds []RoundResult) bool {
	if len(rounds) == 0 {
		return false
	}
	for _, r := range rounds {
		if !rounddomain.IsComplete(r.Strokes, r.Putts) {
			return false
		}
	}
	return true
}

// ResolveTournamentWinners computes every competition in one pass.
func ResolveTournamentWinners(rounds []RoundResult, greenies []GreenieEntry, holeHandicaps [rounddomain.HoleCount]int) TournamentWinners {
	return TournamentWinners{
		Strokes:    StrokesWinners(rounds),
		Putts:      PuttsWinners(rounds),
		Greenies:   GreenieWinners(greenies),
		Skins:      SkinsWinners(rounds, holeHandicaps),
		IsComplete: TournamentIsComplete(rounds),
	}
}
