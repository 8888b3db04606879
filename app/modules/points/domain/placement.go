package pointsdomain

import (
	"sort"

	"github.com/google/uuid"
)

var (
	// StrokesPlacementBonuses pays the five best net scores.
	StrokesPlacementBonuses = []int{25, 20, 15, 10, 5}
	// PuttsPlacementBonuses pays the three lowest putt totals.
	PuttsPlacementBonuses = []int{6, 4, 2}
)

// PlacementEntry is one round's ranking input.
type PlacementEntry struct {
	RoundID  uuid.UUID
	Value    int
	Complete bool
}

// AssignPlacementPoints ranks complete entries ascending by Value and pays
// bonuses by position. Tied values share a position and the position counter
// advances by one on each new value, so [68,70,70,70,75] is 1,2,2,2,3.
// Every entry gets a result; incomplete or unpaid rounds get 0.
func AssignPlacementPoints(entries []PlacementEntry, bonuses []int) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(entries))

	ranked := make([]PlacementEntry, 0, len(entries))
	for _, e := range entries {
		out[e.RoundID] = 0
		if e.Complete {
			ranked = append(ranked, e)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value < ranked[j].Value
		}
		return ranked[i].RoundID.String() < ranked[j].RoundID.String()
	})

	position := 0
	for i, e := range ranked {
		if i == 0 || e.Value != ranked[i-1].Value {
			position++
		}
		if position > len(bonuses) {
			break
		}
		out[e.RoundID] = bonuses[position-1]
	}
	return out
}
