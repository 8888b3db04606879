package pointsdomain

import rounddomain "github.com/Black-And-White-Club/golf-league/app/modules/round/domain"

// HoleScore is the classification of a single hole result.
type HoleScore int

const (
	HoleScoreNone HoleScore = iota
	HoleScorePar
	HoleScoreBirdie
	HoleScoreEagle
	HoleScoreAce
)

func (h HoleScore) String() string {
	switch h {
	case HoleScorePar:
		return "par"
	case HoleScoreBirdie:
		return "birdie"
	case HoleScoreEagle:
		return "eagle"
	case HoleScoreAce:
		return "ace"
	default:
		return "none"
	}
}

// Point weights per classified hole.
const (
	ParWeight    = 1
	BirdieWeight = 2
	EagleWeight  = 4
	AceWeight    = 10
)

// ClassifyHoleScore maps a hole result to exactly one classification.
// An ace wins over everything else regardless of par.
func ClassifyHoleScore(strokes, par int) HoleScore {
	switch {
	case strokes <= 0:
		return HoleScoreNone
	case strokes == 1:
		return HoleScoreAce
	case strokes == par-1:
		return HoleScoreBirdie
	case strokes <= par-2:
		return HoleScoreEagle
	case strokes == par:
		return HoleScorePar
	default:
		return HoleScoreNone
	}
}

// HoleScoreBonuses are weighted point totals, not raw counts.
type HoleScoreBonuses struct {
	Pars    int
	Birdies int
	Eagles  int
	Aces    int
}

// ComputeHoleScoreBonuses classifies every played hole and weights the counts.
func ComputeHoleScoreBonuses(strokes rounddomain.Holes, pars [rounddomain.HoleCount]int) HoleScoreBonuses {
	var b HoleScoreBonuses
	for i, s := range strokes {
		if s == nil {
			continue
		}
		switch ClassifyHoleScore(*s, pars[i]) {
		case HoleScorePar:
			b.Pars += ParWeight
		case HoleScoreBirdie:
			b.Birdies += BirdieWeight
		case HoleScoreEagle:
			b.Eagles += EagleWeight
		case HoleScoreAce:
			b.Aces += AceWeight
		}
	}
	return b
}
