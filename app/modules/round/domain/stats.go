package rounddomain

import (
	"math"
	"sort"
)

// MaxHistoryRounds is how many prior complete rounds feed a player index.
const MaxHistoryRounds = 4

const standardSlope = 113.0

// CourseData is the subset of a course needed to score a round.
type CourseData struct {
	Rating    float64
	Slope     int
	Pars      [HoleCount]int
	Handicaps [HoleCount]int
}

// Validate returns ErrCourseDataMissing when rating or slope is unset.
func (c CourseData) Validate() error {
	if c.Rating <= 0 || c.Slope <= 0 {
		return ErrCourseDataMissing
	}
	return nil
}

// RoundStats are the values derived from a round's hole entries.
type RoundStats struct {
	TotalStrokes      int      `json:"totalStrokes"`
	TotalPutts        int      `json:"totalPutts"`
	IsComplete        bool     `json:"isComplete"`
	ScoreDifferential *float64 `json:"scoreDifferential"`
	PlayerIndex       *float64 `json:"playerIndex"`
	CourseHandicap    int      `json:"courseHandicap"`
	NetStrokes        int      `json:"netStrokes"`
}

// ComputeTotals sums the recorded holes of each map.
func ComputeTotals(strokes, putts Holes) (totalStrokes, totalPutts int) {
	return strokes.Sum(), putts.Sum()
}

// IsComplete reports whether all 18 strokes and all 18 putts are recorded.
func IsComplete(strokes, putts Holes) bool {
	return strokes.Complete() && putts.Complete()
}

// ComputeScoreDifferential normalises a complete round against course difficulty.
func ComputeScoreDifferential(totalStrokes int, rating float64, slope int) (float64, error) {
	if rating <= 0 || slope <= 0 {
		return 0, ErrCourseDataMissing
	}
	return (standardSlope / float64(slope)) * (float64(totalStrokes) - rating), nil
}

// ComputePlayerIndex returns the handicap index for a round.
//
// recentDiffs are the player's prior complete-round differentials, newest
// first. With at least two of them the index is the mean of the two lowest
// among the newest MaxHistoryRounds. Otherwise the round's own differential
// is halved; a nil currentDiff then yields a nil index.
func ComputePlayerIndex(recentDiffs []float64, currentDiff *float64) *float64 {
	if len(recentDiffs) >= 2 {
		window := recentDiffs
		if len(window) > MaxHistoryRounds {
			window = window[:MaxHistoryRounds]
		}
		sorted := append([]float64(nil), window...)
		sort.Float64s(sorted)
		idx := (sorted[0] + sorted[1]) / 2
		return &idx
	}
	if currentDiff == nil {
		return nil
	}
	idx := *currentDiff / 2
	return &idx
}

// ComputeCourseHandicap scales an index to a course's slope.
func ComputeCourseHandicap(playerIndex float64, slope int) int {
	return int(math.Round(playerIndex * float64(slope) / standardSlope))
}

// ComputeNetStrokes is the competitive score.
func ComputeNetStrokes(totalStrokes, courseHandicap int) int {
	return totalStrokes - courseHandicap
}

// ComputeRoundStats derives every persisted statistic for a round.
// history holds the player's prior complete differentials, newest first.
func ComputeRoundStats(strokes, putts Holes, course CourseData, history []float64) (RoundStats, error) {
	if err := course.Validate(); err != nil {
		return RoundStats{}, err
	}

	var stats RoundStats
	stats.TotalStrokes, stats.TotalPutts = ComputeTotals(strokes, putts)
	stats.IsComplete = IsComplete(strokes, putts)

	if stats.IsComplete {
		diff, err := ComputeScoreDifferential(stats.TotalStrokes, course.Rating, course.Slope)
		if err != nil {
			return RoundStats{}, err
		}
		stats.ScoreDifferential = &diff
	}

	stats.PlayerIndex = ComputePlayerIndex(history, stats.ScoreDifferential)
	if stats.PlayerIndex != nil {
		stats.CourseHandicap = ComputeCourseHandicap(*stats.PlayerIndex, course.Slope)
	}
	stats.NetStrokes = ComputeNetStrokes(stats.TotalStrokes, stats.CourseHandicap)

	return stats, nil
}
