package rounddomain

const (
	maxStrokesPerHole = 20
	maxPuttsPerHole   = 10
)

// ValidateScores checks stroke and putt entries before they are stored.
func ValidateScores(strokes, putts Holes) error {
	for i := range HoleCount {
		if s := strokes[i]; s != nil && (*s < 1 || *s > maxStrokesPerHole) {
			return invalid("strokes", "hole%d must be between 1 and %d, got %d", i+1, maxStrokesPerHole, *s)
		}
		if p := putts[i]; p != nil {
			if *p < 0 || *p > maxPuttsPerHole {
				return invalid("putts", "hole%d must be between 0 and %d, got %d", i+1, maxPuttsPerHole, *p)
			}
			if s := strokes[i]; s != nil && *p > *s {
				return invalid("putts", "hole%d has more putts than strokes", i+1)
			}
		}
	}
	return nil
}

// ValidateGreenie checks a greenie against the course it was played on.
// The hole must be a par 3 and the distance non-negative with inches below 12.
func ValidateGreenie(hole, feet, inches int, pars [HoleCount]int) error {
	if hole < 1 || hole > HoleCount {
		return invalid("hole", "must be between 1 and %d, got %d", HoleCount, hole)
	}
	if pars[hole-1] != 3 {
		return invalid("hole", "hole%d is not a par 3", hole)
	}
	if feet < 0 {
		return invalid("feet", "must not be negative")
	}
	if inches < 0 || inches >= 12 {
		return invalid("inches", "must be between 0 and 11, got %d", inches)
	}
	return nil
}

// ValidateCourse checks pars and hole handicaps of a course definition.
func ValidateCourse(c CourseData) error {
	if err := c.Validate(); err != nil {
		return err
	}
	seen := make(map[int]bool, HoleCount)
	for i := range HoleCount {
		if p := c.Pars[i]; p < 3 || p > 5 {
			return invalid("pars", "hole%d par must be 3, 4 or 5, got %d", i+1, p)
		}
		h := c.Handicaps[i]
		if h < 1 || h > HoleCount || seen[h] {
			return invalid("handicaps", "must be a permutation of 1..%d", HoleCount)
		}
		seen[h] = true
	}
	return nil
}
