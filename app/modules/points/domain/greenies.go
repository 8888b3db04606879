package pointsdomain

// Distance is a greenie's distance from the pin.
type Distance struct {
	Feet   int
	Inches int
}

// TotalInches flattens the distance for comparisons.
func (d Distance) TotalInches() int {
	return d.Feet*12 + d.Inches
}

// Greenie proximity tiers, in inches.
const (
	tierClose = 2 * 12
	tierNear  = 10 * 12
	tierFar   = 20 * 12
)

// GreenieTierScore scores a single greenie by its best tier.
func GreenieTierScore(d Distance) int {
	in := d.TotalInches()
	switch {
	case in < tierClose:
		return 4
	case in < tierNear:
		return 3
	case in < tierFar:
		return 2
	default:
		return 1
	}
}

// ComputeGreeniePoints sums the tier scores of a round's greenies.
func ComputeGreeniePoints(distances []Distance) int {
	total := 0
	for _, d := range distances {
		total += GreenieTierScore(d)
	}
	return total
}
