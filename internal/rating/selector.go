package rating

import "math"

// Candidate is one selectable learning unit with the learner's current
// rating for it and the unit's catalog difficulty.
type Candidate struct {
	ID         string
	Rating     float64
	Difficulty float64
}

// SelectNext picks the candidate whose expected success probability is
// closest to 0.5, i.e. the attempt that reduces uncertainty the most.
// Ties go to the earliest candidate in input order. The second return is
// false when candidates is empty; an empty set is "nothing recommended",
// not an error.
func SelectNext(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}

	best := candidates[0]
	bestDelta := math.Abs(ExpectedScore(best.Rating, best.Difficulty) - 0.5)

	for _, c := range candidates[1:] {
		delta := math.Abs(ExpectedScore(c.Rating, c.Difficulty) - 0.5)
		if delta < bestDelta {
			best = c
			bestDelta = delta
		}
	}
	return best, true
}
