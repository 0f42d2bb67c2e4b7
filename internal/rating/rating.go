// Package rating maintains Elo-style skill estimates per learning unit and
// selects the next unit to attempt. All functions are pure; callers persist
// updated ratings into the learner record.
package rating

import "math"

const (
	// DefaultRating is assigned lazily when a unit is first referenced.
	DefaultRating = 1500

	// MinRating and MaxRating bound every stored rating.
	MinRating = 600
	MaxRating = 2400

	// DefaultK is the update step size.
	DefaultK = 24
)

// Observed outcome scores for an attempt.
const (
	ScoreLoss = 0.0
	ScoreDraw = 0.5
	ScoreWin  = 1.0
)

// ExpectedScore returns the probability of a successful attempt for a
// learner rating against a unit difficulty, on the standard logistic curve.
func ExpectedScore(rating, difficulty float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (difficulty-rating)/400.0))
}

// Update applies the K-factor update and clamps the result to the valid
// rating range. observed must be one of ScoreLoss, ScoreDraw, ScoreWin.
func Update(rating, expected, observed float64, k int) int {
	next := math.Round(rating + float64(k)*(observed-expected))
	if next < MinRating {
		return MinRating
	}
	if next > MaxRating {
		return MaxRating
	}
	return int(next)
}
