// Package catalog provides read-only access to the learning unit catalog:
// unit metadata, prerequisite ordering, and the unlocked frontier. The
// engine never mutates catalog data.
package catalog

// Unit is a single learning unit. Difficulty sits on the same scale as
// learner ratings so the selector can compare them directly.
type Unit struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Difficulty    float64  `json:"difficulty"`
	EstimatedMins int      `json:"estimated_mins"`
	Prerequisites []string `json:"prerequisites"`
}
