// Package srs schedules reviews of previously learned material using an
// SM-2-family spaced repetition rule.
package srs

import (
	"math"
	"time"
)

// Review is one graded recall attempt in an item's history.
type Review struct {
	Quality int       `json:"quality"`
	At      time.Time `json:"at"`
}

// Item holds the spaced repetition state for a single reviewable fact.
// History is append-only; items are never deleted.
type Item struct {
	ID           string    `json:"id"`
	LessonID     string    `json:"lesson_id"`
	EaseFactor   float64   `json:"ease_factor"`
	Repetitions  int       `json:"repetitions"`
	IntervalDays int       `json:"interval_days"`
	DueAt        time.Time `json:"due_at"` // zero = never scheduled, due immediately
	History      []Review  `json:"history"`
	Strength     int       `json:"strength"`
}

// IsDue reports whether the item should be reviewed. An item that has
// never been scheduled is immediately due.
func (it *Item) IsDue(now time.Time) bool {
	if it.DueAt.IsZero() {
		return true
	}
	return !now.Before(it.DueAt)
}

// OverdueDays returns how many days past due the item is. A not-yet-due
// or never-scheduled item returns 0.
func (it *Item) OverdueDays(now time.Time) float64 {
	if it.DueAt.IsZero() || now.Before(it.DueAt) {
		return 0
	}
	return now.Sub(it.DueAt).Hours() / 24.0
}

// Urgency ranks due items: overdue time dominates, weak memories break
// ties ahead of strong ones.
func (it *Item) Urgency(now time.Time) float64 {
	return it.OverdueDays(now)*2.0 + float64(100-it.Strength)*0.5
}

// ComputeStrength derives the 0-100 confidence display value from the
// current interval and ease factor. It feeds urgency ordering and the UI,
// never the update rule itself.
func ComputeStrength(intervalDays int, easeFactor float64) int {
	ivl := math.Min(float64(intervalDays)/30.0, 1.0)
	ease := math.Min((easeFactor-minEaseFactor)/1.7, 1.0)
	if ease < 0 {
		ease = 0
	}
	return int(math.Round(100 * (0.7*ivl + 0.3*ease)))
}
