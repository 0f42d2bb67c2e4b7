package srs

import (
	"sort"
	"time"
)

// Priority summarizes how pressing a review session is. Advisory only.
type Priority string

const (
	PriorityNone   Priority = "none"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ReviewSession is a batch of due items sized for one sitting.
type ReviewSession struct {
	Items    []*Item
	TotalDue int
	Priority Priority
}

// Due returns the items whose review time has arrived, most urgent first.
// Equal urgency falls back to item ID for deterministic ordering.
func Due(items []*Item, now time.Time) []*Item {
	var due []*Item
	for _, it := range items {
		if it.IsDue(now) {
			due = append(due, it)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		ui, uj := due[i].Urgency(now), due[j].Urgency(now)
		if ui != uj {
			return ui > uj
		}
		return due[i].ID < due[j].ID
	})
	return due
}

// Session slices the due queue to batchSize and grades the workload. It is
// a pure read; answering the items is what mutates state.
func Session(items []*Item, batchSize int, now time.Time) ReviewSession {
	due := Due(items, now)
	batch := due
	if batchSize > 0 && len(batch) > batchSize {
		batch = batch[:batchSize]
	}

	priority := PriorityNone
	switch {
	case len(batch) > 5:
		priority = PriorityHigh
	case len(batch) > 0:
		priority = PriorityMedium
	}

	return ReviewSession{Items: batch, TotalDue: len(due), Priority: priority}
}
