package store

import (
	"context"
	"time"

	"github.com/ksander/retain/internal/progress"
	"github.com/ksander/retain/internal/srs"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData is the whole learner record as persisted: progress
// aggregate, review items, and per-unit ratings. It must round-trip
// through JSON without loss.
type SnapshotData struct {
	Version     int                  `json:"version"`
	Record      *progress.Record     `json:"record"`
	ReviewItems map[string]*srs.Item `json:"review_items"`
	Ratings     map[string]int       `json:"ratings"`
}

// SnapshotVersion is the current SnapshotData schema version.
const SnapshotVersion = 1

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LessonEventData captures a lesson lifecycle action.
type LessonEventData struct {
	LessonID  string
	Action    string // start, content_complete, retry
	SessionID string
}

// QuizEventData captures one quiz attempt.
type QuizEventData struct {
	LessonID  string
	Score     int
	Total     int
	Passed    bool
	Attempt   int
	FirstPass bool
	SessionID string
}

// ReviewEventData captures one graded recall and the resulting schedule.
type ReviewEventData struct {
	ItemID       string
	LessonID     string
	Quality      int
	IntervalDays int
	EaseFactor   float64
	DueAt        time.Time
	SessionID    string
}

// RatingEventData captures one Elo rating update.
type RatingEventData struct {
	UnitID    string
	OldRating int
	NewRating int
	Expected  float64
	Observed  float64
	SessionID string
}

// RewardEventData captures an XP, streak, or freeze effect.
type RewardEventData struct {
	Kind      string // xp, streak, freeze
	Amount    int
	XPTotal   int
	Streak    int
	Reason    string
	SessionID string
}

// RewardEventRecord is a queried reward event.
type RewardEventRecord struct {
	Kind      string
	Amount    int
	XPTotal   int
	Streak    int
	Reason    string
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendLessonEvent(ctx context.Context, data LessonEventData) error
	AppendQuizEvent(ctx context.Context, data QuizEventData) error
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
	AppendRatingEvent(ctx context.Context, data RatingEventData) error
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// QueryRewardEvents returns reward events, newest first.
	QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error)

	// RecentReviewAccuracy returns the pass ratio (quality >= 3) over the
	// item's last N review events, and how many were found.
	RecentReviewAccuracy(ctx context.Context, itemID string, lastN int) (float64, int, error)
}
