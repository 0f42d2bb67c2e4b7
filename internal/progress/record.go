// Package progress owns the authoritative per-learner record: lesson
// completion, quiz history, XP, daily goal, and the streak state machine.
package progress

import "time"

// Status is a lesson's position in its lifecycle. Completed is terminal:
// a later failed retry never downgrades it.
type Status string

const (
	StatusInProgress  Status = "in_progress"
	StatusQuizPending Status = "quiz_pending"
	StatusCompleted   Status = "completed"
)

// Entry tracks one learner's progress through one lesson.
type Entry struct {
	Status          Status     `json:"status"`
	ContentComplete bool       `json:"content_complete"`
	QuizScore       *int       `json:"quiz_score"`
	TotalQuestions  *int       `json:"total_questions"`
	QuizPassed      bool       `json:"quiz_passed"`
	Attempts        int        `json:"attempts"`
	CompletedAt     *string    `json:"completed_at"` // local date, YYYY-MM-DD
	QuizLastTriedAt *time.Time `json:"quiz_last_tried_at"`
}

// Record is the aggregate root for a learner. It is loaded whole, mutated
// in memory by a single session, and written back atomically; dates are
// local calendar dates in YYYY-MM-DD form.
type Record struct {
	XP                 int               `json:"xp"`
	DailyXP            int               `json:"daily_xp"`
	DailyGoal          int               `json:"daily_goal"`
	LastActiveDate     string            `json:"last_active_date"`
	Streak             int               `json:"streak"`
	LongestStreak      int               `json:"longest_streak"`
	StreakFreezes      int               `json:"streak_freezes"`
	LastCompletionDate string            `json:"last_completion_date"`
	Lessons            map[string]*Entry `json:"lessons"`
}

// DefaultDailyGoal is the XP target assigned to fresh records.
const DefaultDailyGoal = 20

// NewRecord returns an empty learner record with defaults applied.
func NewRecord() *Record {
	return &Record{
		DailyGoal: DefaultDailyGoal,
		Lessons:   make(map[string]*Entry),
	}
}

// Normalize repairs a record loaded from storage: nil maps and a
// non-positive daily goal are replaced so every method can assume them.
func (r *Record) Normalize() {
	if r.Lessons == nil {
		r.Lessons = make(map[string]*Entry)
	}
	if r.DailyGoal <= 0 {
		r.DailyGoal = DefaultDailyGoal
	}
}

// CompletedLessons returns the set of lesson IDs with a completed entry.
func (r *Record) CompletedLessons() map[string]bool {
	done := make(map[string]bool)
	for id, e := range r.Lessons {
		if e.Status == StatusCompleted {
			done[id] = true
		}
	}
	return done
}
