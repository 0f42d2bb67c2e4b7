package progress

import "time"

// Config holds progress tuning. Zero values fall back to defaults.
type Config struct {
	PassRatio        float64 // quiz pass threshold (default 0.7)
	CompletionXP     int     // XP for a lesson's first completion (default 5)
	StreakGraceHours int     // window in which a freeze can bridge missed days (default 48)
}

// DefaultConfig returns the standard progress tuning.
func DefaultConfig() Config {
	return Config{
		PassRatio:        0.7,
		CompletionXP:     5,
		StreakGraceHours: 48,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PassRatio == 0 {
		c.PassRatio = d.PassRatio
	}
	if c.CompletionXP == 0 {
		c.CompletionXP = d.CompletionXP
	}
	if c.StreakGraceHours == 0 {
		c.StreakGraceHours = d.StreakGraceHours
	}
	return c
}

// QuizResult reports the effects of one quiz attempt.
type QuizResult struct {
	Passed          bool
	FirstCompletion bool // XP and streak evaluation fired on this attempt
	XPAwarded       int
	Streak          int
	StreakExtended  bool // streak grew (vs. reset to 1 or unchanged)
}

// Tracker applies events to a learner record. Every method validates its
// input before mutating, so a rejected call leaves the record untouched.
type Tracker struct {
	rec *Record
	cfg Config
}

// NewTracker wraps a record. The tracker does not copy it; the caller
// keeps ownership and persists it after a batch of events.
func NewTracker(rec *Record, cfg Config) *Tracker {
	rec.Normalize()
	return &Tracker{rec: rec, cfg: cfg.withDefaults()}
}

// Record returns the underlying record.
func (t *Tracker) Record() *Record {
	return t.rec
}

// ensure returns the entry for a lesson, creating it in progress if the
// lesson has never been touched.
func (t *Tracker) ensure(lessonID string) *Entry {
	if e, ok := t.rec.Lessons[lessonID]; ok {
		return e
	}
	e := &Entry{Status: StatusInProgress}
	t.rec.Lessons[lessonID] = e
	return e
}

// StartLesson creates a progress entry for the lesson. Calling it again
// for a known lesson is a no-op.
func (t *Tracker) StartLesson(lessonID string) {
	t.ensure(lessonID)
}

// MarkContentComplete records that the lesson's content has been viewed.
// Status is left alone; only a passed quiz completes a lesson.
func (t *Tracker) MarkContentComplete(lessonID string) {
	t.ensure(lessonID).ContentComplete = true
}

// SubmitQuizAttempt records a quiz attempt. A lesson that was never
// started is started implicitly. The first passing attempt ever completes
// the lesson, awards XP, and evaluates the streak exactly once; later
// passes record the score but award nothing.
func (t *Tracker) SubmitQuizAttempt(lessonID string, score, total int, now time.Time) (QuizResult, error) {
	if total < 0 || score < 0 || score > total {
		return QuizResult{}, &InvalidScoreError{Score: score, Total: total}
	}

	e := t.ensure(lessonID)
	e.Attempts++

	passed := total > 0 && float64(score)/float64(total) >= t.cfg.PassRatio
	e.QuizScore = &score
	e.TotalQuestions = &total
	e.QuizPassed = passed
	e.QuizLastTriedAt = &now

	res := QuizResult{Passed: passed}

	switch {
	case passed && e.CompletedAt == nil:
		fact := t.rec.rollover(now)
		e.Status = StatusCompleted
		completedOn := fact.Today
		e.CompletedAt = &completedOn

		t.addXP(t.cfg.CompletionXP, fact)
		res.FirstCompletion = true
		res.XPAwarded = t.cfg.CompletionXP
		res.StreakExtended = t.markCompletionDay(fact)

	case !passed && e.Status != StatusCompleted:
		e.Status = StatusQuizPending
	}

	res.Streak = t.rec.Streak
	return res, nil
}

// RetryQuiz reopens the quiz for another attempt: the recorded score is
// cleared while attempts, the pass flag, and any earned completion (and
// its XP) are preserved.
func (t *Tracker) RetryQuiz(lessonID string) error {
	e, ok := t.rec.Lessons[lessonID]
	if !ok {
		return &MissingEntryError{LessonID: lessonID}
	}
	e.QuizScore = nil
	if e.Status == StatusQuizPending {
		e.Status = StatusInProgress
	}
	return nil
}

// AddXP credits XP, rolling the daily counter over on the first activity
// of a new local day.
func (t *Tracker) AddXP(amount int, now time.Time) {
	t.addXP(amount, t.rec.rollover(now))
}

func (t *Tracker) addXP(amount int, fact dayFact) {
	t.rec.XP += amount
	if fact.IsNewDay {
		t.rec.DailyXP = amount
	} else {
		t.rec.DailyXP += amount
	}
	t.rec.LastActiveDate = fact.Today
}

// markCompletionDay fires streak evaluation for the first qualifying
// completion of a local day. Guarded by the completion marker rather than
// LastActiveDate, so an XP touch can never double-count a day. Reports
// whether the streak was extended.
func (t *Tracker) markCompletionDay(fact dayFact) bool {
	if t.rec.LastCompletionDate == fact.Today {
		return false
	}

	extended := false
	if fact.HadYesterday {
		t.rec.Streak++
		extended = true
	} else {
		t.rec.Streak = 1
	}
	if t.rec.Streak > t.rec.LongestStreak {
		t.rec.LongestStreak = t.rec.Streak
	}
	t.rec.LastCompletionDate = fact.Today
	return extended
}

// DailyGoalMet reports whether today's XP has reached the daily goal.
func (t *Tracker) DailyGoalMet(now time.Time) bool {
	fact := t.rec.rollover(now)
	return !fact.IsNewDay && t.rec.DailyXP >= t.rec.DailyGoal
}

// ConsumeStreakFreeze spends one freeze token to bridge missed days. It is
// an explicit learner action, never applied automatically: it requires a
// token in inventory, at least one missed day, and the gap to fall within
// the grace window. On success the completion marker moves to yesterday,
// so the next completion extends the streak instead of resetting it.
func (t *Tracker) ConsumeStreakFreeze(now time.Time) error {
	if t.rec.StreakFreezes <= 0 {
		return &FreezeUnavailableError{Reason: "no freeze tokens left"}
	}

	fact := t.rec.rollover(now)
	if t.rec.LastCompletionDate == fact.Today || fact.HadYesterday {
		return &FreezeUnavailableError{Reason: "no day was missed"}
	}
	if t.rec.LastCompletionDate == "" {
		return &FreezeUnavailableError{Reason: "no streak to preserve"}
	}

	gap := daysBetween(t.rec.LastCompletionDate, fact.Today)
	if gap < 2 {
		return &FreezeUnavailableError{Reason: "no day was missed"}
	}
	if (gap-1)*24 > t.cfg.StreakGraceHours {
		return &FreezeUnavailableError{Reason: "gap exceeds grace window"}
	}

	t.rec.StreakFreezes--
	t.rec.LastCompletionDate = fact.Yesterday
	return nil
}
