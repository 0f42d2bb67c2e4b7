// Package engine ties the rating selector, the retention scheduler, and
// the progress state machine together over one loaded learner record. An
// Engine is one session: it is built from the latest snapshot, applies
// events in order, and exports a new snapshot to write back. It is not
// safe for concurrent use; persistence must serialize writes per learner.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ksander/retain/internal/catalog"
	"github.com/ksander/retain/internal/progress"
	"github.com/ksander/retain/internal/rating"
	"github.com/ksander/retain/internal/srs"
	"github.com/ksander/retain/internal/store"
)

// UnknownItemError indicates a review answer for an item the record does
// not track.
type UnknownItemError struct {
	ItemID string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown review item %q", e.ItemID)
}

// Engine is one learner session over an in-memory record.
type Engine struct {
	cfg       Config
	catalog   *catalog.Catalog
	tracker   *progress.Tracker
	sched     *srs.Scheduler
	items     map[string]*srs.Item
	ratings   map[string]int
	eventRepo store.EventRepo
	sessionID string
	loadedSeq int64
	applied   int64
}

// New creates an engine session, loading state from the snapshot. A nil
// snapshot starts a fresh learner. eventRepo may be nil; event logging is
// best-effort and never fails an operation.
func New(snap *store.SnapshotData, cat *catalog.Catalog, eventRepo store.EventRepo, cfg Config) *Engine {
	e := &Engine{
		cfg:       cfg,
		catalog:   cat,
		sched:     srs.NewScheduler(cfg.srsConfig()),
		items:     make(map[string]*srs.Item),
		ratings:   make(map[string]int),
		eventRepo: eventRepo,
		sessionID: uuid.New().String(),
	}

	rec := progress.NewRecord()
	if snap != nil {
		if snap.Record != nil {
			rec = snap.Record
		}
		for id, it := range snap.ReviewItems {
			e.items[id] = it
		}
		for id, r := range snap.Ratings {
			e.ratings[id] = r
		}
	}
	e.tracker = progress.NewTracker(rec, cfg.progressConfig())
	return e
}

// LoadSeq seeds the snapshot sequence from the snapshot the engine was
// built from, so committed snapshots order after it.
func (e *Engine) LoadSeq(seq int64) {
	e.loadedSeq = seq
}

// Record returns the learner's progress aggregate.
func (e *Engine) Record() *progress.Record {
	return e.tracker.Record()
}

// Rating returns the learner's rating for a unit, assigning the default
// lazily on first reference.
func (e *Engine) Rating(unitID string) int {
	if r, ok := e.ratings[unitID]; ok {
		return r
	}
	e.ratings[unitID] = rating.DefaultRating
	return rating.DefaultRating
}

// Ratings returns all tracked ratings.
func (e *Engine) Ratings() map[string]int {
	out := make(map[string]int, len(e.ratings))
	for id, r := range e.ratings {
		out[id] = r
	}
	return out
}

// Items returns all tracked review items.
func (e *Engine) Items() map[string]*srs.Item {
	out := make(map[string]*srs.Item, len(e.items))
	for id, it := range e.items {
		out[id] = it
	}
	return out
}

// NextUnit recommends the unlocked unit whose expected success is closest
// to even odds. Returns false when nothing is unlocked, which the caller
// treats as "nothing recommended", not an error.
func (e *Engine) NextUnit() (*catalog.Unit, bool) {
	unlocked := e.catalog.Unlocked(e.Record().CompletedLessons())
	candidates := make([]rating.Candidate, len(unlocked))
	for i, u := range unlocked {
		candidates[i] = rating.Candidate{
			ID:         u.ID,
			Rating:     float64(e.Rating(u.ID)),
			Difficulty: u.Difficulty,
		}
	}

	best, ok := rating.SelectNext(candidates)
	if !ok {
		return nil, false
	}
	u, err := e.catalog.Get(best.ID)
	if err != nil {
		return nil, false
	}
	return u, true
}

// StartLesson opens a lesson. Repeating it is a no-op.
func (e *Engine) StartLesson(ctx context.Context, lessonID string) {
	e.tracker.StartLesson(lessonID)
	e.logLesson(ctx, lessonID, "start")
}

// MarkContentComplete records that lesson content has been viewed.
func (e *Engine) MarkContentComplete(ctx context.Context, lessonID string) {
	e.tracker.MarkContentComplete(lessonID)
	e.logLesson(ctx, lessonID, "content_complete")
}

// SubmitQuiz applies a quiz attempt: the progress transition, the rating
// update for the unit, and on first completion the review item seeding
// plus XP and streak rewards. Validation errors leave all state untouched.
func (e *Engine) SubmitQuiz(ctx context.Context, lessonID string, score, total int, now time.Time) (progress.QuizResult, error) {
	res, err := e.tracker.SubmitQuizAttempt(lessonID, score, total, now)
	if err != nil {
		return res, err
	}
	e.applied++

	entry := e.Record().Lessons[lessonID]
	e.log(ctx, func(repo store.EventRepo) error {
		return repo.AppendQuizEvent(ctx, store.QuizEventData{
			LessonID:  lessonID,
			Score:     score,
			Total:     total,
			Passed:    res.Passed,
			Attempt:   entry.Attempts,
			FirstPass: res.FirstCompletion,
			SessionID: e.sessionID,
		})
	})

	e.updateRating(ctx, lessonID, quizObserved(res.Passed, score, total))

	if res.FirstCompletion {
		e.seedReviewItem(lessonID)
		e.logReward(ctx, "xp", res.XPAwarded, "lesson completion")
		streakDelta := 1
		if !res.StreakExtended && res.Streak == 1 {
			streakDelta = 0 // reset, not growth
		}
		e.logReward(ctx, "streak", streakDelta, "daily completion")
	}

	return res, nil
}

// RetryQuiz reopens a quiz for another attempt.
func (e *Engine) RetryQuiz(ctx context.Context, lessonID string) error {
	if err := e.tracker.RetryQuiz(lessonID); err != nil {
		return err
	}
	e.applied++
	e.logLesson(ctx, lessonID, "retry")
	return nil
}

// AnswerReview grades a due item from the 4-level UI rating, reschedules
// it, adjusts the lesson's unit rating, and credits review XP on success.
func (e *Engine) AnswerReview(ctx context.Context, itemID string, choice int, now time.Time) (*srs.Item, error) {
	item, ok := e.items[itemID]
	if !ok {
		return nil, &UnknownItemError{ItemID: itemID}
	}

	quality, err := srs.QualityFromChoice(choice)
	if err != nil {
		return nil, err
	}
	if err := e.sched.Review(item, quality, now); err != nil {
		return nil, err
	}
	e.applied++

	e.log(ctx, func(repo store.EventRepo) error {
		return repo.AppendReviewEvent(ctx, store.ReviewEventData{
			ItemID:       item.ID,
			LessonID:     item.LessonID,
			Quality:      quality,
			IntervalDays: item.IntervalDays,
			EaseFactor:   item.EaseFactor,
			DueAt:        item.DueAt,
			SessionID:    e.sessionID,
		})
	})

	e.updateRating(ctx, item.LessonID, reviewObserved(quality))

	if quality >= 3 && e.cfg.ReviewXP > 0 {
		e.tracker.AddXP(e.cfg.ReviewXP, now)
		e.logReward(ctx, "xp", e.cfg.ReviewXP, "review")
	}
	return item, nil
}

// DueReviews returns all due items, most urgent first.
func (e *Engine) DueReviews(now time.Time) []*srs.Item {
	return srs.Due(e.itemSlice(), now)
}

// ReviewSession returns a batch of due items sized by config.
func (e *Engine) ReviewSession(now time.Time) srs.ReviewSession {
	return srs.Session(e.itemSlice(), e.cfg.ReviewBatchSize, now)
}

// ConsumeStreakFreeze spends one freeze token to bridge a missed day.
func (e *Engine) ConsumeStreakFreeze(ctx context.Context, now time.Time) error {
	if err := e.tracker.ConsumeStreakFreeze(now); err != nil {
		return err
	}
	e.applied++
	e.logReward(ctx, "freeze", 1, "streak preserved")
	return nil
}

// DailyGoalMet reports whether today's XP reached the daily goal.
func (e *Engine) DailyGoalMet(now time.Time) bool {
	return e.tracker.DailyGoalMet(now)
}

// SnapshotData exports the full learner record for persistence.
func (e *Engine) SnapshotData() store.SnapshotData {
	return store.SnapshotData{
		Version:     store.SnapshotVersion,
		Record:      e.Record(),
		ReviewItems: e.Items(),
		Ratings:     e.Ratings(),
	}
}

// Commit writes the current record back as a new snapshot.
func (e *Engine) Commit(ctx context.Context, repo store.SnapshotRepo) error {
	return repo.Save(ctx, &store.Snapshot{
		Sequence:  e.loadedSeq + e.applied,
		Timestamp: time.Now().UTC(),
		Data:      e.SnapshotData(),
	})
}

func (e *Engine) itemSlice() []*srs.Item {
	out := make([]*srs.Item, 0, len(e.items))
	for _, it := range e.items {
		out = append(out, it)
	}
	return out
}

// seedReviewItem creates the lesson's review item on first completion.
// An existing item survives re-completion untouched.
func (e *Engine) seedReviewItem(lessonID string) {
	if _, ok := e.items[lessonID]; ok {
		return
	}
	e.items[lessonID] = e.sched.NewItem(lessonID, lessonID)
}

func (e *Engine) updateRating(ctx context.Context, unitID string, observed float64) {
	old := e.Rating(unitID)
	expected := rating.ExpectedScore(float64(old), e.unitDifficulty(unitID))
	next := rating.Update(float64(old), expected, observed, e.cfg.EloK)
	e.ratings[unitID] = next

	e.log(ctx, func(repo store.EventRepo) error {
		return repo.AppendRatingEvent(ctx, store.RatingEventData{
			UnitID:    unitID,
			OldRating: old,
			NewRating: next,
			Expected:  expected,
			Observed:  observed,
			SessionID: e.sessionID,
		})
	})
}

// unitDifficulty resolves catalog difficulty, falling back to the default
// rating for lessons outside the unit catalog.
func (e *Engine) unitDifficulty(unitID string) float64 {
	if e.catalog != nil {
		if u, err := e.catalog.Get(unitID); err == nil {
			return u.Difficulty
		}
	}
	return rating.DefaultRating
}

// quizObserved maps a quiz outcome onto the 0/0.5/1 observed score: a
// pass is a win, a near-miss at half marks counts as a draw.
func quizObserved(passed bool, score, total int) float64 {
	if passed {
		return rating.ScoreWin
	}
	if total > 0 && float64(score)/float64(total) >= 0.5 {
		return rating.ScoreDraw
	}
	return rating.ScoreLoss
}

// reviewObserved maps recall quality onto the observed score: confident
// recall wins, a strained pass draws, a lapse loses.
func reviewObserved(quality int) float64 {
	switch {
	case quality >= 4:
		return rating.ScoreWin
	case quality == 3:
		return rating.ScoreDraw
	default:
		return rating.ScoreLoss
	}
}

func (e *Engine) logLesson(ctx context.Context, lessonID, action string) {
	e.log(ctx, func(repo store.EventRepo) error {
		return repo.AppendLessonEvent(ctx, store.LessonEventData{
			LessonID:  lessonID,
			Action:    action,
			SessionID: e.sessionID,
		})
	})
}

func (e *Engine) logReward(ctx context.Context, kind string, amount int, reason string) {
	rec := e.Record()
	e.log(ctx, func(repo store.EventRepo) error {
		return repo.AppendRewardEvent(ctx, store.RewardEventData{
			Kind:      kind,
			Amount:    amount,
			XPTotal:   rec.XP,
			Streak:    rec.Streak,
			Reason:    reason,
			SessionID: e.sessionID,
		})
	})
}

// log appends an audit event, best-effort: the record is the source of
// truth and a failed append must not fail the learner's action.
func (e *Engine) log(_ context.Context, fn func(store.EventRepo) error) {
	if e.eventRepo == nil {
		return
	}
	_ = fn(e.eventRepo)
}
