package engine

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ksander/retain/internal/catalog"
	"github.com/ksander/retain/internal/store"
)

// mockEventRepo records appended events for assertions.
type mockEventRepo struct {
	lessons []store.LessonEventData
	quizzes []store.QuizEventData
	reviews []store.ReviewEventData
	ratings []store.RatingEventData
	rewards []store.RewardEventData
}

func (m *mockEventRepo) AppendLessonEvent(_ context.Context, d store.LessonEventData) error {
	m.lessons = append(m.lessons, d)
	return nil
}
func (m *mockEventRepo) AppendQuizEvent(_ context.Context, d store.QuizEventData) error {
	m.quizzes = append(m.quizzes, d)
	return nil
}
func (m *mockEventRepo) AppendReviewEvent(_ context.Context, d store.ReviewEventData) error {
	m.reviews = append(m.reviews, d)
	return nil
}
func (m *mockEventRepo) AppendRatingEvent(_ context.Context, d store.RatingEventData) error {
	m.ratings = append(m.ratings, d)
	return nil
}
func (m *mockEventRepo) AppendRewardEvent(_ context.Context, d store.RewardEventData) error {
	m.rewards = append(m.rewards, d)
	return nil
}
func (m *mockEventRepo) QueryRewardEvents(_ context.Context, _ store.QueryOpts) ([]store.RewardEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentReviewAccuracy(_ context.Context, _ string, _ int) (float64, int, error) {
	return 0, 0, nil
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Unit{
		{ID: "basics", Name: "Basics", Difficulty: 1500},
		{ID: "easy", Name: "Easy", Difficulty: 900},
		{ID: "advanced", Name: "Advanced", Difficulty: 1900, Prerequisites: []string{"basics"}},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func newTestEngine(t *testing.T, repo store.EventRepo) *Engine {
	t.Helper()
	return New(nil, testCatalog(t), repo, DefaultConfig())
}

var engineNow = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func TestNextUnit_PicksBalancedUnlockedUnit(t *testing.T) {
	e := newTestEngine(t, nil)

	// Fresh learner at 1500: "basics" sits at even odds, "easy" is far
	// below, and "advanced" is still locked behind it.
	u, ok := e.NextUnit()
	if !ok {
		t.Fatal("expected a recommendation")
	}
	if u.ID != "basics" {
		t.Errorf("NextUnit = %q, want basics", u.ID)
	}
}

func TestNextUnit_FrontierAdvancesWithCompletion(t *testing.T) {
	e := newTestEngine(t, nil)
	ctx := context.Background()

	if _, err := e.SubmitQuiz(ctx, "basics", 10, 10, engineNow); err != nil {
		t.Fatalf("complete basics: %v", err)
	}

	u, ok := e.NextUnit()
	if !ok {
		t.Fatal("expected a recommendation")
	}
	// basics is completed; of easy (p≈0.97) and advanced (p≈0.09 at the
	// default rating), advanced is closer to even odds.
	if u.ID != "advanced" {
		t.Errorf("NextUnit = %q, want advanced", u.ID)
	}
}

func TestNextUnit_NothingUnlocked(t *testing.T) {
	e := newTestEngine(t, nil)
	ctx := context.Background()
	for _, id := range []string{"basics", "easy", "advanced"} {
		if _, err := e.SubmitQuiz(ctx, id, 10, 10, engineNow); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}
	if _, ok := e.NextUnit(); ok {
		t.Error("expected no recommendation once everything is completed")
	}
}

func TestSubmitQuiz_UpdatesRatingAndSeedsReviewItem(t *testing.T) {
	repo := &mockEventRepo{}
	e := newTestEngine(t, repo)
	ctx := context.Background()

	res, err := e.SubmitQuiz(ctx, "basics", 10, 10, engineNow)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.FirstCompletion {
		t.Fatal("expected first completion")
	}

	// Even-odds win moves the rating by K/2.
	if got := e.Rating("basics"); got != 1512 {
		t.Errorf("rating = %d, want 1512", got)
	}

	item, ok := e.Items()["basics"]
	if !ok {
		t.Fatal("expected a seeded review item")
	}
	if !item.IsDue(engineNow) {
		t.Error("seeded item should be immediately due")
	}

	if len(repo.quizzes) != 1 || !repo.quizzes[0].FirstPass {
		t.Errorf("quiz events = %+v, want one first-pass event", repo.quizzes)
	}
	if len(repo.ratings) != 1 || repo.ratings[0].NewRating != 1512 {
		t.Errorf("rating events = %+v, want one update to 1512", repo.ratings)
	}
	var kinds []string
	for _, r := range repo.rewards {
		kinds = append(kinds, r.Kind)
	}
	if !reflect.DeepEqual(kinds, []string{"xp", "streak"}) {
		t.Errorf("reward kinds = %v, want [xp streak]", kinds)
	}
}

func TestSubmitQuiz_RepeatPassAwardsNothingButStillRates(t *testing.T) {
	repo := &mockEventRepo{}
	e := newTestEngine(t, repo)
	ctx := context.Background()

	e.SubmitQuiz(ctx, "basics", 10, 10, engineNow)
	xpAfterFirst := e.Record().XP

	res, err := e.SubmitQuiz(ctx, "basics", 10, 10, engineNow)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if res.FirstCompletion {
		t.Error("second pass must not be a first completion")
	}
	if e.Record().XP != xpAfterFirst {
		t.Errorf("XP = %d, want %d (no double award)", e.Record().XP, xpAfterFirst)
	}
	// The rating keeps learning from every attempt.
	if len(repo.ratings) != 2 {
		t.Errorf("rating events = %d, want 2", len(repo.ratings))
	}
}

func TestSubmitQuiz_InvalidScoreLogsNothing(t *testing.T) {
	repo := &mockEventRepo{}
	e := newTestEngine(t, repo)

	if _, err := e.SubmitQuiz(context.Background(), "basics", 11, 10, engineNow); err == nil {
		t.Fatal("expected InvalidScoreError")
	}
	if len(repo.quizzes) != 0 || len(repo.ratings) != 0 {
		t.Error("rejected attempt appended events")
	}
	if _, ok := e.Ratings()["basics"]; ok {
		t.Error("rejected attempt touched ratings")
	}
}

func TestAnswerReview_FullCycle(t *testing.T) {
	repo := &mockEventRepo{}
	e := newTestEngine(t, repo)
	ctx := context.Background()

	e.SubmitQuiz(ctx, "basics", 10, 10, engineNow)
	xpBefore := e.Record().XP

	item, err := e.AnswerReview(ctx, "basics", 2, engineNow) // "good" -> quality 4
	if err != nil {
		t.Fatalf("answer review: %v", err)
	}
	if item.Repetitions != 1 || item.IntervalDays != 1 {
		t.Errorf("item after review: reps=%d interval=%d, want 1/1", item.Repetitions, item.IntervalDays)
	}
	if len(repo.reviews) != 1 || repo.reviews[0].Quality != 4 {
		t.Errorf("review events = %+v, want one quality-4 event", repo.reviews)
	}
	if e.Record().XP != xpBefore+1 {
		t.Errorf("XP = %d, want %d (+1 review XP)", e.Record().XP, xpBefore+1)
	}
}

func TestAnswerReview_UnknownItem(t *testing.T) {
	e := newTestEngine(t, nil)
	_, err := e.AnswerReview(context.Background(), "ghost", 2, engineNow)
	var uie *UnknownItemError
	if !errors.As(err, &uie) {
		t.Errorf("err = %v, want UnknownItemError", err)
	}
}

func TestAnswerReview_InvalidChoiceMutatesNothing(t *testing.T) {
	e := newTestEngine(t, nil)
	ctx := context.Background()
	e.SubmitQuiz(ctx, "basics", 10, 10, engineNow)

	before := *e.Items()["basics"]
	if _, err := e.AnswerReview(ctx, "basics", 9, engineNow); err == nil {
		t.Fatal("expected InvalidQualityError for choice 9")
	}
	after := *e.Items()["basics"]
	if before.Repetitions != after.Repetitions || len(before.History) != len(after.History) {
		t.Error("invalid choice mutated the item")
	}
}

func TestReviewSession_BatchAndPriority(t *testing.T) {
	e := New(nil, testCatalog(t), nil, Config{ReviewBatchSize: 3})
	ctx := context.Background()

	sess := e.ReviewSession(engineNow)
	if sess.Priority != "none" || sess.TotalDue != 0 {
		t.Errorf("empty session = %+v, want none/0", sess)
	}

	// Completing a lesson seeds one immediately-due item.
	e.SubmitQuiz(ctx, "basics", 10, 10, engineNow)
	sess = e.ReviewSession(engineNow)
	if sess.TotalDue != 1 || len(sess.Items) != 1 || sess.Priority != "medium" {
		t.Errorf("session = %+v, want 1 item at medium priority", sess)
	}
}

func TestDueReviews_UrgencyOrdering(t *testing.T) {
	e := newTestEngine(t, nil)

	stale := e.sched.NewItem("stale", "basics")
	stale.DueAt = engineNow.AddDate(0, 0, -10)
	stale.Strength = 20
	fresh := e.sched.NewItem("fresh", "easy")
	fresh.DueAt = engineNow.AddDate(0, 0, -1)
	fresh.Strength = 90
	future := e.sched.NewItem("future", "advanced")
	future.DueAt = engineNow.AddDate(0, 0, 3)
	e.items["stale"] = stale
	e.items["fresh"] = fresh
	e.items["future"] = future

	due := e.DueReviews(engineNow)
	if len(due) != 2 {
		t.Fatalf("due count = %d, want 2 (future item excluded)", len(due))
	}
	if due[0].ID != "stale" || due[1].ID != "fresh" {
		t.Errorf("due order = [%s %s], want [stale fresh]", due[0].ID, due[1].ID)
	}
}

func TestSnapshotRoundTripThroughEngine(t *testing.T) {
	e := newTestEngine(t, nil)
	ctx := context.Background()

	e.SubmitQuiz(ctx, "basics", 10, 10, engineNow)
	e.AnswerReview(ctx, "basics", 3, engineNow)
	e.SubmitQuiz(ctx, "advanced", 3, 10, engineNow.AddDate(0, 0, 1))

	data := e.SnapshotData()
	blob, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored store.SnapshotData
	if err := json.Unmarshal(blob, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(data.Record, restored.Record) {
		t.Errorf("record drifted:\n got %+v\nwant %+v", restored.Record, data.Record)
	}
	if !reflect.DeepEqual(data.Ratings, restored.Ratings) {
		t.Errorf("ratings drifted: got %v want %v", restored.Ratings, data.Ratings)
	}
	if !reflect.DeepEqual(data.ReviewItems, restored.ReviewItems) {
		t.Errorf("review items drifted")
	}

	// A new session over the restored snapshot picks up where we left off.
	e2 := New(&restored, testCatalog(t), nil, DefaultConfig())
	if e2.Record().XP != e.Record().XP {
		t.Errorf("restored XP = %d, want %d", e2.Record().XP, e.Record().XP)
	}
	if e2.Rating("basics") != e.Rating("basics") {
		t.Errorf("restored rating = %d, want %d", e2.Rating("basics"), e.Rating("basics"))
	}
}

func TestConsumeStreakFreeze_LogsReward(t *testing.T) {
	repo := &mockEventRepo{}
	e := newTestEngine(t, repo)
	ctx := context.Background()

	e.Record().StreakFreezes = 1
	e.SubmitQuiz(ctx, "basics", 10, 10, engineNow)

	twoDaysOn := engineNow.AddDate(0, 0, 2)
	if err := e.ConsumeStreakFreeze(ctx, twoDaysOn); err != nil {
		t.Fatalf("consume: %v", err)
	}
	last := repo.rewards[len(repo.rewards)-1]
	if last.Kind != "freeze" || last.Amount != 1 {
		t.Errorf("last reward = %+v, want freeze/1", last)
	}
}
