package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/ksander/retain/internal/progress"
	"github.com/ksander/retain/internal/srs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testSnapshotData() SnapshotData {
	score := 8
	total := 10
	completedAt := "2025-03-10"
	tried := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	rec := progress.NewRecord()
	rec.XP = 42
	rec.DailyXP = 7
	rec.LastActiveDate = "2025-03-10"
	rec.Streak = 3
	rec.LongestStreak = 5
	rec.StreakFreezes = 1
	rec.LastCompletionDate = "2025-03-10"
	rec.Lessons["l1"] = &progress.Entry{
		Status:          progress.StatusCompleted,
		ContentComplete: true,
		QuizScore:       &score,
		TotalQuestions:  &total,
		QuizPassed:      true,
		Attempts:        2,
		CompletedAt:     &completedAt,
		QuizLastTriedAt: &tried,
	}

	return SnapshotData{
		Version: SnapshotVersion,
		Record:  rec,
		ReviewItems: map[string]*srs.Item{
			"l1-item": {
				ID:           "l1-item",
				LessonID:     "l1",
				EaseFactor:   2.36,
				Repetitions:  2,
				IntervalDays: 6,
				DueAt:        time.Date(2025, 3, 16, 9, 30, 0, 0, time.UTC),
				History: []srs.Review{
					{Quality: 4, At: time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)},
					{Quality: 5, At: tried},
				},
				Strength: 32,
			},
		},
		Ratings: map[string]int{"l1": 1512, "l2": 1488},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot on empty store")
	}

	want := testSnapshotData()
	err = repo.Save(ctx, &Snapshot{
		Sequence:  7,
		Timestamp: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		Data:      want,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot")
	}
	if got.Sequence != 7 {
		t.Errorf("Sequence = %d, want 7", got.Sequence)
	}
	// Every field must survive the trip through JSON and SQLite.
	if !reflect.DeepEqual(got.Data, want) {
		t.Errorf("snapshot data drifted through round-trip:\n got: %+v\nwant: %+v", got.Data, want)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.AddDate(0, 0, i),
			Data:      SnapshotData{Version: SnapshotVersion},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if latest.Sequence != 4 {
		t.Errorf("latest sequence after prune = %d, want 4", latest.Sequence)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshots after prune = %d, want 2", count)
	}
}

func TestEventSequenceIsGlobal(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLessonEvent(ctx, LessonEventData{LessonID: "l1", Action: "start"}); err != nil {
		t.Fatalf("lesson event: %v", err)
	}
	if err := repo.AppendQuizEvent(ctx, QuizEventData{LessonID: "l1", Score: 8, Total: 10, Passed: true, Attempt: 1, FirstPass: true}); err != nil {
		t.Fatalf("quiz event: %v", err)
	}
	if err := repo.AppendRewardEvent(ctx, RewardEventData{Kind: "xp", Amount: 5, XPTotal: 5, Streak: 1}); err != nil {
		t.Fatalf("reward event: %v", err)
	}

	rewards, err := repo.QueryRewardEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query rewards: %v", err)
	}
	if len(rewards) != 1 {
		t.Fatalf("reward count = %d, want 1", len(rewards))
	}
	// Sequences count up across event types; the reward landed third.
	if rewards[0].Sequence != 3 {
		t.Errorf("reward sequence = %d, want 3", rewards[0].Sequence)
	}
}

func TestRecentReviewAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	accuracy, count, err := repo.RecentReviewAccuracy(ctx, "item-1", 4)
	if err != nil {
		t.Fatalf("accuracy on empty log: %v", err)
	}
	if count != 0 || accuracy != 0 {
		t.Errorf("empty log: accuracy=%v count=%d, want 0/0", accuracy, count)
	}

	qualities := []int{5, 1, 4, 2}
	for _, q := range qualities {
		err := repo.AppendReviewEvent(ctx, ReviewEventData{
			ItemID:       "item-1",
			LessonID:     "l1",
			Quality:      q,
			IntervalDays: 1,
			EaseFactor:   2.5,
			DueAt:        time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("append review: %v", err)
		}
	}

	accuracy, count, err = repo.RecentReviewAccuracy(ctx, "item-1", 4)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	if accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5 (2 of 4 at quality >= 3)", accuracy)
	}
}
