package progress

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 0, 0, 0, time.UTC)
}

func newTestTracker() *Tracker {
	return NewTracker(NewRecord(), Config{})
}

func TestStartLesson_Idempotent(t *testing.T) {
	tr := newTestTracker()
	tr.StartLesson("l1")
	e := tr.Record().Lessons["l1"]
	if e == nil || e.Status != StatusInProgress {
		t.Fatalf("entry = %+v, want in_progress", e)
	}

	e.ContentComplete = true
	tr.StartLesson("l1")
	if !tr.Record().Lessons["l1"].ContentComplete {
		t.Error("repeated StartLesson clobbered the entry")
	}
}

func TestMarkContentComplete_DoesNotChangeStatus(t *testing.T) {
	tr := newTestTracker()
	tr.MarkContentComplete("l1")
	e := tr.Record().Lessons["l1"]
	if !e.ContentComplete {
		t.Error("ContentComplete not set")
	}
	if e.Status != StatusInProgress {
		t.Errorf("Status = %q, want in_progress", e.Status)
	}
}

func TestSubmitQuizAttempt_InvalidScoreMutatesNothing(t *testing.T) {
	tr := newTestTracker()
	now := day(2025, 3, 10)

	for _, tt := range []struct{ score, total int }{
		{6, 5},
		{-1, 5},
		{1, -1},
	} {
		_, err := tr.SubmitQuizAttempt("l1", tt.score, tt.total, now)
		var ise *InvalidScoreError
		if !errors.As(err, &ise) {
			t.Fatalf("score %d/%d: err = %v, want InvalidScoreError", tt.score, tt.total, err)
		}
	}
	if len(tr.Record().Lessons) != 0 {
		t.Error("rejected attempt created an entry")
	}
	if tr.Record().XP != 0 {
		t.Error("rejected attempt awarded XP")
	}
}

func TestSubmitQuizAttempt_LazyStartsLesson(t *testing.T) {
	tr := newTestTracker()
	res, err := tr.SubmitQuizAttempt("l1", 8, 10, day(2025, 3, 10))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Passed {
		t.Error("8/10 should pass at the 0.7 threshold")
	}
	if tr.Record().Lessons["l1"] == nil {
		t.Fatal("entry not lazily created")
	}
}

func TestSubmitQuizAttempt_PassThreshold(t *testing.T) {
	tests := []struct {
		score, total int
		want         bool
	}{
		{7, 10, true},
		{6, 10, false},
		{0, 0, false}, // zero-question quiz never passes
		{3, 4, true},
	}
	for _, tt := range tests {
		tr := newTestTracker()
		res, err := tr.SubmitQuizAttempt("l1", tt.score, tt.total, day(2025, 3, 10))
		if err != nil {
			t.Fatalf("submit %d/%d: %v", tt.score, tt.total, err)
		}
		if res.Passed != tt.want {
			t.Errorf("passed(%d/%d) = %v, want %v", tt.score, tt.total, res.Passed, tt.want)
		}
	}
}

func TestSubmitQuizAttempt_FirstCompletionAwardsXPOnce(t *testing.T) {
	tr := newTestTracker()
	now := day(2025, 3, 10)

	res1, err := tr.SubmitQuizAttempt("l1", 10, 10, now)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if !res1.FirstCompletion || res1.XPAwarded != 5 {
		t.Errorf("first pass: FirstCompletion=%v XPAwarded=%d, want true/5", res1.FirstCompletion, res1.XPAwarded)
	}

	res2, err := tr.SubmitQuizAttempt("l1", 9, 10, now)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if res2.FirstCompletion || res2.XPAwarded != 0 {
		t.Errorf("second pass: FirstCompletion=%v XPAwarded=%d, want false/0", res2.FirstCompletion, res2.XPAwarded)
	}

	if tr.Record().XP != 5 {
		t.Errorf("XP = %d, want 5 (awarded exactly once)", tr.Record().XP)
	}
	if tr.Record().Lessons["l1"].Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", tr.Record().Lessons["l1"].Attempts)
	}
}

func TestSubmitQuizAttempt_FailedAttemptGoesQuizPending(t *testing.T) {
	tr := newTestTracker()
	tr.StartLesson("l1")
	res, err := tr.SubmitQuizAttempt("l1", 2, 10, day(2025, 3, 10))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Passed {
		t.Error("2/10 should fail")
	}
	if got := tr.Record().Lessons["l1"].Status; got != StatusQuizPending {
		t.Errorf("Status = %q, want quiz_pending", got)
	}
}

func TestSubmitQuizAttempt_FailedRetryNeverDowngradesCompleted(t *testing.T) {
	tr := newTestTracker()
	now := day(2025, 3, 10)

	if _, err := tr.SubmitQuizAttempt("l1", 10, 10, now); err != nil {
		t.Fatalf("pass: %v", err)
	}
	if err := tr.RetryQuiz("l1"); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if _, err := tr.SubmitQuizAttempt("l1", 1, 10, now.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("failed retry: %v", err)
	}

	e := tr.Record().Lessons["l1"]
	if e.Status != StatusCompleted {
		t.Errorf("Status = %q, want completed to stay terminal", e.Status)
	}
	if e.CompletedAt == nil {
		t.Error("CompletedAt revoked by failed retry")
	}
	if tr.Record().XP != 5 {
		t.Errorf("XP = %d, want 5 (never revoked)", tr.Record().XP)
	}
}

func TestRetryQuiz(t *testing.T) {
	tr := newTestTracker()

	err := tr.RetryQuiz("ghost")
	var mee *MissingEntryError
	if !errors.As(err, &mee) {
		t.Fatalf("retry of unknown lesson: err = %v, want MissingEntryError", err)
	}

	if _, err := tr.SubmitQuizAttempt("l1", 2, 10, day(2025, 3, 10)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := tr.RetryQuiz("l1"); err != nil {
		t.Fatalf("retry: %v", err)
	}
	e := tr.Record().Lessons["l1"]
	if e.QuizScore != nil {
		t.Error("QuizScore not cleared by retry")
	}
	if e.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1 preserved", e.Attempts)
	}
	if e.Status != StatusInProgress {
		t.Errorf("Status = %q, want in_progress after retry", e.Status)
	}
}

func TestAddXP_DailyRollover(t *testing.T) {
	tr := newTestTracker()
	monday := day(2025, 3, 10)

	tr.AddXP(5, monday)
	tr.AddXP(3, monday)
	if tr.Record().DailyXP != 8 {
		t.Errorf("DailyXP same day = %d, want 8", tr.Record().DailyXP)
	}

	tuesday := monday.AddDate(0, 0, 1)
	tr.AddXP(2, tuesday)
	if tr.Record().DailyXP != 2 {
		t.Errorf("DailyXP after rollover = %d, want 2", tr.Record().DailyXP)
	}
	if tr.Record().XP != 10 {
		t.Errorf("XP = %d, want 10 (lifetime total keeps accumulating)", tr.Record().XP)
	}
	if tr.Record().LastActiveDate != "2025-03-11" {
		t.Errorf("LastActiveDate = %q, want 2025-03-11", tr.Record().LastActiveDate)
	}
}

func TestStreak_ContinuesFromYesterday(t *testing.T) {
	tr := newTestTracker()
	monday := day(2025, 3, 10)

	if _, err := tr.SubmitQuizAttempt("l1", 10, 10, monday); err != nil {
		t.Fatalf("monday: %v", err)
	}
	if tr.Record().Streak != 1 {
		t.Fatalf("streak after first day = %d, want 1", tr.Record().Streak)
	}

	res, err := tr.SubmitQuizAttempt("l2", 10, 10, monday.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("tuesday: %v", err)
	}
	if tr.Record().Streak != 2 || !res.StreakExtended {
		t.Errorf("streak = %d extended = %v, want 2/true", tr.Record().Streak, res.StreakExtended)
	}
	if tr.Record().LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", tr.Record().LongestStreak)
	}
}

func TestStreak_SecondCompletionSameDayDoesNotDoubleCount(t *testing.T) {
	tr := newTestTracker()
	monday := day(2025, 3, 10)

	tr.SubmitQuizAttempt("l1", 10, 10, monday)
	tr.SubmitQuizAttempt("l2", 10, 10, monday)

	if tr.Record().Streak != 1 {
		t.Errorf("streak = %d, want 1 (one qualifying day)", tr.Record().Streak)
	}
}

func TestStreak_GapResetsToOne(t *testing.T) {
	tr := newTestTracker()
	monday := day(2025, 3, 10)

	tr.SubmitQuizAttempt("l1", 10, 10, monday)
	tr.SubmitQuizAttempt("l2", 10, 10, monday.AddDate(0, 0, 1))
	if tr.Record().Streak != 2 {
		t.Fatalf("streak = %d, want 2", tr.Record().Streak)
	}

	// Two missed days, no freeze: reset.
	tr.SubmitQuizAttempt("l3", 10, 10, monday.AddDate(0, 0, 4))
	if tr.Record().Streak != 1 {
		t.Errorf("streak after gap = %d, want 1", tr.Record().Streak)
	}
	if tr.Record().LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2 retained", tr.Record().LongestStreak)
	}
}

func TestStreak_XPActivityAloneDoesNotExtend(t *testing.T) {
	tr := newTestTracker()
	monday := day(2025, 3, 10)

	tr.SubmitQuizAttempt("l1", 10, 10, monday)

	// Tuesday: XP activity but no completion. Wednesday's completion must
	// not read Tuesday as a completion day.
	tr.AddXP(3, monday.AddDate(0, 0, 1))
	tr.SubmitQuizAttempt("l2", 10, 10, monday.AddDate(0, 0, 2))

	if tr.Record().Streak != 1 {
		t.Errorf("streak = %d, want 1 (Tuesday had no completion)", tr.Record().Streak)
	}
}

func TestConsumeStreakFreeze(t *testing.T) {
	monday := day(2025, 3, 10)

	t.Run("bridges a single missed day", func(t *testing.T) {
		tr := newTestTracker()
		tr.Record().StreakFreezes = 1
		tr.SubmitQuizAttempt("l1", 10, 10, monday)
		tr.SubmitQuizAttempt("l2", 10, 10, monday.AddDate(0, 0, 1))

		// Wednesday missed; Thursday the learner spends a freeze.
		thursday := monday.AddDate(0, 0, 3)
		if err := tr.ConsumeStreakFreeze(thursday); err != nil {
			t.Fatalf("consume: %v", err)
		}
		if tr.Record().StreakFreezes != 0 {
			t.Errorf("StreakFreezes = %d, want 0", tr.Record().StreakFreezes)
		}

		tr.SubmitQuizAttempt("l3", 10, 10, thursday)
		if tr.Record().Streak != 3 {
			t.Errorf("streak = %d, want 3 (freeze preserved continuity)", tr.Record().Streak)
		}
	})

	t.Run("requires inventory", func(t *testing.T) {
		tr := newTestTracker()
		tr.SubmitQuizAttempt("l1", 10, 10, monday)
		err := tr.ConsumeStreakFreeze(monday.AddDate(0, 0, 2))
		var fue *FreezeUnavailableError
		if !errors.As(err, &fue) {
			t.Errorf("err = %v, want FreezeUnavailableError", err)
		}
	})

	t.Run("rejects when no day was missed", func(t *testing.T) {
		tr := newTestTracker()
		tr.Record().StreakFreezes = 1
		tr.SubmitQuizAttempt("l1", 10, 10, monday)
		if err := tr.ConsumeStreakFreeze(monday.AddDate(0, 0, 1)); err == nil {
			t.Error("expected error: yesterday has a completion marker")
		}
		if tr.Record().StreakFreezes != 1 {
			t.Error("freeze consumed despite rejection")
		}
	})

	t.Run("rejects gaps beyond the grace window", func(t *testing.T) {
		tr := newTestTracker()
		tr.Record().StreakFreezes = 1
		tr.SubmitQuizAttempt("l1", 10, 10, monday)
		if err := tr.ConsumeStreakFreeze(monday.AddDate(0, 0, 7)); err == nil {
			t.Error("expected error: week-long gap exceeds 48h grace")
		}
	})
}

func TestDailyGoalMet(t *testing.T) {
	tr := newTestTracker()
	monday := day(2025, 3, 10)

	if tr.DailyGoalMet(monday) {
		t.Error("goal met with no XP")
	}
	tr.AddXP(DefaultDailyGoal, monday)
	if !tr.DailyGoalMet(monday) {
		t.Error("goal not met at exactly the target")
	}
	// Yesterday's XP does not satisfy today's goal.
	if tr.DailyGoalMet(monday.AddDate(0, 0, 1)) {
		t.Error("goal met on a day with no activity")
	}
}

func TestNormalize(t *testing.T) {
	r := &Record{}
	r.Normalize()
	if r.Lessons == nil {
		t.Error("Lessons map not initialized")
	}
	if r.DailyGoal != DefaultDailyGoal {
		t.Errorf("DailyGoal = %d, want %d", r.DailyGoal, DefaultDailyGoal)
	}
}
