package srs

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNewItem_ImmediatelyDue(t *testing.T) {
	s := NewScheduler(Config{})
	it := s.NewItem("item-1", "lesson-1")

	if it.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %v, want 2.5", it.EaseFactor)
	}
	if !it.IsDue(testNow) {
		t.Error("new item should be immediately due")
	}
	if it.OverdueDays(testNow) != 0 {
		t.Errorf("OverdueDays = %v, want 0 for unscheduled item", it.OverdueDays(testNow))
	}
}

func TestReview_FirstAndSecondRepetition(t *testing.T) {
	s := NewScheduler(Config{})
	it := s.NewItem("item-1", "lesson-1")

	if err := s.Review(it, 4, testNow); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if it.Repetitions != 1 || it.IntervalDays != 1 {
		t.Errorf("after 1st pass: reps=%d interval=%d, want 1/1", it.Repetitions, it.IntervalDays)
	}
	if want := testNow.AddDate(0, 0, 1); !it.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", it.DueAt, want)
	}

	if err := s.Review(it, 4, testNow.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("second review: %v", err)
	}
	if it.Repetitions != 2 || it.IntervalDays != 6 {
		t.Errorf("after 2nd pass: reps=%d interval=%d, want 2/6", it.Repetitions, it.IntervalDays)
	}
}

func TestReview_IntervalGrowsByPriorEase(t *testing.T) {
	s := NewScheduler(Config{})
	it := s.NewItem("item-1", "lesson-1")
	it.Repetitions = 2
	it.IntervalDays = 6
	it.EaseFactor = 2.5

	if err := s.Review(it, 5, testNow); err != nil {
		t.Fatalf("review: %v", err)
	}
	// 6 * 2.5 = 15, computed before the ease factor moves to 2.6.
	if it.IntervalDays != 15 {
		t.Errorf("IntervalDays = %d, want 15", it.IntervalDays)
	}
	if math.Abs(it.EaseFactor-2.6) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.6", it.EaseFactor)
	}
}

func TestReview_PerfectRunIsMonotonicAndCapped(t *testing.T) {
	s := NewScheduler(Config{})
	it := s.NewItem("item-1", "lesson-1")

	now := testNow
	prev := 0
	for i := 0; i < 20; i++ {
		if err := s.Review(it, 5, now); err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		if it.IntervalDays < prev {
			t.Fatalf("interval shrank on repetition %d: %d < %d", i+1, it.IntervalDays, prev)
		}
		if it.IntervalDays > 365 {
			t.Fatalf("interval %d exceeds 365-day cap", it.IntervalDays)
		}
		prev = it.IntervalDays
		now = now.AddDate(0, 0, it.IntervalDays)
	}
	if it.IntervalDays != 365 {
		t.Errorf("interval after 20 perfect reviews = %d, want cap 365", it.IntervalDays)
	}
}

func TestReview_LapseResetsIntervalNotEase(t *testing.T) {
	s := NewScheduler(Config{})
	it := s.NewItem("item-1", "lesson-1")
	for i := 0; i < 5; i++ {
		if err := s.Review(it, 5, testNow); err != nil {
			t.Fatalf("review: %v", err)
		}
	}
	easeBefore := it.EaseFactor

	if err := s.Review(it, 1, testNow); err != nil {
		t.Fatalf("lapse: %v", err)
	}
	if it.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0 after lapse", it.Repetitions)
	}
	if it.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1 after lapse", it.IntervalDays)
	}
	if it.EaseFactor != easeBefore {
		t.Errorf("EaseFactor changed on lapse: %v -> %v", easeBefore, it.EaseFactor)
	}
}

func TestReview_EaseFloor(t *testing.T) {
	s := NewScheduler(Config{})
	it := s.NewItem("item-1", "lesson-1")
	// Quality 3 drags ease down by 0.14 per pass; the floor must hold.
	for i := 0; i < 20; i++ {
		if err := s.Review(it, 3, testNow); err != nil {
			t.Fatalf("review: %v", err)
		}
	}
	if it.EaseFactor < 1.3 {
		t.Errorf("EaseFactor = %v, below 1.3 floor", it.EaseFactor)
	}
}

func TestReview_InvalidQualityMutatesNothing(t *testing.T) {
	s := NewScheduler(Config{})
	it := s.NewItem("item-1", "lesson-1")
	if err := s.Review(it, 4, testNow); err != nil {
		t.Fatalf("setup review: %v", err)
	}
	before := *it
	historyLen := len(it.History)

	for _, q := range []int{-1, 6, 42} {
		err := s.Review(it, q, testNow)
		var iqe *InvalidQualityError
		if !errors.As(err, &iqe) {
			t.Fatalf("quality %d: err = %v, want InvalidQualityError", q, err)
		}
		if it.Repetitions != before.Repetitions || it.IntervalDays != before.IntervalDays ||
			it.EaseFactor != before.EaseFactor || !it.DueAt.Equal(before.DueAt) ||
			len(it.History) != historyLen {
			t.Fatalf("quality %d mutated state", q)
		}
	}
}

func TestReview_HistoryAppends(t *testing.T) {
	s := NewScheduler(Config{})
	it := s.NewItem("item-1", "lesson-1")

	s.Review(it, 4, testNow)
	s.Review(it, 2, testNow.AddDate(0, 0, 1))

	if len(it.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(it.History))
	}
	if it.History[0].Quality != 4 || it.History[1].Quality != 2 {
		t.Errorf("history qualities = %d,%d, want 4,2", it.History[0].Quality, it.History[1].Quality)
	}
}

func TestQualityFromChoice(t *testing.T) {
	tests := []struct {
		choice  int
		want    int
		wantErr bool
	}{
		{0, 1, false},
		{1, 2, false},
		{2, 4, false},
		{3, 5, false},
		{-1, 0, true},
		{4, 0, true},
	}
	for _, tt := range tests {
		got, err := QualityFromChoice(tt.choice)
		if tt.wantErr {
			if err == nil {
				t.Errorf("QualityFromChoice(%d): expected error", tt.choice)
			}
			continue
		}
		if err != nil {
			t.Errorf("QualityFromChoice(%d): %v", tt.choice, err)
			continue
		}
		if got != tt.want {
			t.Errorf("QualityFromChoice(%d) = %d, want %d", tt.choice, got, tt.want)
		}
	}
}

func TestComputeStrength(t *testing.T) {
	tests := []struct {
		name     string
		interval int
		ease     float64
		want     int
	}{
		{"fresh item", 0, 2.5, 21},
		{"month-long interval, max ease", 30, 3.0, 100},
		{"short interval, floor ease", 1, 1.3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStrength(tt.interval, tt.ease); got != tt.want {
				t.Errorf("ComputeStrength(%d, %v) = %d, want %d", tt.interval, tt.ease, got, tt.want)
			}
		})
	}
}
