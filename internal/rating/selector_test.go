package rating

import "testing"

func TestSelectNext_Empty(t *testing.T) {
	if _, ok := SelectNext(nil); ok {
		t.Error("expected no selection for empty candidate set")
	}
	if _, ok := SelectNext([]Candidate{}); ok {
		t.Error("expected no selection for empty slice")
	}
}

func TestSelectNext_PicksBalancedChallenge(t *testing.T) {
	candidates := []Candidate{
		{ID: "too-hard", Rating: 1500, Difficulty: 2100},
		{ID: "balanced", Rating: 1500, Difficulty: 1500},
		{ID: "too-easy", Rating: 1500, Difficulty: 900},
	}
	got, ok := SelectNext(candidates)
	if !ok {
		t.Fatal("expected a selection")
	}
	// The balanced candidate sits exactly at p=0.5, so it carries the
	// most information of the three.
	if got.ID != "balanced" {
		t.Errorf("SelectNext = %q, want %q", got.ID, "balanced")
	}
}

func TestSelectNext_TieBreaksByInputOrder(t *testing.T) {
	// Both candidates are the same distance from p=0.5.
	candidates := []Candidate{
		{ID: "first", Rating: 1500, Difficulty: 1700},
		{ID: "second", Rating: 1500, Difficulty: 1300},
	}
	got, ok := SelectNext(candidates)
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.ID != "first" {
		t.Errorf("SelectNext = %q, want first-occurrence winner %q", got.ID, "first")
	}
}

func TestSelectNext_SingleCandidate(t *testing.T) {
	got, ok := SelectNext([]Candidate{{ID: "only", Rating: 800, Difficulty: 2300}})
	if !ok || got.ID != "only" {
		t.Errorf("SelectNext single = (%q, %v), want (only, true)", got.ID, ok)
	}
}
