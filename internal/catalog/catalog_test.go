package catalog

import (
	"strings"
	"testing"
)

func testUnits() []Unit {
	return []Unit{
		{ID: "a", Name: "A", Difficulty: 1100},
		{ID: "b", Name: "B", Difficulty: 1300, Prerequisites: []string{"a"}},
		{ID: "c", Name: "C", Difficulty: 1500, Prerequisites: []string{"a"}},
		{ID: "d", Name: "D", Difficulty: 1800, Prerequisites: []string{"b", "c"}},
	}
}

func TestNew_TopologicalOrder(t *testing.T) {
	c, err := New(testUnits())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pos := make(map[string]int)
	for i, u := range c.Units() {
		pos[u.ID] = i
	}
	for _, u := range testUnits() {
		for _, prereq := range u.Prerequisites {
			if pos[prereq] >= pos[u.ID] {
				t.Errorf("unit %q appears before its prerequisite %q", u.ID, prereq)
			}
		}
	}
}

func TestUnlocked_Frontier(t *testing.T) {
	c, err := New(testUnits())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ids := func(units []Unit) []string {
		out := make([]string, len(units))
		for i, u := range units {
			out[i] = u.ID
		}
		return out
	}

	tests := []struct {
		name      string
		completed map[string]bool
		want      string
	}{
		{"nothing completed", nil, "a"},
		{"root completed", map[string]bool{"a": true}, "b c"},
		{"one branch done", map[string]bool{"a": true, "b": true}, "c"},
		{"both branches done", map[string]bool{"a": true, "b": true, "c": true}, "d"},
		{"everything done", map[string]bool{"a": true, "b": true, "c": true, "d": true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(ids(c.Unlocked(tt.completed)), " ")
			if got != tt.want {
				t.Errorf("Unlocked = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDependents(t *testing.T) {
	c, err := New(testUnits())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := strings.Join(c.Dependents("a"), " ")
	if got != "b c" {
		t.Errorf("Dependents(a) = %q, want %q", got, "b c")
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		units   []Unit
		wantSub string
	}{
		{
			"duplicate id",
			[]Unit{{ID: "a", Difficulty: 1200}, {ID: "a", Difficulty: 1300}},
			"duplicate unit ID",
		},
		{
			"unknown prerequisite",
			[]Unit{{ID: "a", Difficulty: 1200, Prerequisites: []string{"ghost"}}},
			"nonexistent prerequisite",
		},
		{
			"self prerequisite",
			[]Unit{{ID: "a", Difficulty: 1200, Prerequisites: []string{"a"}}},
			"lists itself",
		},
		{
			"cycle",
			[]Unit{
				{ID: "a", Difficulty: 1200, Prerequisites: []string{"b"}},
				{ID: "b", Difficulty: 1300, Prerequisites: []string{"a"}},
			},
			"cycle",
		},
		{
			"difficulty out of scale",
			[]Unit{{ID: "a", Difficulty: 99}},
			"difficulty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.units)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}
