package rating

import (
	"math"
	"testing"
)

func TestExpectedScore_EqualRatingAndDifficulty(t *testing.T) {
	got := ExpectedScore(1500, 1500)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("ExpectedScore(1500, 1500) = %f, want 0.5", got)
	}
}

func TestExpectedScore_400PointGap(t *testing.T) {
	// A 400-point advantage is the canonical 10:1 odds point.
	got := ExpectedScore(1900, 1500)
	want := 10.0 / 11.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ExpectedScore(1900, 1500) = %f, want %f", got, want)
	}
}

func TestExpectedScore_Symmetry(t *testing.T) {
	p := ExpectedScore(1650, 1450)
	q := ExpectedScore(1450, 1650)
	if math.Abs(p+q-1.0) > 1e-9 {
		t.Errorf("ExpectedScore(a,b) + ExpectedScore(b,a) = %f, want 1", p+q)
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		rating   float64
		observed float64
		want     int
	}{
		{"win at even odds", 1500, ScoreWin, 1512},
		{"loss at even odds", 1500, ScoreLoss, 1488},
		{"draw at even odds", 1500, ScoreDraw, 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := ExpectedScore(tt.rating, tt.rating)
			got := Update(tt.rating, expected, tt.observed, DefaultK)
			if got != tt.want {
				t.Errorf("Update = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUpdate_StaysWithinBounds(t *testing.T) {
	// Hammer the update with one-sided outcomes; the rating must never
	// escape [MinRating, MaxRating].
	r := float64(DefaultRating)
	for i := 0; i < 200; i++ {
		next := Update(r, ExpectedScore(r, 1500), ScoreWin, DefaultK)
		if next < MinRating || next > MaxRating {
			t.Fatalf("rating %d escaped bounds after %d wins", next, i+1)
		}
		r = float64(next)
	}
	if r != MaxRating {
		t.Errorf("rating after 200 wins = %v, want cap %d", r, MaxRating)
	}

	r = float64(DefaultRating)
	for i := 0; i < 200; i++ {
		next := Update(r, ExpectedScore(r, 1500), ScoreLoss, DefaultK)
		if next < MinRating || next > MaxRating {
			t.Fatalf("rating %d escaped bounds after %d losses", next, i+1)
		}
		r = float64(next)
	}
	if r != MinRating {
		t.Errorf("rating after 200 losses = %v, want floor %d", r, MinRating)
	}
}

func TestUpdate_ClampsExtremes(t *testing.T) {
	if got := Update(2399, 0.1, ScoreWin, 100); got != MaxRating {
		t.Errorf("Update above cap = %d, want %d", got, MaxRating)
	}
	if got := Update(601, 0.9, ScoreLoss, 100); got != MinRating {
		t.Errorf("Update below floor = %d, want %d", got, MinRating)
	}
}
