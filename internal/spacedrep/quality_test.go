package spacedrep

import (
	"math"
	"testing"
)

func TestReviewQuality(t *testing.T) {
	tests := []struct {
		name      string
		correct   bool
		spent     float64
		limit     float64
		want      int
	}{
		{"fast correct", true, 8, 30, 5},
		{"exactly 30 percent", true, 9, 30, 5},
		{"half-time correct", true, 15, 30, 4},
		{"slow correct", true, 25, 30, 3},
		{"over-time correct", true, 45, 30, 3},
		{"incorrect in time", false, 10, 30, 1},
		{"incorrect over time", false, 40, 30, 0},
		{"default limit applied", true, 9, 0, 5},
	}
	for _, tt := range tests {
		if got := ReviewQuality(tt.correct, tt.spent, tt.limit); got != tt.want {
			t.Errorf("%s: ReviewQuality = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestGradedEase(t *testing.T) {
	tests := []struct {
		quality int
		ease    float64
		want    float64
	}{
		{5, 2.5, 2.6},
		{4, 2.5, 2.5},
		{3, 2.5, 2.36},
		{0, 2.5, 1.7},
		{0, 1.4, 1.3}, // would go below floor
	}
	for _, tt := range tests {
		got := GradedEase(tt.ease, tt.quality)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("GradedEase(%f, %d) = %f, want %f", tt.ease, tt.quality, got, tt.want)
		}
	}
}

func TestGradedEase_NeverBelowFloor(t *testing.T) {
	for q := 0; q <= 5; q++ {
		for ease := 1.3; ease <= 3.0; ease += 0.1 {
			if got := GradedEase(ease, q); got < MinEaseFactor {
				t.Fatalf("GradedEase(%f, %d) = %f below floor", ease, q, got)
			}
		}
	}
}

func TestGradedEase_ClampsQuality(t *testing.T) {
	if got := GradedEase(2.5, 9); got != GradedEase(2.5, 5) {
		t.Errorf("quality above 5 not clamped: %f", got)
	}
	if got := GradedEase(2.5, -1); got != GradedEase(2.5, 0) {
		t.Errorf("negative quality not clamped: %f", got)
	}
}
