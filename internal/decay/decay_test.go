package decay

import (
	"math"
	"testing"
	"time"
)

func TestWeight_Now(t *testing.T) {
	now := time.Now()
	if got := Weight(now, now); got != 1.0 {
		t.Errorf("Weight(now, now) = %f, want 1.0", got)
	}
}

func TestWeight_WindowEdge(t *testing.T) {
	now := time.Now()
	old := now.AddDate(0, 0, -180)
	if got := Weight(old, now); got != 0.0 {
		t.Errorf("Weight(180d ago) = %f, want exactly 0.0", got)
	}
}

func TestWeight_BeyondWindow(t *testing.T) {
	now := time.Now()
	old := now.AddDate(0, 0, -400)
	if got := Weight(old, now); got != 0.0 {
		t.Errorf("Weight(400d ago) = %f, want 0.0", got)
	}
}

func TestWeight_FutureDated(t *testing.T) {
	now := time.Now()
	future := now.Add(48 * time.Hour)
	if got := Weight(future, now); got != 1.0 {
		t.Errorf("Weight(future event) = %f, want clamp to 1.0", got)
	}
}

func TestWeightForAge_KnownValues(t *testing.T) {
	tests := []struct {
		days float64
		want float64
		tol  float64
	}{
		{0, 1.0, 0},
		{60, 0.335, 0.01},
		{120, 0.089, 0.01},
		{180, 0.0, 0},
	}
	for _, tt := range tests {
		got := WeightForAge(tt.days)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("WeightForAge(%v) = %f, want %f ± %f", tt.days, got, tt.want, tt.tol)
		}
	}
}

func TestWeightForAge_Monotonic(t *testing.T) {
	prev := WeightForAge(0)
	for days := 1.0; days <= 200; days++ {
		cur := WeightForAge(days)
		if cur > prev {
			t.Fatalf("weight increased from %f to %f at day %v", prev, cur, days)
		}
		prev = cur
	}
}

func TestWeightForAge_Bounds(t *testing.T) {
	for days := -30.0; days <= 400; days += 0.5 {
		w := WeightForAge(days)
		if w < 0 || w > 1 {
			t.Fatalf("WeightForAge(%v) = %f out of [0,1]", days, w)
		}
	}
}

func TestHalfLifeWeightForAge(t *testing.T) {
	tests := []struct {
		days     float64
		halfLife float64
		want     float64
		tol      float64
	}{
		{0, 21, 1.0, 0},
		{21, 21, math.Exp(-1), 1e-9},
		{28, 28, math.Exp(-1), 1e-9},
		{-5, 21, 1.0, 0},
	}
	for _, tt := range tests {
		got := HalfLifeWeightForAge(tt.days, tt.halfLife)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("HalfLifeWeightForAge(%v, %v) = %f, want %f", tt.days, tt.halfLife, got, tt.want)
		}
	}
}

func TestHalfLifeWeightForAge_NeverZero(t *testing.T) {
	// The half-life model is asymptotic, not normalized: even very old
	// events keep a tiny positive weight.
	if got := HalfLifeWeightForAge(180, 21); got <= 0 {
		t.Errorf("half-life weight at 180d = %f, want > 0", got)
	}
}

func TestHalfLifeWeightForAge_ZeroHalfLife(t *testing.T) {
	if got := HalfLifeWeightForAge(10, 0); got != 1.0 {
		t.Errorf("zero half-life = %f, want full weight", got)
	}
}

func TestTwoModelsDiverge(t *testing.T) {
	// The normalized and half-life models must not be unified: at the same
	// age they produce different weights.
	norm := WeightForAge(60)
	hl := HalfLifeWeightForAge(60, 21)
	if math.Abs(norm-hl) < 0.01 {
		t.Errorf("models coincide at 60d (%f vs %f); expected divergence", norm, hl)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 1, 1},
		{-5, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{math.NaN(), 0, 100, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
