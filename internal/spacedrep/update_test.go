package spacedrep

import (
	"math"
	"testing"
	"time"
)

func TestNewSchedule_Defaults(t *testing.T) {
	now := time.Now()
	s := NewSchedule("q1", now)
	if s.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %f, want 2.5", s.EaseFactor)
	}
	if s.Interval != 1 {
		t.Errorf("Interval = %d, want 1", s.Interval)
	}
	if s.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", s.Repetitions)
	}
	if !s.NextReview.Equal(now) {
		t.Errorf("NextReview = %v, want now", s.NextReview)
	}
	if !s.IsDue(now) {
		t.Error("fresh schedule should be due immediately")
	}
}

func TestUpdate_IncorrectResets(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		state Schedule
	}{
		{"fresh", NewSchedule("q", now)},
		{"learning", Schedule{QuestionID: "q", EaseFactor: 2.5, Interval: 6, Repetitions: 2}},
		{"graduated", Schedule{QuestionID: "q", EaseFactor: 2.8, Interval: 42, Repetitions: 7}},
	}
	for _, tt := range tests {
		got := Update(tt.state, false, now)
		if got.Repetitions != 0 {
			t.Errorf("%s: Repetitions = %d, want 0", tt.name, got.Repetitions)
		}
		if got.Interval != 1 {
			t.Errorf("%s: Interval = %d, want 1", tt.name, got.Interval)
		}
		want := math.Max(MinEaseFactor, tt.state.EaseFactor-0.2)
		if math.Abs(got.EaseFactor-want) > 1e-9 {
			t.Errorf("%s: EaseFactor = %f, want %f", tt.name, got.EaseFactor, want)
		}
	}
}

func TestUpdate_EaseNeverBelowFloor(t *testing.T) {
	now := time.Now()
	s := Schedule{QuestionID: "q", EaseFactor: 1.35, Interval: 1}
	for i := 0; i < 20; i++ {
		s = Update(s, false, now)
		if s.EaseFactor < MinEaseFactor {
			t.Fatalf("EaseFactor dropped to %f after %d lapses", s.EaseFactor, i+1)
		}
	}
	if s.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %f, want floor %f", s.EaseFactor, MinEaseFactor)
	}
}

func TestUpdate_CorrectIntervalLadder(t *testing.T) {
	now := time.Now()
	s := NewSchedule("q", now)

	s = Update(s, true, now)
	if s.Interval != 1 || s.Repetitions != 1 {
		t.Errorf("after 1st correct: interval=%d reps=%d, want 1/1", s.Interval, s.Repetitions)
	}

	s = Update(s, true, now)
	if s.Interval != 6 || s.Repetitions != 2 {
		t.Errorf("after 2nd correct: interval=%d reps=%d, want 6/2", s.Interval, s.Repetitions)
	}

	wantThird := int(math.Round(6 * s.EaseFactor))
	s = Update(s, true, now)
	if s.Interval != wantThird {
		t.Errorf("after 3rd correct: interval=%d, want round(6*ease)=%d", s.Interval, wantThird)
	}
}

func TestUpdate_FixedQualityEaseIsStable(t *testing.T) {
	// The canonical updater grades every correct answer at quality 4, where
	// the SM-2 delta is exactly zero. Ease must not drift upward.
	now := time.Now()
	s := NewSchedule("q", now)
	for i := 0; i < 10; i++ {
		s = Update(s, true, now)
	}
	if math.Abs(s.EaseFactor-2.5) > 1e-9 {
		t.Errorf("EaseFactor = %f after 10 correct, want unchanged 2.5", s.EaseFactor)
	}
}

func TestUpdate_SetsReviewTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSchedule("q", now)
	s = Update(s, true, now)

	wantNext := now.AddDate(0, 0, 1)
	if !s.NextReview.Equal(wantNext) {
		t.Errorf("NextReview = %v, want %v", s.NextReview, wantNext)
	}
	if s.LastReviewed == nil || !s.LastReviewed.Equal(now) {
		t.Errorf("LastReviewed = %v, want %v", s.LastReviewed, now)
	}
}

func TestUpdate_ResetThenRelearn(t *testing.T) {
	now := time.Now()
	s := Schedule{QuestionID: "q", EaseFactor: 2.5, Interval: 15, Repetitions: 3}

	s = Update(s, false, now)
	s = Update(s, true, now)
	if s.Interval != 1 {
		t.Errorf("relearn 1st interval = %d, want 1", s.Interval)
	}
	s = Update(s, true, now)
	if s.Interval != 6 {
		t.Errorf("relearn 2nd interval = %d, want 6", s.Interval)
	}
}
