package spacedrep

import (
	"testing"
	"time"
)

func TestSelectDue_FiltersNotDue(t *testing.T) {
	now := time.Now()
	schedules := []Schedule{
		{QuestionID: "due", EaseFactor: 2.5, NextReview: now.Add(-time.Hour)},
		{QuestionID: "future", EaseFactor: 2.5, NextReview: now.Add(time.Hour)},
	}
	got := SelectDue(schedules, now, 10)
	if len(got) != 1 || got[0].QuestionID != "due" {
		t.Fatalf("SelectDue returned %v, want only the due schedule", got)
	}
}

func TestSelectDue_LowEaseBeatsOverdue(t *testing.T) {
	// A hard question (ease at floor) must outrank an easy one that is a
	// few minutes more overdue: the inverse-ease term covers the gap.
	now := time.Now()
	schedules := []Schedule{
		{QuestionID: "easy-older", EaseFactor: 2.8, NextReview: now.Add(-10 * time.Minute)},
		{QuestionID: "hard-newer", EaseFactor: 1.3, NextReview: now.Add(-5 * time.Minute)},
	}
	got := SelectDue(schedules, now, 2)
	if len(got) != 2 {
		t.Fatalf("want 2 due schedules, got %d", len(got))
	}
	if got[0].QuestionID != "hard-newer" {
		t.Errorf("first pick = %s, want hard-newer", got[0].QuestionID)
	}
}

func TestSelectDue_VeryOverdueWins(t *testing.T) {
	// Enough overdue time outweighs the ease bonus.
	now := time.Now()
	schedules := []Schedule{
		{QuestionID: "weeks-overdue", EaseFactor: 2.8, NextReview: now.AddDate(0, 0, -14)},
		{QuestionID: "hard-just-due", EaseFactor: 1.3, NextReview: now},
	}
	got := SelectDue(schedules, now, 2)
	if got[0].QuestionID != "weeks-overdue" {
		t.Errorf("first pick = %s, want weeks-overdue", got[0].QuestionID)
	}
}

func TestSelectDue_Limit(t *testing.T) {
	now := time.Now()
	var schedules []Schedule
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		schedules = append(schedules, Schedule{QuestionID: id, EaseFactor: 2.5, NextReview: now.Add(-time.Minute)})
	}
	if got := SelectDue(schedules, now, 3); len(got) != 3 {
		t.Errorf("limit 3 returned %d schedules", len(got))
	}
	if got := SelectDue(schedules, now, 0); len(got) != 5 {
		t.Errorf("limit 0 should return all, got %d", len(got))
	}
}

func TestPriority_NotDueHasNoOverdueTerm(t *testing.T) {
	now := time.Now()
	s := Schedule{QuestionID: "q", EaseFactor: 2.0, NextReview: now.Add(time.Hour)}
	want := (1.0 / 2.0) * easePriorityScale
	if got := Priority(s, now); got != want {
		t.Errorf("Priority = %f, want %f", got, want)
	}
}

func TestOverdueMillis(t *testing.T) {
	now := time.Now()
	s := Schedule{QuestionID: "q", NextReview: now.Add(-2 * time.Second)}
	got := s.OverdueMillis(now)
	if got != 2000 {
		t.Errorf("OverdueMillis = %d, want 2000", got)
	}
	s.NextReview = now.Add(time.Second)
	if got := s.OverdueMillis(now); got != 0 {
		t.Errorf("future OverdueMillis = %d, want 0", got)
	}
}
