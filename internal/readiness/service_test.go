package readiness

import (
	"context"
	"testing"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// Stubs embed the repo interfaces so only the methods the service calls
// need real bodies.

type stubEventRepo struct {
	store.EventRepo
	attempts []store.TestAttemptRecord
	answers  []store.AnswerRecord
}

func (s *stubEventRepo) TestAttemptsSince(ctx context.Context, since time.Time) ([]store.TestAttemptRecord, error) {
	return s.attempts, nil
}

func (s *stubEventRepo) AnswersByMode(ctx context.Context, mode string, since time.Time) ([]store.AnswerRecord, error) {
	var out []store.AnswerRecord
	for _, a := range s.answers {
		if a.Mode == mode {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubEventRepo) AnswersSince(ctx context.Context, since time.Time) ([]store.AnswerRecord, error) {
	var out []store.AnswerRecord
	for _, a := range s.answers {
		if !a.AnsweredAt.Before(since) {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubScheduleRepo struct {
	store.ScheduleRepo
	schedules []store.ScheduleData
}

func (s *stubScheduleRepo) AllSchedules(ctx context.Context) ([]store.ScheduleData, error) {
	return s.schedules, nil
}

type stubQuestionRepo struct {
	store.QuestionRepo
	counts map[string]int
}

func (s *stubQuestionRepo) CountByCategory(ctx context.Context) (map[string]int, error) {
	return s.counts, nil
}

func TestServiceCompute(t *testing.T) {
	now := time.Now()
	events := &stubEventRepo{
		attempts: []store.TestAttemptRecord{
			{Accuracy: 0.80, AttemptedAt: now.AddDate(0, 0, -2)},
		},
	}
	for i := 0; i < 10; i++ {
		events.answers = append(events.answers, store.AnswerRecord{
			QuestionID: "q1",
			CategoryID: "history",
			Mode:       "game",
			Correct:    i < 8,
			AnsweredAt: now.AddDate(0, 0, -1),
		})
	}
	schedules := &stubScheduleRepo{
		schedules: []store.ScheduleData{
			{QuestionID: "q1", CategoryID: "history", EaseFactor: 2.5, IntervalDays: 6},
		},
	}
	questions := &stubQuestionRepo{counts: map[string]int{"history": 12}}

	svc := NewService(events, schedules, questions)
	score, err := svc.Compute(context.Background(), now)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if score.Breadth.TotalCategories != catalog.Count() {
		t.Errorf("TotalCategories = %d, want catalog size %d", score.Breadth.TotalCategories, catalog.Count())
	}
	if score.Breadth.CoveredCategories != 1 {
		t.Errorf("CoveredCategories = %d, want 1 (history at 80%%)", score.Breadth.CoveredCategories)
	}
	if score.OverallScore <= 0 || score.OverallScore > NarrowPracticeCap {
		t.Errorf("OverallScore = %f, want positive and capped", score.OverallScore)
	}

	var hist *CategoryCoverage
	for i := range score.Coverage {
		if score.Coverage[i].CategoryID == "history" {
			hist = &score.Coverage[i]
		}
	}
	if hist == nil {
		t.Fatal("history missing from coverage")
	}
	if !hist.Covered || !hist.Stocked {
		t.Errorf("history Covered=%v Stocked=%v, want both true", hist.Covered, hist.Stocked)
	}
	if hist.Name != "History" {
		t.Errorf("Name = %q, want display name from catalog", hist.Name)
	}
}

func TestServiceCompute_UnknownCategoryIgnored(t *testing.T) {
	now := time.Now()
	events := &stubEventRepo{
		answers: []store.AnswerRecord{
			{QuestionID: "qz", CategoryID: "retired-topic", Mode: "game", Correct: true, AnsweredAt: now},
		},
	}
	svc := NewService(events, &stubScheduleRepo{}, &stubQuestionRepo{})
	score, err := svc.Compute(context.Background(), now)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if score.Breadth.CoveredCategories != 0 {
		t.Errorf("CoveredCategories = %d, want 0 for out-of-catalog answers", score.Breadth.CoveredCategories)
	}
	for _, c := range score.Coverage {
		if c.CategoryID == "retired-topic" {
			t.Error("retired category must not appear in coverage")
		}
	}
}
