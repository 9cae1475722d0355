package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

type stubPlannerEvents struct {
	store.EventRepo
	answers []store.AnswerRecord
}

func (s *stubPlannerEvents) AnswersSince(_ context.Context, _ time.Time) ([]store.AnswerRecord, error) {
	return s.answers, nil
}

type stubPlannerSchedules struct {
	store.ScheduleRepo
	schedules []store.ScheduleData
}

func (s *stubPlannerSchedules) AllSchedules(_ context.Context) ([]store.ScheduleData, error) {
	return s.schedules, nil
}

type stubPlannerQuestions struct {
	store.QuestionRepo
	byCategory map[string][]store.QuestionData
}

func (s *stubPlannerQuestions) QuestionsByCategory(_ context.Context, categoryID string) ([]store.QuestionData, error) {
	return s.byCategory[categoryID], nil
}

// bankWithPerCategory builds a question bank with n questions per catalog
// category.
func bankWithPerCategory(n int) *stubPlannerQuestions {
	byCat := make(map[string][]store.QuestionData)
	for _, c := range catalog.AllCategories() {
		for i := 0; i < n; i++ {
			byCat[c.ID] = append(byCat[c.ID], store.QuestionData{
				QuestionID: fmt.Sprintf("%s-q%d", c.ID, i),
				CategoryID: c.ID,
				Prompt:     fmt.Sprintf("prompt %s %d", c.ID, i),
				Answer:     "a",
			})
		}
	}
	return &stubPlannerQuestions{byCategory: byCat}
}

func reasonCounts(p *Plan) map[PlanReason]int {
	counts := make(map[PlanReason]int)
	for _, s := range p.Slots {
		counts[s.Reason]++
	}
	return counts
}

func TestBuildPlan_GameModeMix(t *testing.T) {
	now := time.Now()
	schedules := &stubPlannerSchedules{schedules: []store.ScheduleData{
		{QuestionID: "history-q0", CategoryID: "history", EaseFactor: 1.5, NextReview: now.Add(-time.Hour)},
		{QuestionID: "science-q0", CategoryID: "science", EaseFactor: 2.5, NextReview: now.Add(-time.Minute)},
		{QuestionID: "words-q1", CategoryID: "words", EaseFactor: 2.0, NextReview: now.Add(-2 * time.Hour)},
		{QuestionID: "arts-q0", CategoryID: "arts", EaseFactor: 2.5, NextReview: now.Add(24 * time.Hour)},
	}}

	p := NewPlanner(&stubPlannerEvents{}, schedules, bankWithPerCategory(2))
	plan, err := p.BuildPlan(context.Background(), ModeGame, 10, now)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	if len(plan.Slots) != 10 {
		t.Fatalf("plan has %d slots, want 10", len(plan.Slots))
	}

	counts := reasonCounts(plan)
	if counts[ReasonReview] != 3 {
		t.Errorf("review slots = %d, want 3 (three due, one future)", counts[ReasonReview])
	}
	if counts[ReasonWeak] != 3 {
		t.Errorf("weak slots = %d, want 3", counts[ReasonWeak])
	}
	if counts[ReasonBreadth] != 4 {
		t.Errorf("breadth slots = %d, want 4", counts[ReasonBreadth])
	}

	seen := make(map[string]bool)
	for _, s := range plan.Slots {
		if seen[s.Question.QuestionID] {
			t.Errorf("question %s appears twice", s.Question.QuestionID)
		}
		seen[s.Question.QuestionID] = true
	}
}

func TestBuildPlan_ReviewOrderedByPriority(t *testing.T) {
	now := time.Now()
	// Ease at the floor outranks a slightly more overdue easy question.
	schedules := &stubPlannerSchedules{schedules: []store.ScheduleData{
		{QuestionID: "history-q0", CategoryID: "history", EaseFactor: 2.8, NextReview: now.Add(-10 * time.Minute)},
		{QuestionID: "science-q0", CategoryID: "science", EaseFactor: 1.3, NextReview: now.Add(-5 * time.Minute)},
	}}

	p := NewPlanner(&stubPlannerEvents{}, schedules, bankWithPerCategory(1))
	plan, err := p.BuildPlan(context.Background(), ModeGame, 5, now)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if len(plan.Slots) < 2 {
		t.Fatalf("plan has %d slots, want at least 2", len(plan.Slots))
	}
	if plan.Slots[0].Question.QuestionID != "science-q0" {
		t.Errorf("first review = %s, want the low-ease science-q0", plan.Slots[0].Question.QuestionID)
	}
}

func TestBuildPlan_ReviewSkipsMissingQuestion(t *testing.T) {
	now := time.Now()
	schedules := &stubPlannerSchedules{schedules: []store.ScheduleData{
		{QuestionID: "gone-q9", CategoryID: "history", EaseFactor: 2.5, NextReview: now.Add(-time.Hour)},
	}}

	p := NewPlanner(&stubPlannerEvents{}, schedules, bankWithPerCategory(1))
	plan, err := p.BuildPlan(context.Background(), ModeGame, 5, now)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if counts := reasonCounts(plan); counts[ReasonReview] != 0 {
		t.Errorf("review slots = %d, want 0 when the scheduled question is gone", counts[ReasonReview])
	}
}

func TestBuildPlan_RapidFireSpreadsCategories(t *testing.T) {
	p := NewPlanner(&stubPlannerEvents{}, &stubPlannerSchedules{}, bankWithPerCategory(3))
	plan, err := p.BuildPlan(context.Background(), ModeRapidFire, 10, time.Now())
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if len(plan.Slots) != 10 {
		t.Fatalf("plan has %d slots, want 10", len(plan.Slots))
	}

	perCategory := make(map[string]int)
	for _, s := range plan.Slots {
		if s.Reason != ReasonBreadth {
			t.Errorf("rapid fire slot has reason %s, want %s", s.Reason, ReasonBreadth)
		}
		perCategory[s.Question.CategoryID]++
	}
	for id, n := range perCategory {
		if n > 1 {
			t.Errorf("category %s appears %d times, want at most 1 with %d categories available", id, n, catalog.Count())
		}
	}
}

func TestBuildPlan_BankSmallerThanSize(t *testing.T) {
	bank := &stubPlannerQuestions{byCategory: map[string][]store.QuestionData{
		"history": {
			{QuestionID: "h1", CategoryID: "history", Answer: "a"},
			{QuestionID: "h2", CategoryID: "history", Answer: "a"},
		},
	}}
	p := NewPlanner(&stubPlannerEvents{}, &stubPlannerSchedules{}, bank)
	plan, err := p.BuildPlan(context.Background(), ModeAnytimeTest, 20, time.Now())
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if len(plan.Slots) != 2 {
		t.Errorf("plan has %d slots, want 2 (bank exhausted)", len(plan.Slots))
	}
}

func TestBuildPlan_DefaultSize(t *testing.T) {
	p := NewPlanner(&stubPlannerEvents{}, &stubPlannerSchedules{}, bankWithPerCategory(3))
	plan, err := p.BuildPlan(context.Background(), ModeGame, 0, time.Now())
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if want := ModeGame.DefaultSize(); len(plan.Slots) != want {
		t.Errorf("plan has %d slots, want default %d", len(plan.Slots), want)
	}
}
