package session

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/readiness"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/spacedrep"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// Planner builds a session plan from the question bank and the player's
// current state.
type Planner struct {
	events    store.EventRepo
	schedules store.ScheduleRepo
	questions store.QuestionRepo
}

// NewPlanner creates a Planner over the given repositories.
func NewPlanner(events store.EventRepo, schedules store.ScheduleRepo, questions store.QuestionRepo) *Planner {
	return &Planner{events: events, schedules: schedules, questions: questions}
}

// BuildPlan assembles the question list for a session. Game mode mixes due
// reviews, weak-category remediation, and breadth filling; the timed modes
// spread evenly across categories with no review bias. A plan shorter than
// size means the question bank ran dry, not an error.
func (p *Planner) BuildPlan(ctx context.Context, mode Mode, size int, now time.Time) (*Plan, error) {
	if size <= 0 {
		size = mode.DefaultSize()
	}

	pool, err := p.loadQuestionPool(ctx)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Mode: mode}
	used := make(map[string]bool)

	if mode == ModeGame {
		if err := p.addReviewSlots(ctx, plan, pool, used, int(float64(size)*reviewShare), now); err != nil {
			return nil, err
		}
		if err := p.addWeakSlots(ctx, plan, pool, used, size, now); err != nil {
			return nil, err
		}
	}

	p.addBreadthSlots(plan, pool, used, size)
	return plan, nil
}

// questionPool is the bank grouped by category, shuffled within each.
type questionPool map[string][]store.QuestionData

func (p *Planner) loadQuestionPool(ctx context.Context) (questionPool, error) {
	pool := make(questionPool)
	for _, c := range catalog.AllCategories() {
		qs, err := p.questions.QuestionsByCategory(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("loading questions for %s: %w", c.ID, err)
		}
		rand.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
		pool[c.ID] = qs
	}
	return pool, nil
}

// addReviewSlots fills up to quota slots with due reviews, most urgent first.
func (p *Planner) addReviewSlots(ctx context.Context, plan *Plan, pool questionPool, used map[string]bool, quota int, now time.Time) error {
	if quota <= 0 {
		return nil
	}

	stored, err := p.schedules.AllSchedules(ctx)
	if err != nil {
		return fmt.Errorf("loading schedules: %w", err)
	}

	schedules := make([]spacedrep.Schedule, 0, len(stored))
	for _, d := range stored {
		schedules = append(schedules, spacedrep.Schedule{
			QuestionID:   d.QuestionID,
			EaseFactor:   d.EaseFactor,
			Interval:     d.IntervalDays,
			Repetitions:  d.Repetitions,
			NextReview:   d.NextReview,
			LastReviewed: d.LastReviewed,
		})
	}

	for _, due := range spacedrep.SelectDue(schedules, now, quota) {
		q := findQuestion(pool, due.QuestionID)
		if q == nil {
			// Schedule outlived its question; skip it.
			continue
		}
		plan.Slots = append(plan.Slots, PlanSlot{Question: *q, Reason: ReasonReview})
		used[q.QuestionID] = true
	}
	return nil
}

// addWeakSlots fills weak-category remediation slots, worst categories first.
func (p *Planner) addWeakSlots(ctx context.Context, plan *Plan, pool questionPool, used map[string]bool, size int, now time.Time) error {
	quota := int(float64(size) * weakShare)
	if remaining := size - len(plan.Slots); quota > remaining {
		quota = remaining
	}
	if quota <= 0 {
		return nil
	}

	recent, err := p.events.AnswersSince(ctx, now.AddDate(0, 0, -readiness.RecentWindowDays))
	if err != nil {
		return fmt.Errorf("loading recent answers: %w", err)
	}

	stats := make(map[string]*readiness.CategoryStats)
	var ids []string
	for _, c := range catalog.AllCategories() {
		ids = append(ids, c.ID)
		stats[c.ID] = &readiness.CategoryStats{CategoryID: c.ID}
	}
	for _, r := range recent {
		if s, ok := stats[r.CategoryID]; ok {
			s.RecentAnswered++
			if r.Correct {
				s.RecentCorrect++
			}
		}
	}
	flat := make([]readiness.CategoryStats, 0, len(ids))
	for _, id := range ids {
		flat = append(flat, *stats[id])
	}

	cov := readiness.EvaluateCoverage(flat, ids, catalog.CategoryName)
	weakIDs := make([]string, 0, len(cov.Weak))
	for _, w := range cov.Weak {
		weakIDs = append(weakIDs, w.CategoryID)
	}

	addRoundRobin(plan, pool, used, weakIDs, quota, ReasonWeak)
	return nil
}

// addBreadthSlots tops the plan up to size, favoring categories the plan
// has not touched yet so sessions keep covering new ground.
func (p *Planner) addBreadthSlots(plan *Plan, pool questionPool, used map[string]bool, size int) {
	remaining := size - len(plan.Slots)
	if remaining <= 0 {
		return
	}

	inPlan := make(map[string]int)
	for _, s := range plan.Slots {
		inPlan[s.Question.CategoryID]++
	}
	ids := make([]string, 0, len(pool))
	for _, c := range catalog.AllCategories() {
		ids = append(ids, c.ID)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return inPlan[ids[i]] < inPlan[ids[j]]
	})

	addRoundRobin(plan, pool, used, ids, remaining, ReasonBreadth)
}

// addRoundRobin pulls one unused question per category in order, cycling
// until quota is met or every pool is exhausted.
func addRoundRobin(plan *Plan, pool questionPool, used map[string]bool, categoryIDs []string, quota int, reason PlanReason) {
	added := 0
	for added < quota {
		progressed := false
		for _, id := range categoryIDs {
			if added >= quota {
				break
			}
			q := takeUnused(pool[id], used)
			if q == nil {
				continue
			}
			plan.Slots = append(plan.Slots, PlanSlot{Question: *q, Reason: reason})
			used[q.QuestionID] = true
			added++
			progressed = true
		}
		if !progressed {
			return
		}
	}
}

func takeUnused(qs []store.QuestionData, used map[string]bool) *store.QuestionData {
	for i := range qs {
		if !used[qs[i].QuestionID] {
			return &qs[i]
		}
	}
	return nil
}

func findQuestion(pool questionPool, questionID string) *store.QuestionData {
	for _, qs := range pool {
		for i := range qs {
			if qs[i].QuestionID == questionID {
				return &qs[i]
			}
		}
	}
	return nil
}
