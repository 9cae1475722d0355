package readiness

import (
	"context"
	"fmt"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/spacedrep"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// Service assembles a readiness snapshot from the event log and
// spaced-repetition state.
type Service struct {
	events    store.EventRepo
	schedules store.ScheduleRepo
	questions store.QuestionRepo
}

// NewService creates a readiness service over the given repositories.
func NewService(events store.EventRepo, schedules store.ScheduleRepo, questions store.QuestionRepo) *Service {
	return &Service{events: events, schedules: schedules, questions: questions}
}

// Compute reads current state and composes the readiness score as of now.
func (s *Service) Compute(ctx context.Context, now time.Time) (Score, error) {
	attempts, err := s.events.TestAttemptsSince(ctx, time.Time{})
	if err != nil {
		return Score{}, fmt.Errorf("loading test attempts: %w", err)
	}

	gameRecords, err := s.events.AnswersByMode(ctx, "game", time.Time{})
	if err != nil {
		return Score{}, fmt.Errorf("loading game answers: %w", err)
	}

	recent, err := s.events.AnswersSince(ctx, now.AddDate(0, 0, -RecentWindowDays))
	if err != nil {
		return Score{}, fmt.Errorf("loading recent answers: %w", err)
	}

	schedules, err := s.schedules.AllSchedules(ctx)
	if err != nil {
		return Score{}, fmt.Errorf("loading schedules: %w", err)
	}

	questionCounts, err := s.questions.CountByCategory(ctx)
	if err != nil {
		return Score{}, fmt.Errorf("counting questions: %w", err)
	}

	in := Input{
		CategoryName: catalog.CategoryName,
	}

	for _, a := range attempts {
		in.TestAttempts = append(in.TestAttempts, TestAttempt{
			Accuracy:    a.Accuracy,
			AttemptedAt: a.AttemptedAt,
		})
	}
	for _, r := range gameRecords {
		in.GameAnswers = append(in.GameAnswers, Answer{
			Correct:    r.Correct,
			AnsweredAt: r.AnsweredAt,
		})
	}
	for _, d := range schedules {
		in.Schedules = append(in.Schedules, spacedrep.Schedule{
			QuestionID:   d.QuestionID,
			EaseFactor:   d.EaseFactor,
			Interval:     d.IntervalDays,
			Repetitions:  d.Repetitions,
			NextReview:   d.NextReview,
			LastReviewed: d.LastReviewed,
		})
	}

	byCategory := make(map[string]*CategoryStats)
	for _, c := range catalog.AllCategories() {
		in.CategoryIDs = append(in.CategoryIDs, c.ID)
		byCategory[c.ID] = &CategoryStats{
			CategoryID:     c.ID,
			TotalQuestions: questionCounts[c.ID],
		}
	}
	for _, r := range recent {
		cs, ok := byCategory[r.CategoryID]
		if !ok {
			// Answers for retired categories do not count toward breadth.
			continue
		}
		cs.RecentAnswered++
		if r.Correct {
			cs.RecentCorrect++
		}
	}
	for _, id := range in.CategoryIDs {
		in.Stats = append(in.Stats, *byCategory[id])
	}

	return Compose(in, now), nil
}
