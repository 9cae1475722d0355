package mastery

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// Service recomputes and persists category mastery records. It is the only
// writer of CategoryMastery rows; everything it stores can be rebuilt from
// the answer-event log at any time.
type Service struct {
	events  store.EventRepo
	records store.MasteryRepo
}

// NewService creates a mastery service over the given repositories.
func NewService(events store.EventRepo, records store.MasteryRepo) *Service {
	return &Service{events: events, records: records}
}

// RecalculateCategory recomputes mastery for one category from its full
// answer history and persists the refreshed record. When the event history
// cannot be read it falls back to the previously stored aggregate counters,
// flags the result as estimated, and warns on stderr.
func (s *Service) RecalculateCategory(ctx context.Context, categoryID string, now time.Time) (Result, error) {
	answers, err := s.events.CategoryAnswers(ctx, categoryID)
	if err != nil {
		return s.estimateFromCounters(ctx, categoryID, err)
	}

	history := make([]Answer, len(answers))
	totalCorrect := 0
	var lastAnswered *time.Time
	for i, a := range answers {
		history[i] = Answer{Correct: a.Correct, AnsweredAt: a.AnsweredAt}
		if a.Correct {
			totalCorrect++
		}
		if lastAnswered == nil || a.AnsweredAt.After(*lastAnswered) {
			t := a.AnsweredAt
			lastAnswered = &t
		}
	}

	result := Recalculate(history, now)

	rec := store.CategoryMasteryData{
		CategoryID:           categoryID,
		TotalCorrect:         totalCorrect,
		TotalAnswered:        len(answers),
		WeightedCorrectScore: result.WeightedCorrectScore,
		MasteryLevel:         string(result.Level),
		LastAnswered:         lastAnswered,
	}
	if err := s.records.SaveCategoryMastery(ctx, rec); err != nil {
		return result, fmt.Errorf("save category mastery: %w", err)
	}
	return result, nil
}

// estimateFromCounters is the degraded path: approximate the score from the
// stored aggregate counters when per-event history is unavailable.
func (s *Service) estimateFromCounters(ctx context.Context, categoryID string, cause error) (Result, error) {
	fmt.Fprintf(os.Stderr, "warning: answer history unavailable for %s, estimating mastery from counters: %v\n", categoryID, cause)

	rec, err := s.records.GetCategoryMastery(ctx, categoryID)
	if err != nil || rec == nil {
		// No counters either: new-category steady state.
		return Result{Level: LevelNovice, Estimated: true}, nil
	}
	return Estimate(rec.TotalCorrect, rec.TotalAnswered), nil
}

// CategoryMastery returns the stored record for a category, or nil when the
// category has never been answered.
func (s *Service) CategoryMastery(ctx context.Context, categoryID string) (*store.CategoryMasteryData, error) {
	rec, err := s.records.GetCategoryMastery(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category mastery: %w", err)
	}
	return rec, nil
}

// AllCategoryMastery returns every stored mastery record.
func (s *Service) AllCategoryMastery(ctx context.Context) ([]store.CategoryMasteryData, error) {
	recs, err := s.records.AllCategoryMastery(ctx)
	if err != nil {
		return nil, fmt.Errorf("list category mastery: %w", err)
	}
	return recs, nil
}
