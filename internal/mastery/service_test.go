package mastery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answers    []store.AnswerRecord
	answersErr error
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) CategoryAnswers(_ context.Context, _ string) ([]store.AnswerRecord, error) {
	return m.answers, m.answersErr
}
func (m *mockEventRepo) AnswersSince(_ context.Context, _ time.Time) ([]store.AnswerRecord, error) {
	return m.answers, m.answersErr
}
func (m *mockEventRepo) AnswersByMode(_ context.Context, _ string, _ time.Time) ([]store.AnswerRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestAnswerTime(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}
func (m *mockEventRepo) AppendTestAttempt(_ context.Context, _ store.TestAttemptData) error {
	return nil
}
func (m *mockEventRepo) TestAttemptsSince(_ context.Context, _ time.Time) ([]store.TestAttemptRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAchievementEvent(_ context.Context, _ store.AchievementEventData) error {
	return nil
}
func (m *mockEventRepo) AchievementCounts(_ context.Context) (map[string]int, int, error) {
	return nil, 0, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) RecentLLMEvents(_ context.Context, _ int) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentAchievements(_ context.Context, _ int) ([]store.AchievementRecord, error) {
	return nil, nil
}

// mockMasteryRepo implements store.MasteryRepo for testing.
type mockMasteryRepo struct {
	saved   []store.CategoryMasteryData
	current *store.CategoryMasteryData
}

func (m *mockMasteryRepo) SaveCategoryMastery(_ context.Context, data store.CategoryMasteryData) error {
	m.saved = append(m.saved, data)
	return nil
}
func (m *mockMasteryRepo) GetCategoryMastery(_ context.Context, _ string) (*store.CategoryMasteryData, error) {
	return m.current, nil
}
func (m *mockMasteryRepo) AllCategoryMastery(_ context.Context) ([]store.CategoryMasteryData, error) {
	return m.saved, nil
}

func TestRecalculateCategory_PersistsRecord(t *testing.T) {
	now := time.Now()
	events := &mockEventRepo{
		answers: []store.AnswerRecord{
			{QuestionID: "q1", CategoryID: "history", Correct: true, AnsweredAt: now.Add(-time.Hour)},
			{QuestionID: "q2", CategoryID: "history", Correct: false, AnsweredAt: now.Add(-30 * time.Minute)},
			{QuestionID: "q3", CategoryID: "history", Correct: true, AnsweredAt: now.Add(-time.Minute)},
		},
	}
	records := &mockMasteryRepo{}
	svc := NewService(events, records)

	result, err := svc.RecalculateCategory(context.Background(), "history", now)
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if result.Estimated {
		t.Error("full-history path flagged estimated")
	}

	if len(records.saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(records.saved))
	}
	rec := records.saved[0]
	if rec.TotalCorrect != 2 || rec.TotalAnswered != 3 {
		t.Errorf("counters = %d/%d, want 2/3", rec.TotalCorrect, rec.TotalAnswered)
	}
	if rec.LastAnswered == nil || !rec.LastAnswered.Equal(now.Add(-time.Minute)) {
		t.Errorf("LastAnswered = %v, want most recent answer time", rec.LastAnswered)
	}
	if rec.WeightedCorrectScore != result.WeightedCorrectScore {
		t.Errorf("persisted score %f != returned %f", rec.WeightedCorrectScore, result.WeightedCorrectScore)
	}
}

func TestRecalculateCategory_FallbackToCounters(t *testing.T) {
	events := &mockEventRepo{answersErr: errors.New("history table corrupted")}
	records := &mockMasteryRepo{
		current: &store.CategoryMasteryData{
			CategoryID:    "history",
			TotalCorrect:  18,
			TotalAnswered: 20,
		},
	}
	svc := NewService(events, records)

	result, err := svc.RecalculateCategory(context.Background(), "history", time.Now())
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if !result.Estimated {
		t.Error("fallback result must be flagged estimated")
	}
	if result.WeightedCorrectScore != 90 {
		t.Errorf("estimated score = %f, want 90", result.WeightedCorrectScore)
	}
	if len(records.saved) != 0 {
		t.Error("estimated result must not overwrite the stored record")
	}
}

func TestRecalculateCategory_FallbackWithNoCounters(t *testing.T) {
	events := &mockEventRepo{answersErr: errors.New("unavailable")}
	records := &mockMasteryRepo{}
	svc := NewService(events, records)

	result, err := svc.RecalculateCategory(context.Background(), "new-cat", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Estimated || result.Level != LevelNovice || result.WeightedCorrectScore != 0 {
		t.Errorf("result = %+v, want estimated zero novice", result)
	}
}
