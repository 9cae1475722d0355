package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestAnswerEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		{SessionID: "s1", QuestionID: "q1", CategoryID: "history", Mode: "game", Correct: true, TimeSpentSecs: 4.5},
		{SessionID: "s1", QuestionID: "q2", CategoryID: "history", Mode: "game", Correct: false, TimeSpentSecs: 12},
		{SessionID: "s1", QuestionID: "q3", CategoryID: "science", Mode: "anytime_test", Correct: true, TimeSpentSecs: 8},
	}
	for _, e := range events {
		if err := repo.AppendAnswerEvent(ctx, e); err != nil {
			t.Fatalf("append answer event: %v", err)
		}
	}

	history, err := repo.CategoryAnswers(ctx, "history")
	if err != nil {
		t.Fatalf("category answers: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history answers = %d, want 2", len(history))
	}
	if history[0].QuestionID != "q1" {
		t.Errorf("first record = %s, want oldest first", history[0].QuestionID)
	}
	if history[0].Sequence >= history[1].Sequence {
		t.Errorf("sequences not increasing: %d then %d", history[0].Sequence, history[1].Sequence)
	}

	byMode, err := repo.AnswersByMode(ctx, "anytime_test", time.Time{})
	if err != nil {
		t.Fatalf("answers by mode: %v", err)
	}
	if len(byMode) != 1 || byMode[0].QuestionID != "q3" {
		t.Errorf("anytime_test answers = %v, want just q3", byMode)
	}
}

func TestLatestAnswerTime_EmptyCategory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	got, err := s.EventRepo().LatestAnswerTime(ctx, "geography")
	if err != nil {
		t.Fatalf("latest answer time: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero time for unanswered category, got %v", got)
	}
}

func TestTestAttemptRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendTestAttempt(ctx, TestAttemptData{
		SessionID:      "t1",
		TotalQuestions: 20,
		CorrectCount:   15,
		Accuracy:       0.75,
		DurationSecs:   600,
	})
	if err != nil {
		t.Fatalf("append test attempt: %v", err)
	}

	attempts, err := repo.TestAttemptsSince(ctx, time.Time{})
	if err != nil {
		t.Fatalf("test attempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("attempts = %d, want 1", len(attempts))
	}
	if attempts[0].Accuracy != 0.75 {
		t.Errorf("accuracy = %f, want 0.75", attempts[0].Accuracy)
	}
}

func TestCategoryMasteryUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	if err := repo.SaveCategoryMastery(ctx, CategoryMasteryData{
		CategoryID:           "history",
		TotalCorrect:         5,
		TotalAnswered:        8,
		WeightedCorrectScore: 9.7,
		MasteryLevel:         "novice",
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Second save for the same category must replace, not duplicate.
	if err := repo.SaveCategoryMastery(ctx, CategoryMasteryData{
		CategoryID:           "history",
		TotalCorrect:         25,
		TotalAnswered:        30,
		WeightedCorrectScore: 45.2,
		MasteryLevel:         "advanced",
	}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	all, err := repo.AllCategoryMastery(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("records = %d, want 1 after upsert", len(all))
	}

	rec, err := repo.GetCategoryMastery(ctx, "history")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.MasteryLevel != "advanced" || rec.TotalAnswered != 30 {
		t.Errorf("record = %+v, want updated values", rec)
	}
}

func TestScheduleUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScheduleRepo()
	ctx := context.Background()

	missing, err := repo.GetSchedule(ctx, "q404")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for untracked question")
	}

	next := time.Now().UTC().Truncate(time.Second).AddDate(0, 0, 6)
	if err := repo.SaveSchedule(ctx, ScheduleData{
		QuestionID:   "q1",
		CategoryID:   "science",
		EaseFactor:   2.3,
		IntervalDays: 6,
		Repetitions:  2,
		NextReview:   next,
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetSchedule(ctx, "q1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EaseFactor != 2.3 || got.IntervalDays != 6 {
		t.Errorf("schedule = %+v, want saved values", got)
	}
	if got.LastReviewed != nil {
		t.Errorf("LastReviewed = %v, want nil before first review", got.LastReviewed)
	}
}

func TestQuestionRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	questions := []QuestionData{
		{QuestionID: "q1", CategoryID: "history", Prompt: "This year saw the fall of the Berlin Wall", Answer: "1989", Difficulty: "easy"},
		{QuestionID: "q2", CategoryID: "history", Prompt: "This general crossed the Rubicon in 49 BC", Answer: "Julius Caesar", Difficulty: "medium"},
		{QuestionID: "q3", CategoryID: "science", Prompt: "This element has atomic number 79", Answer: "Gold", Difficulty: "medium"},
	}
	for _, q := range questions {
		if err := repo.SaveQuestion(ctx, q); err != nil {
			t.Fatalf("save question: %v", err)
		}
	}

	byCat, err := repo.QuestionsByCategory(ctx, "history")
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(byCat) != 2 {
		t.Errorf("history questions = %d, want 2", len(byCat))
	}

	counts, err := repo.CountByCategory(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["history"] != 2 || counts["science"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestAchievementCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	cat := "history"
	awards := []AchievementEventData{
		{AchievementType: "streak", Tier: "bronze", SessionID: "s1", Reason: "5 in a row"},
		{AchievementType: "streak", Tier: "silver", SessionID: "s1", Reason: "10 in a row"},
		{AchievementType: "mastery", Tier: "gold", CategoryID: &cat, SessionID: "s1", Reason: "Mastered History"},
	}
	for _, a := range awards {
		if err := repo.AppendAchievementEvent(ctx, a); err != nil {
			t.Fatalf("append achievement: %v", err)
		}
	}

	byType, total, err := repo.AchievementCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 3 || byType["streak"] != 2 || byType["mastery"] != 1 {
		t.Errorf("counts = %v total %d", byType, total)
	}
}

func TestResetProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.EventRepo().AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", QuestionID: "q1", CategoryID: "history", Mode: "game", Correct: true,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.ScheduleRepo().SaveSchedule(ctx, ScheduleData{
		QuestionID: "q1", CategoryID: "history", EaseFactor: 2.5, IntervalDays: 1, NextReview: time.Now(),
	}); err != nil {
		t.Fatalf("save schedule: %v", err)
	}
	if err := s.QuestionRepo().SaveQuestion(ctx, QuestionData{
		QuestionID: "q1", CategoryID: "history", Prompt: "p", Answer: "a",
	}); err != nil {
		t.Fatalf("save question: %v", err)
	}

	if err := s.ResetProgress(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	answers, err := s.EventRepo().CategoryAnswers(ctx, "history")
	if err != nil {
		t.Fatalf("answers after reset: %v", err)
	}
	if len(answers) != 0 {
		t.Errorf("answers survived reset: %d", len(answers))
	}

	schedules, err := s.ScheduleRepo().AllSchedules(ctx)
	if err != nil {
		t.Fatalf("schedules after reset: %v", err)
	}
	if len(schedules) != 0 {
		t.Errorf("schedules survived reset: %d", len(schedules))
	}

	// Questions survive; the pre-reset state is captured in a snapshot.
	q, err := s.QuestionRepo().GetQuestion(ctx, "q1")
	if err != nil || q == nil {
		t.Errorf("question should survive reset, got %v err %v", q, err)
	}
	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil || snap == nil {
		t.Fatalf("expected pre-reset snapshot, got %v err %v", snap, err)
	}
	if len(snap.Data.Schedules) != 1 {
		t.Errorf("snapshot schedules = %d, want 1", len(snap.Data.Schedules))
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "question-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "study-notes", InputTokens: 80, OutputTokens: 200, LatencyMs: 300, Success: false, ErrorMessage: "timeout"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	recent, err := repo.RecentLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent events, got %d", len(recent))
	}
	if recent[0].Purpose != "study-notes" {
		t.Errorf("expected newest first, got purpose %q", recent[0].Purpose)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose groups, got %d", len(byPurpose))
	}
	// Sorted by key: question-gen before study-notes.
	qg := byPurpose[0]
	if qg.Purpose != "question-gen" || qg.Calls != 2 || qg.InputTokens != 220 || qg.OutputTokens != 110 {
		t.Errorf("question-gen stats = %+v", qg)
	}
	if qg.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", qg.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "claude-haiku" || byModel[0].Calls != 2 {
		t.Errorf("model stats = %+v", byModel)
	}
}
