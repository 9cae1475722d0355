package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/mastery"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// fakeRepo implements the store interfaces the write path touches, backed
// by in-memory slices and maps.
type fakeRepo struct {
	answers      []store.AnswerRecord
	attempts     []store.TestAttemptData
	achievements []store.AchievementEventData
	masteryRecs  map[string]store.CategoryMasteryData
	schedules    map[string]store.ScheduleData
	seq          int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		masteryRecs: map[string]store.CategoryMasteryData{},
		schedules:   map[string]store.ScheduleData{},
	}
}

func (f *fakeRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	f.seq++
	f.answers = append(f.answers, store.AnswerRecord{
		QuestionID:    data.QuestionID,
		CategoryID:    data.CategoryID,
		Mode:          data.Mode,
		Correct:       data.Correct,
		TimeSpentSecs: data.TimeSpentSecs,
		AnsweredAt:    time.Now(),
		Sequence:      f.seq,
	})
	return nil
}

func (f *fakeRepo) CategoryAnswers(_ context.Context, categoryID string) ([]store.AnswerRecord, error) {
	var out []store.AnswerRecord
	for _, a := range f.answers {
		if a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) AnswersSince(_ context.Context, _ time.Time) ([]store.AnswerRecord, error) {
	return f.answers, nil
}

func (f *fakeRepo) AnswersByMode(_ context.Context, mode string, _ time.Time) ([]store.AnswerRecord, error) {
	var out []store.AnswerRecord
	for _, a := range f.answers {
		if a.Mode == mode {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) LatestAnswerTime(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}

func (f *fakeRepo) AppendTestAttempt(_ context.Context, data store.TestAttemptData) error {
	f.attempts = append(f.attempts, data)
	return nil
}

func (f *fakeRepo) TestAttemptsSince(_ context.Context, _ time.Time) ([]store.TestAttemptRecord, error) {
	return nil, nil
}

func (f *fakeRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}

func (f *fakeRepo) AppendAchievementEvent(_ context.Context, data store.AchievementEventData) error {
	f.achievements = append(f.achievements, data)
	return nil
}

func (f *fakeRepo) AchievementCounts(_ context.Context) (map[string]int, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (f *fakeRepo) RecentLLMEvents(_ context.Context, _ int) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (f *fakeRepo) LLMUsageByModel(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (f *fakeRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}

func (f *fakeRepo) RecentAchievements(_ context.Context, _ int) ([]store.AchievementRecord, error) {
	return nil, nil
}

func (f *fakeRepo) SaveCategoryMastery(_ context.Context, data store.CategoryMasteryData) error {
	f.masteryRecs[data.CategoryID] = data
	return nil
}

func (f *fakeRepo) GetCategoryMastery(_ context.Context, categoryID string) (*store.CategoryMasteryData, error) {
	rec, ok := f.masteryRecs[categoryID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeRepo) AllCategoryMastery(_ context.Context) ([]store.CategoryMasteryData, error) {
	return nil, nil
}

func (f *fakeRepo) SaveSchedule(_ context.Context, data store.ScheduleData) error {
	f.schedules[data.QuestionID] = data
	return nil
}

func (f *fakeRepo) GetSchedule(_ context.Context, questionID string) (*store.ScheduleData, error) {
	s, ok := f.schedules[questionID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeRepo) AllSchedules(_ context.Context) ([]store.ScheduleData, error) {
	return nil, nil
}

func newTestService(repo *fakeRepo) *Service {
	masterySvc := mastery.NewService(repo, repo)
	awards := achievements.NewService(repo)
	return NewService(repo, masterySvc, repo, awards)
}

func TestRecordAnswer_UnknownCategory(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.RecordAnswer(context.Background(), Answer{
		QuestionID: "q1",
		CategoryID: "basket-weaving",
		Mode:       ModeGame,
		Correct:    true,
	})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
	if len(repo.answers) != 0 {
		t.Error("nothing should be appended for an unknown category")
	}
}

func TestRecordAnswer_GameMode(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	res, err := svc.RecordAnswer(ctx, Answer{
		SessionID:  "sess-1",
		QuestionID: "q1",
		CategoryID: "history",
		Mode:       ModeGame,
		Correct:    true,
	})
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	if len(repo.answers) != 1 {
		t.Fatalf("appended %d answers, want 1", len(repo.answers))
	}
	if repo.answers[0].Mode != ModeGame {
		t.Errorf("Mode = %q, want game", repo.answers[0].Mode)
	}

	rec, ok := repo.masteryRecs["history"]
	if !ok {
		t.Fatal("mastery record not persisted")
	}
	if rec.TotalAnswered != 1 || rec.TotalCorrect != 1 {
		t.Errorf("counters = %d/%d, want 1/1", rec.TotalCorrect, rec.TotalAnswered)
	}

	if res.Schedule == nil {
		t.Fatal("game-mode answer must update the schedule")
	}
	if res.Schedule.Repetitions != 1 || res.Schedule.Interval != 1 {
		t.Errorf("schedule reps/interval = %d/%d, want 1/1", res.Schedule.Repetitions, res.Schedule.Interval)
	}
	if _, ok := repo.schedules["q1"]; !ok {
		t.Error("schedule not persisted")
	}
}

func TestRecordAnswer_TestModeSkipsScheduling(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	res, err := svc.RecordAnswer(context.Background(), Answer{
		QuestionID: "q1",
		CategoryID: "science",
		Mode:       ModeAnytimeTest,
		Correct:    true,
	})
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if res.Schedule != nil {
		t.Error("anytime-test answers must not touch review scheduling")
	}
	if len(repo.schedules) != 0 {
		t.Error("no schedule should be persisted")
	}
}

func TestRecordAnswer_SecondCorrectAdvancesInterval(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	ans := Answer{QuestionID: "q1", CategoryID: "history", Mode: ModeGame, Correct: true}
	if _, err := svc.RecordAnswer(ctx, ans); err != nil {
		t.Fatalf("first answer: %v", err)
	}
	res, err := svc.RecordAnswer(ctx, ans)
	if err != nil {
		t.Fatalf("second answer: %v", err)
	}
	if res.Schedule.Repetitions != 2 || res.Schedule.Interval != 6 {
		t.Errorf("reps/interval = %d/%d, want 2/6", res.Schedule.Repetitions, res.Schedule.Interval)
	}
}

func TestRecordAnswer_IncorrectResetsSchedule(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	correct := Answer{QuestionID: "q1", CategoryID: "history", Mode: ModeGame, Correct: true}
	svc.RecordAnswer(ctx, correct)
	svc.RecordAnswer(ctx, correct)

	res, err := svc.RecordAnswer(ctx, Answer{QuestionID: "q1", CategoryID: "history", Mode: ModeGame, Correct: false})
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if res.Schedule.Repetitions != 0 || res.Schedule.Interval != 1 {
		t.Errorf("reps/interval = %d/%d, want 0/1 after a miss", res.Schedule.Repetitions, res.Schedule.Interval)
	}
	if res.Schedule.EaseFactor >= 2.5 {
		t.Errorf("EaseFactor = %f, want penalized below 2.5", res.Schedule.EaseFactor)
	}
}

func TestRecordAnswer_LevelUpAwardsAchievement(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	// Fresh correct answers carry weight 1.0 each; 10 pushes the weighted
	// score to 20, the novice→intermediate boundary.
	var leveled *Result
	for i := 0; i < 10; i++ {
		res, err := svc.RecordAnswer(ctx, Answer{
			SessionID:  "sess-1",
			QuestionID: "q1",
			CategoryID: "history",
			Mode:       ModeGame,
			Correct:    true,
		})
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if res.LeveledUp {
			r := res
			leveled = &r
		}
	}

	if leveled == nil {
		t.Fatal("expected a level-up within 10 correct answers")
	}
	if leveled.Mastery.Level != mastery.LevelIntermediate {
		t.Errorf("Level = %s, want intermediate", leveled.Mastery.Level)
	}
	if leveled.Award == nil {
		t.Fatal("level-up should award an achievement")
	}
	if leveled.Award.Type != achievements.TypeMastery {
		t.Errorf("Award.Type = %s, want mastery", leveled.Award.Type)
	}
	if len(repo.achievements) != 1 {
		t.Errorf("persisted %d achievement events, want 1", len(repo.achievements))
	}
}

func TestRecordTestAttempt(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	err := svc.RecordTestAttempt(context.Background(), store.TestAttemptData{
		SessionID:      "sess-1",
		TotalQuestions: 10,
		CorrectCount:   7,
		Accuracy:       0.7,
	})
	if err != nil {
		t.Fatalf("RecordTestAttempt: %v", err)
	}
	if len(repo.attempts) != 1 {
		t.Fatalf("appended %d attempts, want 1", len(repo.attempts))
	}
}
