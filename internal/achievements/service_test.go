package achievements

import (
	"context"
	"testing"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/mastery"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// mockEventRepo implements store.EventRepo for achievement tests.
type mockEventRepo struct {
	achievementEvents []store.AchievementEventData
	counts            map[string]int
	total             int
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) CategoryAnswers(_ context.Context, _ string) ([]store.AnswerRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AnswersSince(_ context.Context, _ time.Time) ([]store.AnswerRecord, error) {
	return nil, nil
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
func (m *mockEventRepo) AppendAchievementEvent(_ context.Context, data store.AchievementEventData) error {
	m.achievementEvents = append(m.achievementEvents, data)
	return nil
}
func (m *mockEventRepo) AchievementCounts(_ context.Context) (map[string]int, int, error) {
	return m.counts, m.total, nil
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

func newTestService() (*Service, *mockEventRepo) {
	repo := &mockEventRepo{
		counts: map[string]int{"mastery": 3, "streak": 2},
		total:  5,
	}
	svc := NewService(repo)
	return svc, repo
}

func TestAwardMastery(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	award := svc.AwardMastery(ctx, "history", "History", mastery.LevelExpert, "sess-1")

	if award.Type != TypeMastery {
		t.Errorf("Type = %q, want %q", award.Type, TypeMastery)
	}
	if award.Tier != TierGold {
		t.Errorf("Tier = %q, want gold for expert level", award.Tier)
	}
	if award.CategoryID != "history" {
		t.Errorf("CategoryID = %q, want history", award.CategoryID)
	}
	if len(repo.achievementEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.achievementEvents))
	}
	if repo.achievementEvents[0].CategoryID == nil || *repo.achievementEvents[0].CategoryID != "history" {
		t.Error("persisted event missing category_id")
	}
	if len(svc.SessionAwards) != 1 {
		t.Errorf("SessionAwards = %d, want 1", len(svc.SessionAwards))
	}
}

func TestAwardStreak(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	award := svc.AwardStreak(ctx, 10, "sess-4")

	if award.Type != TypeStreak {
		t.Errorf("Type = %q, want %q", award.Type, TypeStreak)
	}
	if award.Tier != TierSilver {
		t.Errorf("Tier = %q, want %q", award.Tier, TierSilver)
	}
	if award.CategoryID != "" {
		t.Errorf("CategoryID = %q, want empty for streak award", award.CategoryID)
	}
	if len(repo.achievementEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.achievementEvents))
	}
	if repo.achievementEvents[0].CategoryID != nil {
		t.Error("persisted streak award should have nil category_id")
	}
}

func TestAwardSession(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	award := svc.AwardSession(ctx, 0.85, "sess-5")

	if award.Type != TypeSession {
		t.Errorf("Type = %q, want %q", award.Type, TypeSession)
	}
	if award.Tier != TierGold {
		t.Errorf("Tier = %q, want %q (85%% accuracy)", award.Tier, TierGold)
	}
	if len(repo.achievementEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.achievementEvents))
	}
}

func TestAwardBreadth(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	award := svc.AwardBreadth(ctx, 8, "sess-6")

	if award.Type != TypeBreadth {
		t.Errorf("Type = %q, want %q", award.Type, TypeBreadth)
	}
	if award.Tier != TierGold {
		t.Errorf("Tier = %q, want gold for 8 covered", award.Tier)
	}
	if len(repo.achievementEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.achievementEvents))
	}
}

func TestEarnedChannelDelivers(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.AwardStreak(ctx, 5, "sess-1")

	select {
	case got := <-svc.Earned():
		if got.Type != TypeStreak {
			t.Errorf("published Type = %q, want streak", got.Type)
		}
	default:
		t.Fatal("award was not published to the earned channel")
	}
}

func TestEarnedChannelNeverBlocks(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Nobody drains; awards past the buffer are dropped, not deadlocked.
	for i := 0; i < earnedBuffer+10; i++ {
		svc.AwardStreak(ctx, 5, "sess-1")
	}
	if len(svc.SessionAwards) != earnedBuffer+10 {
		t.Errorf("SessionAwards = %d, want %d", len(svc.SessionAwards), earnedBuffer+10)
	}
}

func TestResetSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.AwardStreak(ctx, 5, "sess-1")
	svc.AwardStreak(ctx, 10, "sess-1")
	if len(svc.SessionAwards) != 2 {
		t.Fatalf("SessionAwards = %d, want 2", len(svc.SessionAwards))
	}

	svc.ResetSession()
	if svc.SessionAwards != nil {
		t.Errorf("SessionAwards after reset = %v, want nil", svc.SessionAwards)
	}
}

func TestCounts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	counts, total, err := svc.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if counts["mastery"] != 3 {
		t.Errorf("counts[mastery] = %d, want 3", counts["mastery"])
	}
}

func TestPersist_NilEventRepo(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	// Should not panic with nil eventRepo.
	award := svc.AwardStreak(ctx, 5, "sess-1")
	if award == nil {
		t.Error("expected non-nil award even with nil eventRepo")
	}
	if len(svc.SessionAwards) != 1 {
		t.Errorf("SessionAwards = %d, want 1", len(svc.SessionAwards))
	}
}

func TestMultipleAwards_SessionAccumulation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.AwardMastery(ctx, "history", "History", mastery.LevelAdvanced, "sess-1")
	svc.AwardStreak(ctx, 5, "sess-1")
	svc.AwardSession(ctx, 0.95, "sess-1")

	if len(svc.SessionAwards) != 3 {
		t.Errorf("SessionAwards = %d, want 3", len(svc.SessionAwards))
	}

	types := map[Type]bool{}
	for _, a := range svc.SessionAwards {
		types[a.Type] = true
	}
	for _, expected := range []Type{TypeMastery, TypeStreak, TypeSession} {
		if !types[expected] {
			t.Errorf("missing achievement type %q in session awards", expected)
		}
	}
}
