package achievements

import (
	"context"
	"fmt"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/mastery"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// earnedBuffer bounds the subscriber channel; slow or absent subscribers
// never block an award.
const earnedBuffer = 16

// Service computes awards, persists them to the event log, and publishes
// them to a subscriber channel for the presentation layer. No shared
// globals are involved in the handoff.
type Service struct {
	eventRepo store.EventRepo
	earned    chan Award

	// SessionAwards accumulates awards earned during the current session.
	SessionAwards []Award
}

// NewService creates an achievement service.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{
		eventRepo: eventRepo,
		earned:    make(chan Award, earnedBuffer),
	}
}

// Earned returns the channel on which awards are published. One subscriber
// is expected; when nobody is draining, awards are dropped rather than
// blocking the answer path.
func (s *Service) Earned() <-chan Award {
	return s.earned
}

// AwardMastery awards a mastery achievement when a category reaches a new level.
func (s *Service) AwardMastery(ctx context.Context, categoryID, categoryName string, level mastery.Level, sessionID string) *Award {
	award := &Award{
		Type:         TypeMastery,
		Tier:         MasteryTier(level),
		CategoryID:   categoryID,
		CategoryName: categoryName,
		SessionID:    sessionID,
		Reason:       fmt.Sprintf("%s reached %s", categoryName, level.DisplayName()),
		EarnedAt:     time.Now(),
	}
	s.record(ctx, award)
	return award
}

// AwardStreak awards a streak achievement for consecutive correct answers.
func (s *Service) AwardStreak(ctx context.Context, streakLength int, sessionID string) *Award {
	award := &Award{
		Type:      TypeStreak,
		Tier:      StreakTier(streakLength),
		SessionID: sessionID,
		Reason:    fmt.Sprintf("%d correct in a row!", streakLength),
		EarnedAt:  time.Now(),
	}
	s.record(ctx, award)
	return award
}

// AwardSession awards a session-completion achievement.
func (s *Service) AwardSession(ctx context.Context, accuracy float64, sessionID string) *Award {
	award := &Award{
		Type:      TypeSession,
		Tier:      SessionTier(accuracy),
		SessionID: sessionID,
		Reason:    fmt.Sprintf("Session complete (%.0f%% accuracy)", accuracy*100),
		EarnedAt:  time.Now(),
	}
	s.record(ctx, award)
	return award
}

// AwardBreadth awards a breadth achievement for a covered-category milestone.
func (s *Service) AwardBreadth(ctx context.Context, coveredCategories int, sessionID string) *Award {
	award := &Award{
		Type:      TypeBreadth,
		Tier:      BreadthTier(coveredCategories),
		SessionID: sessionID,
		Reason:    fmt.Sprintf("%d categories covered", coveredCategories),
		EarnedAt:  time.Now(),
	}
	s.record(ctx, award)
	return award
}

// ResetSession clears the session award accumulator. Called at session start.
func (s *Service) ResetSession() {
	s.SessionAwards = nil
}

// Counts returns persisted award counts by type plus the total.
func (s *Service) Counts(ctx context.Context) (map[string]int, int, error) {
	if s.eventRepo == nil {
		return map[string]int{}, 0, nil
	}
	return s.eventRepo.AchievementCounts(ctx)
}

func (s *Service) record(ctx context.Context, award *Award) {
	s.persist(ctx, award)
	s.SessionAwards = append(s.SessionAwards, *award)
	s.publish(*award)
}

func (s *Service) persist(ctx context.Context, award *Award) {
	if s.eventRepo == nil {
		return
	}
	data := store.AchievementEventData{
		AchievementType: string(award.Type),
		Tier:            string(award.Tier),
		SessionID:       award.SessionID,
		Reason:          award.Reason,
	}
	if award.CategoryID != "" {
		data.CategoryID = &award.CategoryID
	}
	_ = s.eventRepo.AppendAchievementEvent(ctx, data)
}

func (s *Service) publish(award Award) {
	select {
	case s.earned <- award:
	default:
	}
}
