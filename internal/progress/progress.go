// Package progress orchestrates what happens when a question is answered:
// the event is appended to the log, category mastery is recomputed, the
// spaced-repetition schedule advances, and any earned achievements fire.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/mastery"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/spacedrep"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// ErrUnknownCategory is returned when an answer references a category that
// is not in the catalog. Recording it anyway would poison every aggregate
// built from the log.
var ErrUnknownCategory = errors.New("unknown category")

// Modes an answer can be recorded under.
const (
	ModeGame        = "game"
	ModeRapidFire   = "rapid_fire"
	ModeAnytimeTest = "anytime_test"
)

// Service coordinates the per-answer write path.
type Service struct {
	events    store.EventRepo
	mastery   *mastery.Service
	schedules store.ScheduleRepo
	awards    *achievements.Service
}

// NewService creates a progress service. awards may be nil when no
// achievement tracking is wanted (e.g. backfill tooling).
func NewService(events store.EventRepo, masterySvc *mastery.Service, schedules store.ScheduleRepo, awards *achievements.Service) *Service {
	return &Service{
		events:    events,
		mastery:   masterySvc,
		schedules: schedules,
		awards:    awards,
	}
}

// Answer is one answered question to record.
type Answer struct {
	SessionID     string
	QuestionID    string
	CategoryID    string
	Mode          string
	Correct       bool
	TimeSpentSecs float64
}

// Result reports the downstream effects of recording one answer.
type Result struct {
	Mastery mastery.Result
	// LeveledUp is set when the category crossed into a higher mastery
	// level on this answer.
	LeveledUp bool
	// Schedule is the updated spaced-repetition state, nil outside game
	// mode.
	Schedule *spacedrep.Schedule
	// Award is the achievement earned on this answer, if any.
	Award *achievements.Award
}

// RecordAnswer appends the answer event and folds it into every aggregate.
// The event append is the source of truth; aggregate failures after a
// successful append are returned but leave the log intact.
func (s *Service) RecordAnswer(ctx context.Context, a Answer) (Result, error) {
	if !catalog.IsKnown(a.CategoryID) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownCategory, a.CategoryID)
	}

	prev, err := s.mastery.CategoryMastery(ctx, a.CategoryID)
	if err != nil {
		return Result{}, err
	}
	prevLevel := mastery.LevelNovice
	if prev != nil {
		prevLevel = mastery.Level(prev.MasteryLevel)
	}

	if err := s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:     a.SessionID,
		QuestionID:    a.QuestionID,
		CategoryID:    a.CategoryID,
		Mode:          a.Mode,
		Correct:       a.Correct,
		TimeSpentSecs: a.TimeSpentSecs,
	}); err != nil {
		return Result{}, fmt.Errorf("append answer event: %w", err)
	}

	now := time.Now()
	res := Result{}

	res.Mastery, err = s.mastery.RecalculateCategory(ctx, a.CategoryID, now)
	if err != nil {
		return res, err
	}
	if levelRank(res.Mastery.Level) > levelRank(prevLevel) {
		res.LeveledUp = true
		if s.awards != nil {
			res.Award = s.awards.AwardMastery(ctx, a.CategoryID, catalog.CategoryName(a.CategoryID), res.Mastery.Level, a.SessionID)
		}
	}

	if a.Mode == ModeGame {
		sched, err := s.advanceSchedule(ctx, a, now)
		if err != nil {
			return res, err
		}
		res.Schedule = sched
	}

	return res, nil
}

// advanceSchedule applies the scheduling update for a game-mode answer.
// Anytime-test and rapid-fire answers never touch review scheduling.
func (s *Service) advanceSchedule(ctx context.Context, a Answer, now time.Time) (*spacedrep.Schedule, error) {
	stored, err := s.schedules.GetSchedule(ctx, a.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	var sched spacedrep.Schedule
	if stored == nil {
		sched = spacedrep.NewSchedule(a.QuestionID, now)
	} else {
		sched = spacedrep.Schedule{
			QuestionID:   stored.QuestionID,
			EaseFactor:   stored.EaseFactor,
			Interval:     stored.IntervalDays,
			Repetitions:  stored.Repetitions,
			NextReview:   stored.NextReview,
			LastReviewed: stored.LastReviewed,
		}
	}

	sched = spacedrep.Update(sched, a.Correct, now)

	if err := s.schedules.SaveSchedule(ctx, store.ScheduleData{
		QuestionID:   sched.QuestionID,
		CategoryID:   a.CategoryID,
		EaseFactor:   sched.EaseFactor,
		IntervalDays: sched.Interval,
		Repetitions:  sched.Repetitions,
		NextReview:   sched.NextReview,
		LastReviewed: sched.LastReviewed,
	}); err != nil {
		return nil, fmt.Errorf("save schedule: %w", err)
	}
	return &sched, nil
}

// RecordTestAttempt appends a completed anytime test to the log.
func (s *Service) RecordTestAttempt(ctx context.Context, data store.TestAttemptData) error {
	if err := s.events.AppendTestAttempt(ctx, data); err != nil {
		return fmt.Errorf("append test attempt: %w", err)
	}
	return nil
}

var levelOrder = map[mastery.Level]int{
	mastery.LevelNovice:       0,
	mastery.LevelIntermediate: 1,
	mastery.LevelAdvanced:     2,
	mastery.LevelExpert:       3,
	mastery.LevelMaster:       4,
}

func levelRank(l mastery.Level) int {
	return levelOrder[l]
}
