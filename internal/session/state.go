package session

import (
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/mastery"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/progress"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/studynotes"
)

// MaxRecentMisses is the maximum number of missed prompts tracked per
// category for study-note context.
const MaxRecentMisses = 5

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseActive   Phase = iota // serving questions
	PhaseFeedback              // showing answer feedback
	PhaseSummary               // showing the summary screen
)

// State tracks the runtime state of an active session.
type State struct {
	// Plan is the question list built at session start.
	Plan *Plan

	// SessionID is the UUID for this session.
	SessionID string

	// Index is the position in Plan.Slots of the current question.
	Index int

	// TotalQuestions is the count of questions answered so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// ConsecutiveCorrect is the current streak length.
	ConsecutiveCorrect int

	// BestStreak is the longest streak reached this session.
	BestStreak int

	// NextStreakThreshold is the streak length that triggers the next award.
	NextStreakThreshold int

	// PerCategory tracks per-category stats for the summary screen.
	PerCategory map[string]*CategoryResult

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed tracks total elapsed time.
	Elapsed time.Duration

	// QuestionStartTime tracks when the current question was displayed.
	QuestionStartTime time.Time

	// Phase is the current session phase.
	Phase Phase

	// ShowingQuitConfirm is true when the quit dialog is displayed.
	ShowingQuitConfirm bool

	// TimeExpired indicates the per-question or session timer ran out.
	TimeExpired bool

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// LastExplanation is the context blurb for the question just answered.
	LastExplanation string

	// LastMastery is the recomputed category mastery after the last answer.
	LastMastery *mastery.Result

	// LevelUp is set when the last answer pushed a category into a higher
	// mastery level, for feedback display.
	LevelUp *LevelUp

	// PendingAward is the achievement earned on the last answer, if any.
	PendingAward *achievements.Award

	// PendingNote is true when a study note has been requested but not yet
	// consumed.
	PendingNote bool

	// RecentMisses holds missed prompts per category, newest last.
	RecentMisses map[string][]string

	// WrongCountByCategory tracks per-category wrong answers this session.
	WrongCountByCategory map[string]int

	// RecordErr holds the last persistence failure, shown as a warning.
	RecordErr error

	// Progress coordinates the per-answer write path (nil in tests that
	// exercise pure state transitions).
	Progress *progress.Service

	// Awards grants streak and session achievements (nil disables them).
	Awards *achievements.Service

	// Notes generates study notes for struggling categories (nil disables).
	Notes *studynotes.Service
}

// CategoryResult tracks per-category performance within a single session.
type CategoryResult struct {
	CategoryID   string
	CategoryName string
	Attempted    int
	Correct      int
}

// LevelUp records a mastery level transition for display purposes.
type LevelUp struct {
	CategoryID   string
	CategoryName string
	Level        mastery.Level
}

// NewState creates session state for a freshly built plan.
func NewState(plan *Plan, sessionID string) *State {
	perCategory := make(map[string]*CategoryResult)
	for _, slot := range plan.Slots {
		if _, ok := perCategory[slot.Question.CategoryID]; !ok {
			perCategory[slot.Question.CategoryID] = &CategoryResult{
				CategoryID: slot.Question.CategoryID,
			}
		}
	}

	now := time.Now()
	return &State{
		Plan:                 plan,
		SessionID:            sessionID,
		PerCategory:          perCategory,
		StartTime:            now,
		QuestionStartTime:    now,
		Phase:                PhaseActive,
		NextStreakThreshold:  achievements.BaseStreakThreshold,
		RecentMisses:         make(map[string][]string),
		WrongCountByCategory: make(map[string]int),
	}
}

// CurrentQuestion returns the active question, or nil when the plan is
// exhausted.
func (s *State) CurrentQuestion() *store.QuestionData {
	if s.Index < 0 || s.Index >= len(s.Plan.Slots) {
		return nil
	}
	return &s.Plan.Slots[s.Index].Question
}

// CurrentSlot returns the active plan slot, or nil when exhausted.
func (s *State) CurrentSlot() *PlanSlot {
	if s.Index < 0 || s.Index >= len(s.Plan.Slots) {
		return nil
	}
	return &s.Plan.Slots[s.Index]
}

// Remaining returns how many questions are left including the current one.
func (s *State) Remaining() int {
	if s.Index >= len(s.Plan.Slots) {
		return 0
	}
	return len(s.Plan.Slots) - s.Index
}

// Accuracy returns the session accuracy so far, 0 when nothing answered.
func (s *State) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalQuestions)
}
