// Package spacedrep implements the per-question spaced repetition scheduler,
// an SM-2 variant with a binarized quality signal.
//
// The canonical update path (Update) grades every correct answer at a fixed
// quality of 4 and fully resets on an incorrect answer. A separate graded
// path (ReviewQuality / GradedEase) derives a 0-5 quality from correctness
// and response latency; it exists only to rank due questions for review
// selection and never mutates the canonical schedule. The two rules are kept
// deliberately separate.
package spacedrep

import "time"

const (
	// DefaultEaseFactor is the SM-2 starting ease for a new question.
	DefaultEaseFactor = 2.5

	// MinEaseFactor is the floor below which ease never drops.
	MinEaseFactor = 1.3

	// EaseRange is the span from floor to default-max used when
	// normalizing ease into a 0-100 retention score.
	EaseRange = 1.7

	// IncorrectEasePenalty is subtracted from ease on a wrong answer.
	IncorrectEasePenalty = 0.2

	// FixedCorrectQuality is the quality level the canonical updater
	// evaluates the SM-2 ease formula at for any correct answer.
	FixedCorrectQuality = 4
)

// Schedule is the scheduling state for a single question. States are
// implicit: new (repetitions 0), learning (1-2), graduated (>2). There is no
// terminal state; review continues indefinitely.
type Schedule struct {
	QuestionID   string
	EaseFactor   float64
	Interval     int // days
	Repetitions  int
	NextReview   time.Time
	LastReviewed *time.Time
}

// NewSchedule returns the default state for a freshly ingested question:
// ease 2.5, interval 1 day, zero repetitions, due immediately.
func NewSchedule(questionID string, now time.Time) Schedule {
	return Schedule{
		QuestionID: questionID,
		EaseFactor: DefaultEaseFactor,
		Interval:   1,
		Repetitions: 0,
		NextReview: now,
	}
}

// IsDue reports whether the question is due for review.
func (s Schedule) IsDue(now time.Time) bool {
	return !now.Before(s.NextReview)
}

// OverdueMillis returns how far past due the question is, in milliseconds.
// Returns 0 when not yet due.
func (s Schedule) OverdueMillis(now time.Time) int64 {
	if now.Before(s.NextReview) {
		return 0
	}
	return now.Sub(s.NextReview).Milliseconds()
}
