package spacedrep

import (
	"math"
	"time"
)

// Update applies one review outcome to a schedule and returns the new state.
// This is the canonical production path: quality is binarized, an incorrect
// answer is a full reset (harsher than textbook SM-2, no partial credit),
// and a correct answer is always graded at the fixed quality level.
//
// Only game-mode answers should reach this function; rapid-fire and anytime
// test answers must not touch scheduling state.
func Update(s Schedule, correct bool, now time.Time) Schedule {
	if !correct {
		s.Repetitions = 0
		s.Interval = 1
		s.EaseFactor = math.Max(MinEaseFactor, s.EaseFactor-IncorrectEasePenalty)
	} else {
		s.Repetitions++
		switch {
		case s.Repetitions == 1:
			s.Interval = 1
		case s.Repetitions == 2:
			s.Interval = 6
		default:
			s.Interval = int(math.Round(float64(s.Interval) * s.EaseFactor))
		}
		if s.Interval < 1 {
			s.Interval = 1
		}
		s.EaseFactor = math.Max(MinEaseFactor, s.EaseFactor+easeDelta(FixedCorrectQuality))
	}

	s.NextReview = now.AddDate(0, 0, s.Interval)
	reviewed := now
	s.LastReviewed = &reviewed
	return s
}

// easeDelta is the SM-2 ease adjustment for a given quality:
// 0.1 - (5-q)*(0.08 + (5-q)*0.02). At the fixed correct quality of 4 this
// evaluates to exactly zero, so in practice ease only ever moves down
// (via the incorrect-answer penalty). Preserved as observed.
func easeDelta(quality int) float64 {
	q := float64(quality)
	return 0.1 - (5-q)*(0.08+(5-q)*0.02)
}
