// Package decay provides the time-decay weighting used by every recency-aware
// aggregate in the trainer: category mastery, readiness components, and
// retention scoring.
//
// Two distinct models live here and must stay separate. Weight is normalized
// so it hits exactly 0 at the window edge, and drives category mastery.
// HalfLifeWeight is a plain exponential half-life with no floor, and drives
// test-attempt and game-mode recency. They are not interchangeable: the
// normalized form is steeper near the window edge, and unifying them would
// change every downstream score.
package decay

import (
	"math"
	"time"
)

const (
	// MaxDays is the window beyond which a normalized weight is exactly zero.
	MaxDays = 180.0

	// Rate is the exponential decay constant for the normalized model.
	Rate = 3.0 / MaxDays
)

const hoursPerDay = 24.0

// Weight returns the normalized decay weight of an answer given at answeredAt,
// evaluated at now. The result is in [0, 1]: 1.0 for an answer given right
// now (or future-dated), 0.0 for anything at or beyond MaxDays old.
func Weight(answeredAt, now time.Time) float64 {
	days := now.Sub(answeredAt).Hours() / hoursPerDay
	return WeightForAge(days)
}

// WeightForAge is Weight expressed over an age in days rather than two
// timestamps. Negative ages (future-dated events) clamp to 1.0.
func WeightForAge(days float64) float64 {
	if days <= 0 {
		return 1.0
	}
	if days >= MaxDays {
		return 0.0
	}
	raw := math.Exp(-Rate * days)
	floor := math.Exp(-Rate * MaxDays)
	return Clamp((raw-floor)/(1-floor), 0, 1)
}

// HalfLifeWeight returns the unnormalized half-life weight exp(-age/halfLife)
// for an event of the given age. Unlike Weight it never reaches zero; it is
// the model the readiness composer uses for test-attempt and game-mode
// recency. A non-positive half-life yields full weight.
func HalfLifeWeight(age time.Duration, halfLifeDays float64) float64 {
	days := age.Hours() / hoursPerDay
	return HalfLifeWeightForAge(days, halfLifeDays)
}

// HalfLifeWeightForAge is HalfLifeWeight over an age in days.
func HalfLifeWeightForAge(days, halfLifeDays float64) float64 {
	if halfLifeDays <= 0 {
		return 1.0
	}
	if days <= 0 {
		return 1.0
	}
	return Clamp(math.Exp(-days/halfLifeDays), 0, 1)
}

// Clamp bounds v to [lo, hi]. NaN clamps to lo so a bad upstream value can
// never propagate into a score.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
