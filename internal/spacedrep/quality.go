package spacedrep

import "math"

// DefaultTimeLimitSecs is the per-question time allowance assumed when the
// caller does not supply one.
const DefaultTimeLimitSecs = 30.0

// ReviewQuality derives a 0-5 SM-2 quality grade from correctness and
// response latency relative to the time limit. This grade feeds review
// prioritization only; the canonical schedule update ignores it.
//
//	incorrect, over the limit  -> 0
//	incorrect, within limit    -> 1
//	correct, within limit      -> 3
//	correct, <=50% of limit    -> 4
//	correct, <=30% of limit    -> 5
func ReviewQuality(correct bool, timeSpentSecs, timeLimitSecs float64) int {
	if timeLimitSecs <= 0 {
		timeLimitSecs = DefaultTimeLimitSecs
	}

	if !correct {
		if timeSpentSecs > timeLimitSecs {
			return 0
		}
		return 1
	}

	ratio := timeSpentSecs / timeLimitSecs
	switch {
	case ratio <= 0.3:
		return 5
	case ratio <= 0.5:
		return 4
	default:
		return 3
	}
}

// GradedEase recomputes an ease factor with the full quality-scaled SM-2
// formula, floored at the minimum. Used when ranking review candidates by
// projected difficulty.
func GradedEase(ease float64, quality int) float64 {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}
	return math.Max(MinEaseFactor, ease+easeDelta(quality))
}
