package mastery

import (
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/decay"
)

// TargetAnswers is the number of decay-weighted-equivalent correct answers
// that corresponds to a full (100) mastery score in one category.
const TargetAnswers = 50.0

// Answer is the slice of an answer event the aggregator needs.
type Answer struct {
	Correct    bool
	AnsweredAt time.Time
}

// Result is the outcome of a category mastery computation.
type Result struct {
	// WeightedCorrectScore is the decay-weighted correctness score, [0,100].
	WeightedCorrectScore float64

	// Level is the discrete tier derived from the score.
	Level Level

	// Estimated marks the count-based fallback path: the score was
	// approximated from aggregate counters because the per-event history
	// was unavailable. Estimated results are a degraded approximation,
	// not the primary algorithm.
	Estimated bool
}

// Recalculate folds a category's full answer history into a weighted
// correctness score and mastery level. Empty history is a valid steady
// state (new user) and yields score 0 / novice.
func Recalculate(history []Answer, now time.Time) Result {
	var sum float64
	for _, a := range history {
		if a.Correct {
			sum += decay.Weight(a.AnsweredAt, now)
		}
	}
	score := decay.Clamp(sum/TargetAnswers*100, 0, 100)
	return Result{
		WeightedCorrectScore: score,
		Level:                LevelForScore(score),
	}
}

// Estimate approximates a mastery score from raw aggregate counters when the
// per-event history is unavailable. The result carries the Estimated flag so
// callers (and tests) can tell it apart from a full-history computation.
func Estimate(totalCorrect, totalAnswered int) Result {
	var score float64
	if totalAnswered > 0 {
		score = decay.Clamp(float64(totalCorrect)/float64(totalAnswered)*100, 0, 100)
	}
	return Result{
		WeightedCorrectScore: score,
		Level:                LevelForScore(score),
		Estimated:            true,
	}
}
