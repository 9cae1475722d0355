package readiness

import (
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/decay"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/spacedrep"
)

const (
	testWeight      = 0.60
	gameWeight      = 0.25
	retentionWeight = 0.15

	// Half-lives for the unnormalized recency weighting of test attempts
	// and game-mode answers. Distinct from the 180-day mastery decay.
	testHalfLifeDays = 21.0
	gameHalfLifeDays = 28.0

	// retentionWindowDays bounds the correct-rate that scales the
	// ease-derived retention score.
	retentionWindowDays = 30

	testReadyMinScore    = 80.0
	testReadyMinAccuracy = 0.70
	testReadyWindowDays  = 30
)

// TestAttempt is one completed anytime test, accuracy as a fraction.
type TestAttempt struct {
	Accuracy    float64
	AttemptedAt time.Time
}

// Answer is one game-mode answer event.
type Answer struct {
	Correct    bool
	AnsweredAt time.Time
}

// Component is one weighted contributor to the overall score.
type Component struct {
	Name        string
	Score       float64
	Weight      float64
	Description string
}

// Score is the composed readiness result. Derived on demand, never stored.
type Score struct {
	OverallScore float64
	LetterGrade  Grade
	Components   []Component
	Breadth      Breadth
	Coverage     []CategoryCoverage
	Weak         []CategoryCoverage
	TestReady    bool
}

// Input is the snapshot a readiness computation folds over.
type Input struct {
	TestAttempts []TestAttempt
	GameAnswers  []Answer
	Schedules    []spacedrep.Schedule
	Stats        []CategoryStats
	CategoryIDs  []string
	CategoryName func(string) string
}

// Compose blends the three performance components with the breadth gate
// into the final score. Empty inputs yield zero scores, not errors.
func Compose(in Input, now time.Time) Score {
	cov := EvaluateCoverage(in.Stats, in.CategoryIDs, in.CategoryName)

	components := []Component{
		{
			Name:        "Anytime Test",
			Score:       testScore(in.TestAttempts, now),
			Weight:      testWeight,
			Description: "Recency-weighted accuracy across anytime test attempts",
		},
		{
			Name:        "Game Mode",
			Score:       gameScore(in.GameAnswers, now),
			Weight:      gameWeight,
			Description: "Recency-weighted accuracy in game-mode practice",
		},
		{
			Name:        "Spaced Repetition",
			Score:       retentionScore(in.Schedules, in.GameAnswers, now),
			Weight:      retentionWeight,
			Description: "Review ease factors scaled by recent recall rate",
		},
	}

	base := 0.0
	for _, c := range components {
		base += c.Score * c.Weight
	}
	base = decay.Clamp(base, 0, 100)

	overall := base * (0.7 + 0.3*cov.Breadth.BreadthFactor)
	overall = decay.Clamp(overall, 0, 100)
	if cov.Breadth.CoveredCategories < MinCoveredCategories && overall > NarrowPracticeCap {
		overall = NarrowPracticeCap
	}

	return Score{
		OverallScore: overall,
		LetterGrade:  GradeForScore(overall),
		Components:   components,
		Breadth:      cov.Breadth,
		Coverage:     cov.Categories,
		Weak:         cov.Weak,
		TestReady:    overall >= testReadyMinScore && recentStrongAttempt(in.TestAttempts, now),
	}
}

// testScore is the decay-weighted mean attempt accuracy, half-life 21 days.
func testScore(attempts []TestAttempt, now time.Time) float64 {
	var weightSum, accSum float64
	for _, a := range attempts {
		w := decay.HalfLifeWeight(now.Sub(a.AttemptedAt), testHalfLifeDays)
		weightSum += w
		accSum += w * decay.Clamp(a.Accuracy, 0, 1)
	}
	if weightSum == 0 {
		return 0
	}
	return decay.Clamp(accSum/weightSum*100, 0, 100)
}

// gameScore is the decay-weighted accuracy over game answers, half-life
// 28 days.
func gameScore(answers []Answer, now time.Time) float64 {
	var weightSum, correctSum float64
	for _, a := range answers {
		w := decay.HalfLifeWeight(now.Sub(a.AnsweredAt), gameHalfLifeDays)
		weightSum += w
		if a.Correct {
			correctSum += w
		}
	}
	if weightSum == 0 {
		return 0
	}
	return decay.Clamp(correctSum/weightSum*100, 0, 100)
}

// retentionScore normalizes the average ease factor onto [0,100] and
// scales it by the 30-day correct rate. A cold recent record suppresses
// the score even when historical ease is high.
func retentionScore(schedules []spacedrep.Schedule, answers []Answer, now time.Time) float64 {
	if len(schedules) == 0 {
		return 0
	}
	var easeSum float64
	for _, s := range schedules {
		easeSum += s.EaseFactor
	}
	avgEase := easeSum / float64(len(schedules))
	easeScore := decay.Clamp((avgEase-spacedrep.MinEaseFactor)/spacedrep.EaseRange*100, 0, 100)

	cutoff := now.AddDate(0, 0, -retentionWindowDays)
	var total, correct int
	for _, a := range answers {
		if a.AnsweredAt.Before(cutoff) {
			continue
		}
		total++
		if a.Correct {
			correct++
		}
	}
	if total == 0 {
		return 0
	}
	rate := float64(correct) / float64(total)
	return decay.Clamp(easeScore*rate, 0, 100)
}

func recentStrongAttempt(attempts []TestAttempt, now time.Time) bool {
	cutoff := now.AddDate(0, 0, -testReadyWindowDays)
	for _, a := range attempts {
		if !a.AttemptedAt.Before(cutoff) && a.Accuracy >= testReadyMinAccuracy {
			return true
		}
	}
	return false
}
