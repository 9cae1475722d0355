// Package readiness composes per-mode performance signals, spaced-repetition
// state, and category breadth into one overall test-readiness score.
package readiness

import "sort"

const (
	// RecentWindowDays is the lookback window for coverage accuracy.
	RecentWindowDays = 60

	// RequiredCategories is the breadth-factor denominator.
	RequiredCategories = 10

	// MinCoveredCategories is the hard gate: below this many covered
	// categories the overall score is capped, no matter how strong the
	// component scores are.
	MinCoveredCategories = 6

	// NarrowPracticeCap is the score ceiling applied under the hard gate.
	NarrowPracticeCap = 69.0

	coveredMinAccuracy = 0.70
	coveredMinAnswers  = 3
	weakMaxAccuracy    = 0.60

	// lightCoverageMinQuestions drives the lighter catalog-coverage signal:
	// a category with at least this many ingested questions counts as
	// stocked. Independent of the accuracy-based policy above.
	lightCoverageMinQuestions = 5
)

// CategoryStats is the recent-window performance of one category.
type CategoryStats struct {
	CategoryID     string
	RecentAnswered int
	RecentCorrect  int
	// TotalQuestions is the number of questions ingested for the
	// category, regardless of whether they were answered.
	TotalQuestions int
}

// Accuracy returns the recent-window correct fraction, 0 when unanswered.
func (s CategoryStats) Accuracy() float64 {
	if s.RecentAnswered == 0 {
		return 0
	}
	return float64(s.RecentCorrect) / float64(s.RecentAnswered)
}

// CategoryCoverage is the per-category coverage verdict.
type CategoryCoverage struct {
	CategoryID string
	Name       string
	Answered   int
	Correct    int
	Accuracy   float64
	// Covered applies the accuracy+volume policy used by the readiness
	// breadth gate.
	Covered bool
	// Stocked applies the question-count policy used by the catalog
	// coverage display.
	Stocked bool
}

// Breadth summarizes covered-category counts and the resulting multiplier.
type Breadth struct {
	CoveredCategories  int
	TotalCategories    int
	RequiredCategories int
	BreadthFactor      float64
}

// Coverage is the full output of the breadth evaluator.
type Coverage struct {
	Breadth    Breadth
	Categories []CategoryCoverage
	// Weak lists categories needing remediation: low recent accuracy or
	// too few recent answers to judge.
	Weak []CategoryCoverage
}

// EvaluateCoverage decides which categories count as covered and computes
// the breadth multiplier. Categories absent from stats are treated as
// unanswered and therefore weak. nameFor maps category IDs to display
// names; a nil func leaves names equal to IDs.
func EvaluateCoverage(stats []CategoryStats, allCategoryIDs []string, nameFor func(string) string) Coverage {
	if nameFor == nil {
		nameFor = func(id string) string { return id }
	}

	byID := make(map[string]CategoryStats, len(stats))
	for _, s := range stats {
		byID[s.CategoryID] = s
	}

	cov := Coverage{
		Breadth: Breadth{
			TotalCategories:    len(allCategoryIDs),
			RequiredCategories: RequiredCategories,
		},
	}

	for _, id := range allCategoryIDs {
		s := byID[id]
		acc := s.Accuracy()
		cc := CategoryCoverage{
			CategoryID: id,
			Name:       nameFor(id),
			Answered:   s.RecentAnswered,
			Correct:    s.RecentCorrect,
			Accuracy:   acc,
			Covered:    acc >= coveredMinAccuracy && s.RecentAnswered >= coveredMinAnswers,
			Stocked:    s.TotalQuestions >= lightCoverageMinQuestions,
		}
		cov.Categories = append(cov.Categories, cc)
		if cc.Covered {
			cov.Breadth.CoveredCategories++
		}
		if acc < weakMaxAccuracy || s.RecentAnswered < coveredMinAnswers {
			cov.Weak = append(cov.Weak, cc)
		}
	}

	cov.Breadth.BreadthFactor = breadthFactor(cov.Breadth.CoveredCategories)

	// Weakest first, so remediation surfaces the worst categories.
	sort.SliceStable(cov.Weak, func(i, j int) bool {
		if cov.Weak[i].Accuracy != cov.Weak[j].Accuracy {
			return cov.Weak[i].Accuracy < cov.Weak[j].Accuracy
		}
		return cov.Weak[i].CategoryID < cov.Weak[j].CategoryID
	})

	return cov
}

func breadthFactor(covered int) float64 {
	f := float64(covered) / float64(RequiredCategories)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}
