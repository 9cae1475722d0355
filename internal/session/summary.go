package session

import (
	"sort"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Mode            Mode
	Duration        time.Duration
	TotalQuestions  int
	TotalCorrect    int
	Accuracy        float64
	BestStreak      int
	CategoryResults []CategoryResult
	Awards          []achievements.Award
}

// BuildSummary creates a Summary from the current session state. Only
// categories the player actually answered in appear in the breakdown,
// weakest first.
func BuildSummary(state *State) *Summary {
	var results []CategoryResult
	for _, cr := range state.PerCategory {
		if cr.Attempted > 0 {
			results = append(results, *cr)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		ai := float64(results[i].Correct) / float64(results[i].Attempted)
		aj := float64(results[j].Correct) / float64(results[j].Attempted)
		if ai != aj {
			return ai < aj
		}
		return results[i].CategoryID < results[j].CategoryID
	})

	summary := &Summary{
		Mode:            state.Plan.Mode,
		Duration:        state.Elapsed,
		TotalQuestions:  state.TotalQuestions,
		TotalCorrect:    state.TotalCorrect,
		Accuracy:        state.Accuracy(),
		BestStreak:      state.BestStreak,
		CategoryResults: results,
	}
	if state.Awards != nil {
		summary.Awards = state.Awards.SessionAwards
	}
	return summary
}
