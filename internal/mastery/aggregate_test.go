package mastery

import (
	"testing"
	"time"
)

func recentHistory(n int, correct bool, now time.Time) []Answer {
	history := make([]Answer, n)
	for i := range history {
		history[i] = Answer{Correct: correct, AnsweredAt: now.Add(-time.Duration(i) * time.Minute)}
	}
	return history
}

func TestRecalculate_EmptyHistory(t *testing.T) {
	got := Recalculate(nil, time.Now())
	if got.WeightedCorrectScore != 0 {
		t.Errorf("score = %f, want 0", got.WeightedCorrectScore)
	}
	if got.Level != LevelNovice {
		t.Errorf("level = %s, want novice", got.Level)
	}
	if got.Estimated {
		t.Error("full-history path must not be flagged estimated")
	}
}

func TestRecalculate_AllIncorrect(t *testing.T) {
	now := time.Now()
	got := Recalculate(recentHistory(40, false, now), now)
	if got.WeightedCorrectScore != 0 {
		t.Errorf("score = %f, want 0 for all-incorrect history", got.WeightedCorrectScore)
	}
}

func TestRecalculate_FullRecentHistoryClampsTo100(t *testing.T) {
	now := time.Now()
	got := Recalculate(recentHistory(60, true, now), now)
	if got.WeightedCorrectScore != 100 {
		t.Errorf("score = %f, want clamp to 100", got.WeightedCorrectScore)
	}
	if got.Level != LevelMaster {
		t.Errorf("level = %s, want master", got.Level)
	}
}

func TestRecalculate_ScoreAlwaysInRange(t *testing.T) {
	now := time.Now()
	histories := [][]Answer{
		nil,
		recentHistory(1, true, now),
		recentHistory(200, true, now),
		recentHistory(200, false, now),
		{{Correct: true, AnsweredAt: now.Add(72 * time.Hour)}}, // future-dated
		{{Correct: true, AnsweredAt: now.AddDate(-2, 0, 0)}},   // ancient
	}
	for i, h := range histories {
		got := Recalculate(h, now)
		if got.WeightedCorrectScore < 0 || got.WeightedCorrectScore > 100 {
			t.Errorf("history %d: score %f out of [0,100]", i, got.WeightedCorrectScore)
		}
	}
}

func TestRecalculate_OldAnswersCountLess(t *testing.T) {
	now := time.Now()
	recent := Recalculate(recentHistory(20, true, now), now)
	old := make([]Answer, 20)
	for i := range old {
		old[i] = Answer{Correct: true, AnsweredAt: now.AddDate(0, 0, -150)}
	}
	aged := Recalculate(old, now)
	if aged.WeightedCorrectScore >= recent.WeightedCorrectScore {
		t.Errorf("150-day-old history scored %f >= recent %f", aged.WeightedCorrectScore, recent.WeightedCorrectScore)
	}
}

func TestRecalculate_Deterministic(t *testing.T) {
	// Recomputing with identical inputs and the same "now" must agree
	// exactly: the score is a pure function of the history.
	now := time.Now()
	history := recentHistory(35, true, now)
	first := Recalculate(history, now)
	second := Recalculate(history, now)
	if first.WeightedCorrectScore != second.WeightedCorrectScore {
		t.Errorf("recompute drifted: %f then %f", first.WeightedCorrectScore, second.WeightedCorrectScore)
	}
}

func TestLevelForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Level
	}{
		{0, LevelNovice},
		{19.99, LevelNovice},
		{20, LevelIntermediate},
		{39.99, LevelIntermediate},
		{40, LevelAdvanced},
		{59.99, LevelAdvanced},
		{60, LevelExpert},
		{79.99, LevelExpert},
		{80, LevelMaster},
		{100, LevelMaster},
	}
	for _, tt := range tests {
		if got := LevelForScore(tt.score); got != tt.want {
			t.Errorf("LevelForScore(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestEstimate(t *testing.T) {
	got := Estimate(30, 40)
	if got.WeightedCorrectScore != 75 {
		t.Errorf("score = %f, want 75", got.WeightedCorrectScore)
	}
	if got.Level != LevelExpert {
		t.Errorf("level = %s, want expert", got.Level)
	}
	if !got.Estimated {
		t.Error("count-based fallback must be flagged estimated")
	}
}

func TestEstimate_ZeroAnswered(t *testing.T) {
	got := Estimate(0, 0)
	if got.WeightedCorrectScore != 0 || got.Level != LevelNovice {
		t.Errorf("Estimate(0,0) = %+v, want zero novice", got)
	}
}
