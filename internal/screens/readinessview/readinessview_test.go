package readinessview

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/readiness"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screen"
)

func testScore() readiness.Score {
	return readiness.Score{
		OverallScore: 72.5,
		LetterGrade:  readiness.GradeB,
		Components: []readiness.Component{
			{Name: "Test results", Score: 80, Weight: 0.5},
			{Name: "Game play", Score: 70, Weight: 0.3},
			{Name: "Retention", Score: 60, Weight: 0.2},
		},
		Breadth: readiness.Breadth{
			CoveredCategories:  7,
			TotalCategories:    10,
			RequiredCategories: 10,
		},
		Weak: []readiness.CategoryCoverage{
			{CategoryID: "geography", Name: "Geography", Answered: 8, Correct: 3, Accuracy: 0.375},
			{CategoryID: "art", Name: "Art & Literature"},
		},
		TestReady: false,
	}
}

func TestReadinessScreen_Display(t *testing.T) {
	r := New(nil, nil)

	var scr screen.Screen = r
	scr, _ = scr.Update(scoreMsg{Score: testScore()})

	view := scr.View(80, 24)
	for _, want := range []string{"Grade B", "Test results", "7/10 categories", "Geography", "not yet practiced"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestReadinessScreen_Loading(t *testing.T) {
	r := New(nil, nil)
	if r.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}
}

func TestReadinessScreen_EscPops(t *testing.T) {
	r := New(nil, nil)
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a pop command on Esc")
	}
}

func TestBreadthMilestones(t *testing.T) {
	tests := []struct {
		covered int
		want    int
	}{
		{0, 0},
		{5, 0},
		{6, 1},
		{7, 1},
		{8, 2},
		{9, 2},
		{10, 3},
		{12, 3},
	}
	for _, tt := range tests {
		if got := breadthMilestones(tt.covered); got != tt.want {
			t.Errorf("breadthMilestones(%d) = %d, want %d", tt.covered, got, tt.want)
		}
	}
}
