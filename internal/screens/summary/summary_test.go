package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Mode:           session.ModeGame,
		Duration:       8 * time.Minute,
		TotalQuestions: 15,
		TotalCorrect:   11,
		Accuracy:       float64(11) / float64(15),
		BestStreak:     6,
		CategoryResults: []session.CategoryResult{
			{CategoryID: "geography", CategoryName: "Geography", Attempted: 5, Correct: 2},
			{CategoryID: "history", CategoryName: "History", Attempted: 6, Correct: 5},
			{CategoryID: "science", CategoryName: "Science & Nature", Attempted: 4, Correct: 4},
		},
		Awards: []achievements.Award{
			{
				Type:   achievements.TypeStreak,
				Tier:   achievements.TierSilver,
				Reason: "6 correct in a row",
			},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	for _, want := range []string{"Geography", "History", "Science & Nature", "Best streak: 6", "6 correct in a row"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
