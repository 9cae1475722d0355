package session

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/screen"
	sess "github.com/jmsone/JeopardyTrainer-sub000/internal/session"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// mockEventRepo records session events; the embedded interface panics on
// anything the screen should not be calling in these tests.
type mockEventRepo struct {
	store.EventRepo
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func trivia(id, answer string) store.QuestionData {
	return store.QuestionData{
		QuestionID:  id,
		CategoryID:  "history",
		Prompt:      "prompt for " + id,
		Answer:      answer,
		Choices:     []string{"Washington", answer, "Grant", "Jefferson"},
		Explanation: "because " + answer,
	}
}

func testSessionScreen(qs ...store.QuestionData) (*SessionScreen, *mockEventRepo) {
	repo := &mockEventRepo{}
	s := New(Deps{Mode: sess.ModeGame, EventRepo: repo})

	slots := make([]sess.PlanSlot, len(qs))
	for i, q := range qs {
		slots[i] = sess.PlanSlot{Question: q, Reason: sess.ReasonBreadth}
	}
	plan := &sess.Plan{Mode: sess.ModeGame, Slots: slots}
	s.state = sess.NewState(plan, "test-session")
	return s, repo
}

func TestSessionScreen_Title(t *testing.T) {
	s := New(Deps{Mode: sess.ModeRapidFire})
	if s.Title() != "Rapid Fire" {
		t.Errorf("Title = %q, want %q", s.Title(), "Rapid Fire")
	}
}

func TestSessionScreen_View_Loading(t *testing.T) {
	s := New(Deps{Mode: sess.ModeGame})
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestSessionScreen_View_Error(t *testing.T) {
	s := New(Deps{Mode: sess.ModeGame})
	s.errMsg = "test error"
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for error state")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _ := testSessionScreen(trivia("q1", "Lincoln"))

	// Press Esc to show quit dialog.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	// Press N to dismiss.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, _ := testSessionScreen(trivia("q1", "Lincoln"))

	// Press Esc then Y.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	end, ok := cmd().(sessionEndMsg)
	if !ok {
		t.Fatalf("expected sessionEndMsg, got %T", cmd())
	}
	if end.Action != "abandoned" {
		t.Errorf("action = %q, want abandoned", end.Action)
	}
}

func TestSessionScreen_NumberKeySubmits(t *testing.T) {
	s, _ := testSessionScreen(trivia("q1", "Lincoln"))

	// Choice 2 is the correct answer.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != sess.PhaseFeedback {
		t.Error("expected feedback after answering")
	}
	if !ss.state.LastAnswerCorrect {
		t.Error("expected choice 2 to be correct")
	}
}

func TestSessionScreen_ArrowsThenEnter(t *testing.T) {
	s, _ := testSessionScreen(trivia("q1", "Lincoln"))

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != sess.PhaseFeedback {
		t.Error("expected feedback after submit")
	}
	if !ss.state.LastAnswerCorrect {
		t.Error("expected second choice to be correct")
	}
}

func TestSessionScreen_FeedbackAdvances(t *testing.T) {
	s, _ := testSessionScreen(trivia("q1", "Lincoln"), trivia("q2", "Grant"))

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1')) // wrong answer
	scr, _ = scr.Update(keyPress(' ')) // dismiss feedback
	ss := scr.(*SessionScreen)

	if ss.state.Phase != sess.PhaseActive {
		t.Error("expected active phase after dismissing feedback")
	}
	if ss.state.Index != 1 {
		t.Errorf("index = %d, want 1", ss.state.Index)
	}
}

func TestSessionScreen_LastQuestionEndsSession(t *testing.T) {
	s, _ := testSessionScreen(trivia("q1", "Lincoln"))

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	_, cmd := scr.Update(keyPress(' '))

	if cmd == nil {
		t.Fatal("expected a command after the last question")
	}
	end, ok := cmd().(sessionEndMsg)
	if !ok {
		t.Fatalf("expected sessionEndMsg, got %T", cmd())
	}
	if end.Action != "completed" {
		t.Errorf("action = %q, want completed", end.Action)
	}
}

func TestSessionScreen_SessionEndLogsEvent(t *testing.T) {
	s, repo := testSessionScreen(trivia("q1", "Lincoln"))

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	_, cmd := scr.Update(sessionEndMsg{Action: "completed"})

	if cmd == nil {
		t.Fatal("expected a navigation command after session end")
	}
	if len(repo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(repo.sessionEvents))
	}
	ev := repo.sessionEvents[0]
	if ev.Action != "completed" {
		t.Errorf("action = %q, want completed", ev.Action)
	}
	if ev.QuestionsServed != 1 || ev.CorrectAnswers != 1 {
		t.Errorf("served/correct = %d/%d, want 1/1", ev.QuestionsServed, ev.CorrectAnswers)
	}
}

func TestSessionScreen_TimeoutCountsAsMiss(t *testing.T) {
	repo := &mockEventRepo{}
	s := New(Deps{Mode: sess.ModeRapidFire, EventRepo: repo})
	plan := &sess.Plan{Mode: sess.ModeRapidFire, Slots: []sess.PlanSlot{
		{Question: trivia("q1", "Lincoln"), Reason: sess.ReasonBreadth},
	}}
	s.state = sess.NewState(plan, "test-session")
	s.timeLeft = 1

	var scr screen.Screen = s
	scr, _ = scr.Update(timerTickMsg(time.Now()))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != sess.PhaseFeedback {
		t.Error("expected feedback after timeout")
	}
	if ss.state.LastAnswerCorrect {
		t.Error("timeout should count as a miss")
	}
	if !ss.state.TimeExpired {
		t.Error("expected TimeExpired flag")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testSessionScreen(trivia("q1", "Lincoln"))
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestSessionScreen_QuestionView(t *testing.T) {
	s, _ := testSessionScreen(trivia("q1", "Lincoln"))
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty question view")
	}
}
