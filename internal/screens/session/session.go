package session

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/progress"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/router"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screen"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screens/summary"
	sess "github.com/jmsone/JeopardyTrainer-sub000/internal/session"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/studynotes"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/layout"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/theme"
)

// Deps carries the services the session screen needs.
type Deps struct {
	Mode         sess.Mode
	EventRepo    store.EventRepo
	ScheduleRepo store.ScheduleRepo
	QuestionRepo store.QuestionRepo
	Progress     *progress.Service
	Awards       *achievements.Service
	Notes        *studynotes.Service
}

// SessionScreen implements screen.Screen for the active session.
type SessionScreen struct {
	deps        Deps
	state       *sess.State
	spin        spinner.Model
	mcSelected  int
	timeLeft    int
	note        *studynotes.Note
	showingNote bool
	noteWaiting bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a new SessionScreen with injected dependencies.
func New(deps Deps) *SessionScreen {
	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
	)
	return &SessionScreen{deps: deps, spin: spin}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(s.initSession(), s.spin.Tick)
}

func (s *SessionScreen) Title() string {
	return s.deps.Mode.DisplayName()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingNote {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
		}
	}
	if s.state.Phase == sess.PhaseFeedback {
		hints := []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
		if s.state.PendingNote {
			hints = append([]layout.KeyHint{{Key: "N", Description: "Study note"}}, hints...)
		}
		return hints
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width, height, s.spin.View())
	}
	if s.state.ShowingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.showingNote {
		return renderNote(s.note, width)
	}
	if s.state.Phase == sess.PhaseFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case sessionEndMsg:
		return s.handleSessionEnd(msg)

	case spinner.TickMsg:
		// Only animate while the plan is still loading.
		if s.state == nil && s.errMsg == "" {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// initSession builds the plan and logs the session start.
func (s *SessionScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		planner := sess.NewPlanner(s.deps.EventRepo, s.deps.ScheduleRepo, s.deps.QuestionRepo)
		plan, err := planner.BuildPlan(ctx, s.deps.Mode, 0, time.Now())
		if err != nil {
			return sessionInitMsg{Err: err}
		}
		if len(plan.Slots) == 0 {
			return sessionInitMsg{Err: errors.New("no questions available, generate some first")}
		}

		sessionID := uuid.New().String()
		state := sess.NewState(plan, sessionID)
		state.Progress = s.deps.Progress
		state.Awards = s.deps.Awards
		state.Notes = s.deps.Notes

		if s.deps.Awards != nil {
			s.deps.Awards.ResetSession()
		}

		_ = s.deps.EventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       sessionID,
			Mode:            string(plan.Mode),
			Action:          "started",
			QuestionsServed: len(plan.Slots),
		})

		return sessionInitMsg{State: state}
	}
}

func (s *SessionScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	s.mcSelected = 0
	s.timeLeft = s.deps.Mode.QuestionTimeLimitSecs()
	if s.timeLeft > 0 {
		return s, tickCmd()
	}
	return s, nil
}

// handleTimerTick drives the per-question countdown for timed modes. The
// chain keeps running across questions; it only stops once the session is
// over.
func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase == sess.PhaseSummary {
		return s, nil
	}

	s.state.Elapsed = time.Since(s.state.StartTime)

	// Countdown pauses during feedback, notes, and the quit dialog.
	if s.state.Phase != sess.PhaseActive || s.state.ShowingQuitConfirm || s.showingNote {
		return s, tickCmd()
	}

	s.timeLeft--
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		sess.HandleTimeout(s.state)
		s.state.TimeExpired = true
		s.state.Phase = sess.PhaseFeedback
	}

	return s, tickCmd()
}

func (s *SessionScreen) handleSessionEnd(msg sessionEndMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	sum := sess.Finish(s.state, s.deps.EventRepo, msg.Action)

	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state, any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{Action: "abandoned"} }
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
		}
		return s, nil
	}

	// Study note overlay, any key moves on.
	if s.showingNote {
		s.showingNote = false
		s.note = nil
		return s.advanceOrEnd()
	}

	// Feedback overlay.
	if s.state.Phase == sess.PhaseFeedback {
		if (key == "n" || key == "N") && s.state.PendingNote && s.deps.Notes != nil {
			if note, ok := s.deps.Notes.ConsumeNote(); ok {
				s.note = note
				s.showingNote = true
				s.state.PendingNote = false
			} else {
				s.noteWaiting = true
			}
			return s, nil
		}
		return s.advanceOrEnd()
	}

	// Active question phase.
	if s.state.Phase == sess.PhaseActive {
		q := s.state.CurrentQuestion()
		if q == nil {
			return s, nil
		}

		switch key {
		case "esc":
			s.state.ShowingQuitConfirm = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(q.Choices) {
				s.mcSelected = idx
				return s.submitAnswer()
			}
		case "up", "k":
			if s.mcSelected > 0 {
				s.mcSelected--
			}
		case "down", "j":
			if s.mcSelected < len(q.Choices)-1 {
				s.mcSelected++
			}
		}
	}

	return s, nil
}

// submitAnswer grades the current selection and shows feedback.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.state.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	var selected string
	if s.mcSelected >= 0 && s.mcSelected < len(q.Choices) {
		selected = q.Choices[s.mcSelected]
	}

	sess.HandleAnswer(s.state, selected)
	s.state.Phase = sess.PhaseFeedback

	return s, nil
}

// advanceOrEnd moves to the next question, or ends the session when the
// plan is exhausted.
func (s *SessionScreen) advanceOrEnd() (screen.Screen, tea.Cmd) {
	s.state.TimeExpired = false
	s.noteWaiting = false

	if !sess.Advance(s.state) {
		return s, func() tea.Msg { return sessionEndMsg{Action: "completed"} }
	}

	s.state.Phase = sess.PhaseActive
	s.mcSelected = 0
	s.timeLeft = s.deps.Mode.QuestionTimeLimitSecs()
	return s, nil
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
