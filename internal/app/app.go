package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/progress"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/readiness"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/router"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screen"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screens/home"
	sessionscreen "github.com/jmsone/JeopardyTrainer-sub000/internal/screens/session"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screens/welcome"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/session"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/studynotes"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/layout"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/theme"
)

// Options carries the dependencies the TUI needs. LLM-backed fields may be
// nil; the affected features degrade instead of failing.
type Options struct {
	EventRepo    store.EventRepo
	ScheduleRepo store.ScheduleRepo
	QuestionRepo store.QuestionRepo
	Progress     *progress.Service
	Awards       *achievements.Service
	Readiness    *readiness.Service
	Notes        *studynotes.Service

	// StartMode, when non-empty, skips the welcome animation and opens a
	// session of that mode directly over the home screen.
	StartMode session.Mode
}

// awardEarnedMsg delivers an achievement published on the award channel.
type awardEarnedMsg achievements.Award

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	initCmd    tea.Cmd
	opts       Options
	width      int
	height     int
	trophies   int
	reviewsDue int
	lastAward  *achievements.Award
}

func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts}
	m.refreshHeaderStats()
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			EventRepo:    opts.EventRepo,
			ScheduleRepo: opts.ScheduleRepo,
			QuestionRepo: opts.QuestionRepo,
			Progress:     opts.Progress,
			Awards:       opts.Awards,
			Readiness:    opts.Readiness,
			Notes:        opts.Notes,
		})
	}
	if opts.StartMode != "" {
		m.router = router.New(homeFactory())
		m.initCmd = m.router.Push(sessionscreen.New(sessionscreen.Deps{
			Mode:         opts.StartMode,
			EventRepo:    opts.EventRepo,
			ScheduleRepo: opts.ScheduleRepo,
			QuestionRepo: opts.QuestionRepo,
			Progress:     opts.Progress,
			Awards:       opts.Awards,
			Notes:        opts.Notes,
		}))
	} else {
		m.router = router.New(welcome.New(homeFactory))
		m.initCmd = m.router.Active().Init()
	}
	return m
}

func (m *AppModel) refreshHeaderStats() {
	ctx := context.Background()
	if m.opts.Awards != nil {
		if _, total, err := m.opts.Awards.Counts(ctx); err == nil {
			m.trophies = total
		}
	}
	if m.opts.ScheduleRepo != nil {
		if schedules, err := m.opts.ScheduleRepo.AllSchedules(ctx); err == nil {
			now := time.Now()
			due := 0
			for _, s := range schedules {
				if !now.Before(s.NextReview) {
					due++
				}
			}
			m.reviewsDue = due
		}
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.initCmd}
	if m.opts.Awards != nil {
		cmds = append(cmds, waitForAward(m.opts.Awards.Earned()))
	}
	return tea.Batch(cmds...)
}

// waitForAward blocks on the achievement channel and converts each award
// into a message. Re-armed after every delivery.
func waitForAward(ch <-chan achievements.Award) tea.Cmd {
	return func() tea.Msg {
		a, ok := <-ch
		if !ok {
			return nil
		}
		return awardEarnedMsg(a)
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case awardEarnedMsg:
		award := achievements.Award(msg)
		m.lastAward = &award
		m.trophies++
		return m, waitForAward(m.opts.Awards.Earned())

	case tea.KeyMsg:
		m.lastAward = nil
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// Let the active screen see esc first; most use it for
				// their own dialogs and pop themselves.
				break
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.trophies, m.reviewsDue, m.width)
	if m.lastAward != nil {
		header += "\n" + lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeYellow).
			Render(fmt.Sprintf("%s %s — %s", m.lastAward.Type.Icon(), m.lastAward.Tier.DisplayName(), m.lastAward.Reason))
	}

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
