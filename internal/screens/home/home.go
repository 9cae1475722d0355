package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/progress"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/readiness"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/router"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screen"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screens/history"
	readinessscreen "github.com/jmsone/JeopardyTrainer-sub000/internal/screens/readinessview"
	sessionscreen "github.com/jmsone/JeopardyTrainer-sub000/internal/screens/session"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screens/trophies"
	sess "github.com/jmsone/JeopardyTrainer-sub000/internal/session"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/studynotes"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/components"
)

// Deps carries the services the home screen and its children need.
type Deps struct {
	EventRepo    store.EventRepo
	ScheduleRepo store.ScheduleRepo
	QuestionRepo store.QuestionRepo
	Progress     *progress.Service
	Awards       *achievements.Service
	Readiness    *readiness.Service
	Notes        *studynotes.Service
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	menuLabels    []string
	disabled      map[int]bool
	readyScore    float64
	readyGrade    string
	trophyCount   int
	reviewsDue    int
	bankEmpty     bool
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Startup stats are loaded synchronously; the
// queries are cheap single-table reads.
func New(deps Deps) *HomeScreen {
	ctx := context.Background()
	h := &HomeScreen{disabled: make(map[int]bool)}

	if deps.Readiness != nil {
		if score, err := deps.Readiness.Compute(ctx, time.Now()); err == nil {
			h.readyScore = score.OverallScore
			h.readyGrade = string(score.LetterGrade)
		}
	}
	if deps.Awards != nil {
		if _, total, err := deps.Awards.Counts(ctx); err == nil {
			h.trophyCount = total
		}
	}
	if deps.ScheduleRepo != nil {
		if schedules, err := deps.ScheduleRepo.AllSchedules(ctx); err == nil {
			now := time.Now()
			for _, s := range schedules {
				if !now.Before(s.NextReview) {
					h.reviewsDue++
				}
			}
		}
	}
	if deps.QuestionRepo != nil {
		counts, err := deps.QuestionRepo.CountByCategory(ctx)
		if err == nil {
			total := 0
			for _, n := range counts {
				total += n
			}
			h.bankEmpty = total == 0
		}
	}

	h.mascotVariant = MascotIdle
	if h.reviewsDue >= 3 {
		h.mascotVariant = MascotAlert
	} else if h.readyScore >= 80 {
		h.mascotVariant = MascotCelebrating
	}

	h.menuLabels = []string{"PLAY GAME", "RAPID FIRE", "ANYTIME TEST", "READINESS", "TROPHY CASE", "HISTORY", "EXIT"}

	// Session modes are unplayable until questions exist.
	if h.bankEmpty {
		h.disabled[0] = true
		h.disabled[1] = true
		h.disabled[2] = true
	}

	pushSession := func(mode sess.Mode) func() tea.Cmd {
		return func() tea.Cmd {
			if h.bankEmpty || deps.Progress == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessionscreen.New(sessionscreen.Deps{
						Mode:         mode,
						EventRepo:    deps.EventRepo,
						ScheduleRepo: deps.ScheduleRepo,
						QuestionRepo: deps.QuestionRepo,
						Progress:     deps.Progress,
						Awards:       deps.Awards,
						Notes:        deps.Notes,
					}),
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: pushSession(sess.ModeGame)},
		{Label: h.menuLabels[1], Action: pushSession(sess.ModeRapidFire)},
		{Label: h.menuLabels[2], Action: pushSession(sess.ModeAnytimeTest)},
		{Label: h.menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: readinessscreen.New(deps.Readiness, deps.Awards)}
			}
		}},
		{Label: h.menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trophies.New(deps.EventRepo)}
			}
		}},
		{Label: h.menuLabels[5], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.EventRepo)}
			}
		}},
		{Label: h.menuLabels[6], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by adding
	// back header and footer.
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.readyScore, h.readyGrade, h.trophyCount, h.reviewsDue, cw, compact))

	if h.bankEmpty {
		sections = append(sections, renderBankBanner(cw))
	}

	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	content := strings.Join(sections, "\n\n")
	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
