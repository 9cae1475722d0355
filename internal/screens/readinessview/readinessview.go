package readinessview

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/readiness"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/router"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screen"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/components"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/layout"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/theme"
)

// scoreMsg carries the computed readiness score.
type scoreMsg struct {
	Score readiness.Score
	Err   error
}

// ReadinessScreen displays the readiness dashboard.
type ReadinessScreen struct {
	svc      *readiness.Service
	awards   *achievements.Service
	score    *readiness.Score
	newAward *achievements.Award
	errMsg   string
}

var _ screen.Screen = (*ReadinessScreen)(nil)
var _ screen.KeyHintProvider = (*ReadinessScreen)(nil)

// New creates the readiness dashboard screen.
func New(svc *readiness.Service, awards *achievements.Service) *ReadinessScreen {
	return &ReadinessScreen{svc: svc, awards: awards}
}

func (r *ReadinessScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if r.svc == nil {
			return scoreMsg{Err: fmt.Errorf("readiness scoring unavailable")}
		}
		score, err := r.svc.Compute(context.Background(), time.Now())
		return scoreMsg{Score: score, Err: err}
	}
}

func (r *ReadinessScreen) Title() string {
	return "Readiness"
}

func (r *ReadinessScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ReadinessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scoreMsg:
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
			return r, nil
		}
		score := msg.Score
		r.score = &score
		r.checkBreadthMilestone()
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

// checkBreadthMilestone grants a breadth achievement the first time a
// coverage milestone is crossed. Counting prior breadth awards keeps a
// milestone from being granted twice.
func (r *ReadinessScreen) checkBreadthMilestone() {
	if r.awards == nil || r.score == nil {
		return
	}
	covered := r.score.Breadth.CoveredCategories
	reached := breadthMilestones(covered)
	if reached == 0 {
		return
	}

	ctx := context.Background()
	counts, _, err := r.awards.Counts(ctx)
	if err != nil {
		return
	}
	if counts[string(achievements.TypeBreadth)] < reached {
		r.newAward = r.awards.AwardBreadth(ctx, covered, "")
	}
}

// breadthMilestones returns how many coverage milestones a covered-category
// count has crossed.
func breadthMilestones(covered int) int {
	switch {
	case covered >= 10:
		return 3
	case covered >= 8:
		return 2
	case covered >= readiness.MinCoveredCategories:
		return 1
	}
	return 0
}

func (r *ReadinessScreen) View(width, height int) string {
	if r.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n  Error: %s", r.errMsg))
	}
	if r.score == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Computing readiness...")
	}

	score := r.score
	var b strings.Builder

	// Headline score and grade.
	headline := fmt.Sprintf("Readiness: %.0f / 100   Grade %s", score.OverallScore, score.LetterGrade)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(gradeColor(score.LetterGrade)).
		Bold(true).
		Render(headline))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderBar(score.OverallScore, 40)))
	b.WriteString("\n\n")

	if score.TestReady {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("✓ You look ready for the real thing"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Keep practicing, not quite test-ready yet"))
	}
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", minInt(width-8, 60)))

	// Score components.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Components")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, c := range score.Components {
		line := fmt.Sprintf("  %-14s %s %5.1f   (weight %.0f%%)",
			c.Name, renderBar(c.Score, 20), c.Score, c.Weight*100)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Breadth.
	breadth := score.Breadth
	breadthLine := fmt.Sprintf("Breadth: %d/%d categories covered (need %d for full credit)",
		breadth.CoveredCategories, breadth.TotalCategories, breadth.RequiredCategories)
	breadthStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if breadth.CoveredCategories < readiness.MinCoveredCategories {
		breadthStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, breadthStyle.Render(breadthLine)))
	b.WriteString("\n\n")

	// Weak categories.
	if len(score.Weak) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Needs work")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, w := range score.Weak {
			var detail string
			if w.Answered == 0 {
				detail = "not yet practiced"
			} else {
				detail = fmt.Sprintf("%d/%d correct (%.0f%%)", w.Correct, w.Answered, w.Accuracy*100)
			}
			line := fmt.Sprintf("  %-18s %s", w.Name, detail)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Error).Render(line)))
			b.WriteString("\n")
		}
	}

	// Freshly earned breadth award.
	if r.newAward != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(fmt.Sprintf("%s %s %s earned! %s",
				r.newAward.Type.Icon(),
				r.newAward.Tier.DisplayName(),
				r.newAward.Type.DisplayName(),
				r.newAward.Reason)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderBar renders a fixed-width progress bar for a 0-100 score.
func renderBar(score float64, width int) string {
	return components.NewProgressBar("", score/100, false, width).View()
}

func gradeColor(g readiness.Grade) color.Color {
	switch g {
	case readiness.GradeA:
		return theme.Success
	case readiness.GradeB:
		return theme.Secondary
	case readiness.GradeC:
		return theme.ArcadeYellow
	case readiness.GradeD:
		return theme.Accent
	default:
		return theme.Error
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
