package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/router"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screen"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/session"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/layout"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop both summary and session screens to get back to home.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return s, tea.Batch(pop, pop)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	// Title.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s complete!", sum.Mode.DisplayName())))
	b.WriteString("\n\n")

	// Duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	durationStr := fmt.Sprintf("%d:%02d", mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %s", durationStr)))
	b.WriteString("\n\n")

	// Stats line.
	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	statsLine := fmt.Sprintf("Questions: %d      Correct: %d      Accuracy: %s      Best streak: %d",
		sum.TotalQuestions, sum.TotalCorrect, accuracy, sum.BestStreak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Per-category results, weakest first.
	if len(sum.CategoryResults) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Categories")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, cr := range sum.CategoryResults {
			name := cr.CategoryName
			if name == "" {
				name = cr.CategoryID
			}
			pct := 0.0
			if cr.Attempted > 0 {
				pct = float64(cr.Correct) / float64(cr.Attempted)
			}
			line := fmt.Sprintf("  %-18s %d/%d correct   %.0f%%",
				name, cr.Correct, cr.Attempted, pct*100)

			style := lipgloss.NewStyle().Foreground(accuracyColor(pct))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Render(line)))
			b.WriteString("\n")
		}
	}

	// Achievements section.
	if len(sum.Awards) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Achievements")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, aw := range sum.Awards {
			line := fmt.Sprintf("  %s %s %s — %s",
				aw.Type.Icon(),
				aw.Tier.DisplayName(),
				aw.Type.DisplayName(),
				aw.Reason)
			style := lipgloss.NewStyle().Foreground(tierColor(aw.Tier))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// accuracyColor maps a per-category accuracy to a feedback color.
func accuracyColor(pct float64) color.Color {
	switch {
	case pct >= 0.8:
		return theme.Success
	case pct >= 0.5:
		return theme.Text
	default:
		return theme.Error
	}
}

// tierColor returns the theme color for an achievement tier.
func tierColor(t achievements.Tier) color.Color {
	switch t {
	case achievements.TierBronze:
		return theme.Text
	case achievements.TierSilver:
		return theme.Secondary
	case achievements.TierGold:
		return theme.ArcadeYellow
	case achievements.TierPlatinum:
		return theme.Primary
	default:
		return theme.Text
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
