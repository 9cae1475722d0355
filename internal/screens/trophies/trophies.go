package trophies

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/router"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/screen"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/layout"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/theme"
)

type trophiesLoadedMsg struct {
	Records []store.AchievementRecord
	Err     error
}

// TrophyScreen displays the player's earned achievements.
type TrophyScreen struct {
	eventRepo    store.EventRepo
	all          []store.AchievementRecord
	selectedType int // index into achievements.AllTypes
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*TrophyScreen)(nil)
var _ screen.KeyHintProvider = (*TrophyScreen)(nil)

// New creates a new TrophyScreen.
func New(eventRepo store.EventRepo) *TrophyScreen {
	return &TrophyScreen{
		eventRepo: eventRepo,
	}
}

func (s *TrophyScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.eventRepo.RecentAchievements(context.Background(), 0)
		return trophiesLoadedMsg{Records: records, Err: err}
	}
}

func (s *TrophyScreen) Title() string {
	return "Trophy Case"
}

func (s *TrophyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch type"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TrophyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case trophiesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.all = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			types := achievements.AllTypes()
			s.selectedType = (s.selectedType + 1) % len(types)
			s.scrollOffset = 0
			return s, nil
		case "shift+tab":
			types := achievements.AllTypes()
			s.selectedType = (s.selectedType - 1 + len(types)) % len(types)
			s.scrollOffset = 0
			return s, nil
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			filtered := s.filtered()
			if s.scrollOffset < len(filtered)-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *TrophyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading trophies...")
	}

	var b strings.Builder

	// Total count.
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nTotal: %d trophies\n", len(s.all))))
	b.WriteString("\n")

	// Type tabs.
	types := achievements.AllTypes()
	var tabs []string
	for i, t := range types {
		count := s.countByType(t)
		label := fmt.Sprintf("%s %s (%d)", t.Icon(), t.DisplayName(), count)
		if i == s.selectedType {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	tabLine := strings.Join(tabs, "     ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tabLine))
	b.WriteString("\n\n")

	// Divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Filtered trophy list.
	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No trophies of this type yet"))
		return b.String()
	}

	// Show visible items within height constraint.
	maxVisible := height - 10
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	end := start + maxVisible
	if end > len(filtered) {
		end = len(filtered)
	}

	for i := start; i < end; i++ {
		rec := filtered[i]
		tier := achievements.Tier(rec.Tier)
		dateStr := rec.EarnedAt.Format("Jan 02, 2006")

		line := fmt.Sprintf("  %-10s %-36s %s", tier.DisplayName(), rec.Reason, dateStr)

		style := lipgloss.NewStyle().Foreground(tierColor(tier))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

func (s *TrophyScreen) filtered() []store.AchievementRecord {
	types := achievements.AllTypes()
	selected := string(types[s.selectedType])
	var filtered []store.AchievementRecord
	for _, rec := range s.all {
		if rec.AchievementType == selected {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func (s *TrophyScreen) countByType(t achievements.Type) int {
	count := 0
	for _, rec := range s.all {
		if rec.AchievementType == string(t) {
			count++
		}
	}
	return count
}

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
