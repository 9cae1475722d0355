package history

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
	"github.com/jmsone/JeopardyTrainer-sub000/internal/session"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/layout"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Trophies map[string][]store.AchievementRecord // sessionID → trophies
	Err      error
}

// HistoryScreen displays past sessions and the trophies earned in them.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionRecord
	trophies  map[string][]store.AchievementRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.eventRepo.RecentSessions(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Load all achievements and group by session.
		all, err := s.eventRepo.RecentAchievements(ctx, 0)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions, Trophies: make(map[string][]store.AchievementRecord)}
		}

		bySession := make(map[string][]store.AchievementRecord)
		for _, rec := range all {
			bySession[rec.SessionID] = append(bySession[rec.SessionID], rec)
		}

		return historyLoadedMsg{Sessions: sessions, Trophies: bySession}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.trophies = msg.Trophies
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.OccurredAt.Format("Jan 02, 2006")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		var accuracy float64
		if sess.QuestionsServed > 0 {
			accuracy = float64(sess.CorrectAnswers) / float64(sess.QuestionsServed) * 100
		}

		modeStr := session.Mode(sess.Mode).DisplayName()
		abandonedStr := ""
		if sess.Action == "abandoned" {
			abandonedStr = "  (abandoned)"
		}

		trophyStr := ""
		if n := len(s.trophies[sess.SessionID]); n > 0 {
			trophyStr = fmt.Sprintf("  %d troph", n)
			if n == 1 {
				trophyStr += "y"
			} else {
				trophyStr += "ies"
			}
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-12s %s  %d questions  %.0f%% accuracy%s%s",
			prefix, dateStr, modeStr, durationStr, sess.QuestionsServed, accuracy, trophyStr, abandonedStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		if sess.Action == "abandoned" {
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Show expanded trophy details.
		if s.expanded[i] {
			sessionTrophies := s.trophies[sess.SessionID]
			if len(sessionTrophies) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No trophies this session")))
				b.WriteString("\n")
			} else {
				for _, rec := range sessionTrophies {
					achType := achievements.Type(rec.AchievementType)
					tier := achievements.Tier(rec.Tier)
					trophyLine := fmt.Sprintf("    %s %s %s — %s",
						achType.Icon(), tier.DisplayName(), achType.DisplayName(), rec.Reason)
					b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
						lipgloss.NewStyle().Foreground(tierColor(tier)).Render(trophyLine)))
					b.WriteString("\n")
				}
			}
		}
	}

	return b.String()
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
