package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/studynotes"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/ui/theme"
)

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	state := s.state
	q := state.CurrentQuestion()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading question...")
	}

	var b strings.Builder

	// Category info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", catalog.CategoryName(q.CategoryID)))
	if q.Difficulty != "" {
		infoLeft += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  (%s)", q.Difficulty))
	}

	rightParts := fmt.Sprintf("Q %d/%d  %s %d",
		state.Index+1,
		len(state.Plan.Slots),
		lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
		state.TotalCorrect,
	)
	if state.ConsecutiveCorrect >= 2 {
		rightParts += lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("  🔥%d", state.ConsecutiveCorrect))
	}
	if s.deps.Mode.QuestionTimeLimitSecs() > 0 {
		timerStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan)
		if s.timeLeft <= 5 {
			timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		rightParts += timerStyle.Render(fmt.Sprintf("  ⏱ %ds", s.timeLeft))
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(rightParts)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Prompt (centered, wrapped).
	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(q.Prompt)))
	b.WriteString("\n\n")

	b.WriteString(s.renderChoices(width))

	return b.String()
}

// renderChoices renders the multiple choice options.
func (s *SessionScreen) renderChoices(width int) string {
	q := s.state.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder
	for i, choice := range q.Choices {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter")
	b.WriteString(selectLine)

	// Center the whole block.
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the feedback overlay.
func (s *SessionScreen) renderFeedback(width, height int) string {
	state := s.state
	q := state.CurrentQuestion()

	var b strings.Builder
	b.WriteString("\n\n")

	centered := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	if state.LastAnswerCorrect {
		centered(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "Correct!")
	} else {
		heading := "Not quite"
		if state.TimeExpired {
			heading = "Time's up!"
		}
		centered(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), heading)
		if q != nil {
			centered(lipgloss.NewStyle().Foreground(theme.TextDim),
				fmt.Sprintf("Correct answer: %s", q.Answer))
		}
	}

	b.WriteString("\n")

	// Explanation.
	if state.LastExplanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		exp := expStyle.Render(state.LastExplanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	// Mastery level-up notification.
	if lu := state.LevelUp; lu != nil {
		centered(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true), "Level up!")
		centered(lipgloss.NewStyle().Foreground(theme.Text),
			fmt.Sprintf("%s reached %s", lu.CategoryName, lu.Level.DisplayName()))
		b.WriteString("\n")
	}

	// Achievement earned.
	if aw := state.PendingAward; aw != nil {
		centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
			fmt.Sprintf("%s %s %s", aw.Type.Icon(), aw.Tier.DisplayName(), aw.Type.DisplayName()))
		if aw.Reason != "" {
			centered(lipgloss.NewStyle().Foreground(theme.Text), aw.Reason)
		}
		b.WriteString("\n")
	}

	if state.RecordErr != nil {
		centered(lipgloss.NewStyle().Foreground(theme.Error),
			fmt.Sprintf("⚠ progress not saved: %v", state.RecordErr))
		b.WriteString("\n")
	}

	if s.noteWaiting {
		centered(lipgloss.NewStyle().Foreground(theme.TextDim), "Study note is still being written...")
	} else if state.PendingNote {
		centered(lipgloss.NewStyle().Foreground(theme.ArcadeCyan), "Press N to read a study note for this category")
	}

	centered(lipgloss.NewStyle().Foreground(theme.TextDim), "Press any key to continue...")

	return b.String()
}

// renderNote renders a study note overlay.
func renderNote(note *studynotes.Note, width int) string {
	if note == nil {
		return ""
	}

	bodyWidth := min(width-8, 70)
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeCyan).
		Bold(true).
		Render("📖 " + note.Title))
	b.WriteString("\n\n")

	overview := lipgloss.NewStyle().
		Width(bodyWidth).
		Foreground(theme.Text).
		Render(note.Overview)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, overview))
	b.WriteString("\n\n")

	if len(note.KeyFacts) > 0 {
		var facts strings.Builder
		for _, fact := range note.KeyFacts {
			facts.WriteString("• " + fact + "\n")
		}
		factBlock := lipgloss.NewStyle().
			Width(bodyWidth).
			Foreground(theme.Text).
			Render(strings.TrimRight(facts.String(), "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, factBlock))
		b.WriteString("\n\n")
	}

	if pq := note.PracticeQuestion; pq.Prompt != "" {
		quiz := lipgloss.NewStyle().
			Width(bodyWidth).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Quiz yourself: %s\nAnswer: %s", pq.Prompt, pq.Answer))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, quiz))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key for the next question..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far are already saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int, spin string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + spin + " Preparing your session...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
