package studynotes

import (
	"fmt"
	"strings"
)

const noteSystemPrompt = `You are a trivia coach preparing a player for a general-knowledge quiz. The player is weak in one category and needs a short, high-yield study note.`

func buildNoteUserMessage(input NoteInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", input.Category.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Category.Description)
	fmt.Fprintf(&b, "Player accuracy in this category: %.0f%%\n", input.Accuracy*100)
	if input.MasteryLevel != "" {
		fmt.Fprintf(&b, "Mastery level: %s\n", input.MasteryLevel)
	}

	b.WriteString("\nQuestions recently missed:\n")
	if len(input.RecentMisses) == 0 {
		b.WriteString("None\n")
	} else {
		for _, m := range input.RecentMisses {
			fmt.Fprintf(&b, "- %s\n", m)
		}
	}

	b.WriteString(`
Instructions:
Create a study note that:
1. Gives a 3-5 sentence overview of the most commonly tested ground in this category. Where questions were missed, address that ground directly.
2. Lists 4-6 high-yield facts, one sentence each, that would each plausibly anchor a quiz question.
3. Poses one practice question drawing on the facts above, with its answer and a one-sentence explanation.
4. Uses plain ASCII text. No markdown formatting.`)

	return b.String()
}
