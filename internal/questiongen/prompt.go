package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a trivia writer creating quiz questions for an adult general-knowledge trainer.

Rules:
- Generate a single multiple-choice trivia question for the given category and difficulty.
- Use plain ASCII text. No markdown, no Unicode symbols beyond standard punctuation.
- The question must be self-contained and have exactly one objectively correct answer.
- Provide exactly 4 choices where exactly one is correct. Distractors must be plausible entries of the same kind (e.g. other rivers, other presidents), not obvious throwaways.
- Prefer questions about enduring facts over current events that may go stale.
- The explanation should give one or two sentences of interesting context about the answer.
- Do not repeat any question from the "already generated" list, including rephrasings of the same fact.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", input.Category.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Category.Description)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	b.WriteString("\nAlready generated for this category:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
