package questiongen

import "github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"

// Question represents a generated trivia question ready for play.
type Question struct {
	// ID uniquely identifies the question across sessions.
	ID string

	// CategoryID is the catalog category this question belongs to.
	CategoryID string

	// Prompt is the question text displayed to the player.
	// Plain ASCII text, e.g. "Which river flows through Budapest?"
	Prompt string

	// Answer is the text of the correct choice.
	Answer string

	// Choices contains exactly 4 options, one of which matches Answer.
	Choices []string

	// Difficulty is the LLM's self-assessed difficulty.
	Difficulty Difficulty

	// Explanation is a one- or two-sentence note shown after answering.
	Explanation string

	// Source records where the question came from, e.g. "llm".
	Source string
}

// Difficulty buckets a question for session planning.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulty reports whether d is a known difficulty value.
func ValidDifficulty(d Difficulty) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Category is the target category for the question.
	Category catalog.Category

	// Difficulty is the requested difficulty bucket.
	Difficulty Difficulty

	// PriorQuestions contains the Prompt of questions already generated
	// for this category. Used for deduplication in the prompt.
	PriorQuestions []string
}
