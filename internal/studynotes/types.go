package studynotes

import "github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"

// Note is an LLM-generated study note for a weak category.
type Note struct {
	CategoryID       string
	Title            string
	Overview         string
	KeyFacts         []string
	PracticeQuestion PracticeQuestion
}

// PracticeQuestion is a mini-quiz embedded in a study note.
type PracticeQuestion struct {
	Prompt      string
	Answer      string
	Explanation string
}

// NoteInput holds all context needed to generate a study note.
type NoteInput struct {
	Category catalog.Category

	// Accuracy is the recent-window correct fraction for this category.
	Accuracy float64

	// MasteryLevel is the current stored mastery level, e.g. "novice".
	MasteryLevel string

	// RecentMisses contains prompts of questions the player recently got
	// wrong in this category. Up to a handful; empty when unanswered.
	RecentMisses []string
}
