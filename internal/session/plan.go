package session

import "github.com/jmsone/JeopardyTrainer-sub000/internal/store"

// PlanReason records why a question was included in the plan.
type PlanReason string

const (
	// ReasonReview marks a question whose spaced-repetition review is due.
	ReasonReview PlanReason = "review"

	// ReasonWeak marks a question from a category flagged for remediation.
	ReasonWeak PlanReason = "weak"

	// ReasonBreadth marks a question chosen to widen category coverage.
	ReasonBreadth PlanReason = "breadth"
)

// PlanSlot is a single question in the session plan.
type PlanSlot struct {
	Question store.QuestionData
	Reason   PlanReason
}

// Plan is the ordered list of questions for a session.
type Plan struct {
	Mode  Mode
	Slots []PlanSlot
}

// Game-mode slot mix. Review gets first claim on slots; unused quota
// spills into the later pools.
const (
	reviewShare = 0.4
	weakShare   = 0.3
)
