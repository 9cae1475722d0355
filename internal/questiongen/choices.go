package questiongen

import "strings"

// choiceCount is the required number of options per question.
const choiceCount = 4

// ChoicesValidator checks the multiple-choice invariants: exactly 4
// distinct options with the answer among them.
type ChoicesValidator struct{}

func (v *ChoicesValidator) Name() string { return "choices" }

func (v *ChoicesValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if len(q.Choices) != choiceCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "choices must contain exactly 4 options",
			Retryable: true,
		}
	}

	seen := make(map[string]bool, choiceCount)
	answerFound := false
	for _, c := range q.Choices {
		norm := normalizeAnswer(c)
		if norm == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "choices must not be empty",
				Retryable: true,
			}
		}
		if seen[norm] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "choices must be distinct",
				Retryable: true,
			}
		}
		seen[norm] = true
		if norm == normalizeAnswer(q.Answer) {
			answerFound = true
		}
	}

	if !answerFound {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer does not match any choice",
			Retryable: true,
		}
	}
	return nil
}

// normalizeAnswer canonicalizes an answer string for comparison.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CheckAnswer reports whether a player's selected choice matches the correct
// answer. Comparison is case- and whitespace-insensitive.
func CheckAnswer(selected, answer string) bool {
	return normalizeAnswer(selected) == normalizeAnswer(answer)
}
