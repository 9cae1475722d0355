package questiongen

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt is empty",
			Retryable: true,
		}
	}
	if len(q.Prompt) > 400 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt exceeds 400 characters",
			Retryable: true,
		}
	}
	if q.Answer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is empty",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 600 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 600 characters",
			Retryable: true,
		}
	}
	if !ValidDifficulty(q.Difficulty) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be \"easy\", \"medium\", or \"hard\"",
			Retryable: true,
		}
	}
	return nil
}
