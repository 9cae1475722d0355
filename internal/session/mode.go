package session

// Mode identifies the practice mode a session runs in.
type Mode string

const (
	// ModeGame is the default open-ended practice mode. Game answers
	// drive review scheduling.
	ModeGame Mode = "game"

	// ModeRapidFire is a short, per-question-timed burst.
	ModeRapidFire Mode = "rapid_fire"

	// ModeAnytimeTest is a fixed-size self-assessment. Completing one
	// records a test attempt for readiness scoring.
	ModeAnytimeTest Mode = "anytime_test"
)

// AllModes returns the practice modes in display order.
func AllModes() []Mode {
	return []Mode{ModeGame, ModeRapidFire, ModeAnytimeTest}
}

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeGame:
		return "Game"
	case ModeRapidFire:
		return "Rapid Fire"
	case ModeAnytimeTest:
		return "Anytime Test"
	default:
		return string(m)
	}
}

// DefaultSize returns the number of questions a session of this mode serves.
func (m Mode) DefaultSize() int {
	switch m {
	case ModeRapidFire:
		return 10
	case ModeAnytimeTest:
		return 20
	default:
		return 15
	}
}

// QuestionTimeLimitSecs returns the per-question time limit, 0 for untimed.
func (m Mode) QuestionTimeLimitSecs() int {
	switch m {
	case ModeRapidFire:
		return 10
	case ModeAnytimeTest:
		return 30
	default:
		return 0
	}
}
