package achievements

// Type identifies the category of achievement.
type Type string

const (
	TypeMastery Type = "mastery"
	TypeStreak  Type = "streak"
	TypeSession Type = "session"
	TypeBreadth Type = "breadth"
)

// AllTypes returns all achievement types in display order.
func AllTypes() []Type {
	return []Type{TypeMastery, TypeStreak, TypeSession, TypeBreadth}
}

// DisplayName returns a human-readable label for the achievement type.
func (t Type) DisplayName() string {
	switch t {
	case TypeMastery:
		return "Mastery"
	case TypeStreak:
		return "Streak"
	case TypeSession:
		return "Session"
	case TypeBreadth:
		return "Breadth"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the achievement type.
func (t Type) Icon() string {
	switch t {
	case TypeMastery:
		return "🏆"
	case TypeStreak:
		return "⚡"
	case TypeSession:
		return "🎯"
	case TypeBreadth:
		return "🗺️"
	default:
		return "✦"
	}
}
