package achievements

import "time"

// Award represents a single achievement earned.
type Award struct {
	Type         Type
	Tier         Tier
	CategoryID   string // empty for streak/session/breadth awards
	CategoryName string // empty for streak/session/breadth awards
	SessionID    string
	Reason       string // human-readable reason, e.g. "History reached Expert"
	EarnedAt     time.Time
}
