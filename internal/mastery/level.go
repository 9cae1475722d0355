// Package mastery computes per-category mastery from the answer-event
// history. The weighted score is always a pure function of the full correct-
// answer history in a category: every new answer triggers a recompute from
// scratch rather than an incremental patch, because decay weights shift
// continuously with "now" and an incremental update would drift.
package mastery

// Level is the discrete mastery tier for a category.
type Level string

const (
	LevelNovice       Level = "novice"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
	LevelMaster       Level = "master"
)

// Tier thresholds. Each bound is inclusive on the lower side: a score of
// exactly 40 is advanced, 39.99 is intermediate.
const (
	IntermediateThreshold = 20.0
	AdvancedThreshold     = 40.0
	ExpertThreshold       = 60.0
	MasterThreshold       = 80.0
)

// LevelForScore maps a weighted correctness score to its mastery level.
func LevelForScore(score float64) Level {
	switch {
	case score >= MasterThreshold:
		return LevelMaster
	case score >= ExpertThreshold:
		return LevelExpert
	case score >= AdvancedThreshold:
		return LevelAdvanced
	case score >= IntermediateThreshold:
		return LevelIntermediate
	default:
		return LevelNovice
	}
}

// AllLevels returns the levels in ascending order, for display.
func AllLevels() []Level {
	return []Level{LevelNovice, LevelIntermediate, LevelAdvanced, LevelExpert, LevelMaster}
}

// DisplayName returns a capitalized label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelNovice:
		return "Novice"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	case LevelExpert:
		return "Expert"
	case LevelMaster:
		return "Master"
	default:
		return string(l)
	}
}
