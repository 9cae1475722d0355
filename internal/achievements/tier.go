package achievements

import "github.com/jmsone/JeopardyTrainer-sub000/internal/mastery"

// Tier represents the prestige level of an achievement.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// AllTiers returns all tiers in order from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierBronze, TierSilver, TierGold, TierPlatinum}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	case TierPlatinum:
		return "Platinum"
	default:
		return string(t)
	}
}

// MasteryTier returns the tier awarded when a category reaches a level.
func MasteryTier(level mastery.Level) Tier {
	switch level {
	case mastery.LevelMaster:
		return TierPlatinum
	case mastery.LevelExpert:
		return TierGold
	case mastery.LevelAdvanced:
		return TierSilver
	default:
		return TierBronze
	}
}

// StreakTier returns the tier for a given streak length.
func StreakTier(length int) Tier {
	switch {
	case length >= 20:
		return TierPlatinum
	case length >= 15:
		return TierGold
	case length >= 10:
		return TierSilver
	default:
		return TierBronze
	}
}

// SessionTier returns the tier for a given session accuracy (0.0-1.0).
func SessionTier(accuracy float64) Tier {
	switch {
	case accuracy >= 0.90:
		return TierPlatinum
	case accuracy >= 0.75:
		return TierGold
	case accuracy >= 0.50:
		return TierSilver
	default:
		return TierBronze
	}
}

// BreadthTier returns the tier for a covered-category milestone.
func BreadthTier(covered int) Tier {
	switch {
	case covered >= 10:
		return TierPlatinum
	case covered >= 8:
		return TierGold
	case covered >= 6:
		return TierSilver
	default:
		return TierBronze
	}
}
