package achievements

import (
	"testing"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/mastery"
)

func TestMasteryTier(t *testing.T) {
	tests := []struct {
		level mastery.Level
		want  Tier
	}{
		{mastery.LevelNovice, TierBronze},
		{mastery.LevelIntermediate, TierBronze},
		{mastery.LevelAdvanced, TierSilver},
		{mastery.LevelExpert, TierGold},
		{mastery.LevelMaster, TierPlatinum},
	}
	for _, tt := range tests {
		if got := MasteryTier(tt.level); got != tt.want {
			t.Errorf("MasteryTier(%s) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestStreakTier(t *testing.T) {
	tests := []struct {
		length int
		want   Tier
	}{
		{5, TierBronze},
		{9, TierBronze},
		{10, TierSilver},
		{14, TierSilver},
		{15, TierGold},
		{19, TierGold},
		{20, TierPlatinum},
		{30, TierPlatinum},
	}
	for _, tt := range tests {
		if got := StreakTier(tt.length); got != tt.want {
			t.Errorf("StreakTier(%d) = %s, want %s", tt.length, got, tt.want)
		}
	}
}

func TestSessionTier(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     Tier
	}{
		{0.0, TierBronze},
		{0.49, TierBronze},
		{0.50, TierSilver},
		{0.74, TierSilver},
		{0.75, TierGold},
		{0.89, TierGold},
		{0.90, TierPlatinum},
		{1.0, TierPlatinum},
	}
	for _, tt := range tests {
		if got := SessionTier(tt.accuracy); got != tt.want {
			t.Errorf("SessionTier(%.2f) = %s, want %s", tt.accuracy, got, tt.want)
		}
	}
}

func TestBreadthTier(t *testing.T) {
	tests := []struct {
		covered int
		want    Tier
	}{
		{1, TierBronze},
		{5, TierBronze},
		{6, TierSilver},
		{7, TierSilver},
		{8, TierGold},
		{9, TierGold},
		{10, TierPlatinum},
		{14, TierPlatinum},
	}
	for _, tt := range tests {
		if got := BreadthTier(tt.covered); got != tt.want {
			t.Errorf("BreadthTier(%d) = %s, want %s", tt.covered, got, tt.want)
		}
	}
}
