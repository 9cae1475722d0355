package achievements

// BaseStreakThreshold is the first streak length that earns an award.
const BaseStreakThreshold = 5

// NextStreakThreshold returns the next streak milestone above the current streak length.
func NextStreakThreshold(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, award every 5.
	return ((current / 5) + 1) * 5
}

// IsStreakMilestone reports whether a streak length earns an award.
func IsStreakMilestone(length int) bool {
	if length < BaseStreakThreshold {
		return false
	}
	return length%5 == 0
}
