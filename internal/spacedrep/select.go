package spacedrep

import (
	"sort"
	"time"
)

// easePriorityScale converts inverse ease into the same magnitude as
// overdue milliseconds, so a hard question (low ease) outranks a merely
// old one.
const easePriorityScale = 1_000_000.0

// Priority scores a due question for review selection. Higher is more
// urgent.
func Priority(s Schedule, now time.Time) float64 {
	ease := s.EaseFactor
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}
	return float64(s.OverdueMillis(now)) + (1.0/ease)*easePriorityScale
}

// SelectDue returns up to limit due schedules ordered by descending
// priority. Question ID breaks ties for a stable order. A limit <= 0 means
// no cap.
func SelectDue(schedules []Schedule, now time.Time, limit int) []Schedule {
	var due []Schedule
	for _, s := range schedules {
		if s.IsDue(now) {
			due = append(due, s)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		pi, pj := Priority(due[i], now), Priority(due[j], now)
		if pi != pj {
			return pi > pj
		}
		return due[i].QuestionID < due[j].QuestionID
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}
