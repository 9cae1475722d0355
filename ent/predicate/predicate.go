// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AchievementEvent is the predicate function for achievementevent builders.
type AchievementEvent func(*sql.Selector)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// CategoryMastery is the predicate function for categorymastery builders.
type CategoryMastery func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// ReviewSchedule is the predicate function for reviewschedule builders.
type ReviewSchedule func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// TestAttemptEvent is the predicate function for testattemptevent builders.
type TestAttemptEvent func(*sql.Selector)
