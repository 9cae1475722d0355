package store

import (
	"context"
	"time"
)

// AnswerEventData captures one answered question for appending.
type AnswerEventData struct {
	SessionID     string
	QuestionID    string
	CategoryID    string
	Mode          string
	Correct       bool
	TimeSpentSecs float64
}

// AnswerRecord is a stored answer event as read back from the log.
type AnswerRecord struct {
	QuestionID    string
	CategoryID    string
	Mode          string
	Correct       bool
	TimeSpentSecs float64
	AnsweredAt    time.Time
	Sequence      int64
}

// TestAttemptData captures one completed anytime test for appending.
type TestAttemptData struct {
	SessionID      string
	TotalQuestions int
	CorrectCount   int
	Accuracy       float64
	DurationSecs   int
}

// TestAttemptRecord is a stored test attempt as read back from the log.
type TestAttemptRecord struct {
	SessionID      string
	TotalQuestions int
	CorrectCount   int
	Accuracy       float64
	DurationSecs   int
	AttemptedAt    time.Time
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Mode            string
	Action          string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// SessionRecord is a stored session event as read back from the log.
type SessionRecord struct {
	SessionID       string
	Mode            string
	Action          string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
	OccurredAt      time.Time
}

// AchievementEventData captures an earned achievement.
type AchievementEventData struct {
	AchievementType string
	Tier            string
	CategoryID      *string
	SessionID       string
	Reason          string
}

// AchievementRecord is a stored achievement as read back from the log.
type AchievementRecord struct {
	AchievementType string
	Tier            string
	CategoryID      string
	SessionID       string
	Reason          string
	EarnedAt        time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is a stored LLM request event as read back from the log.
type LLMEventRecord struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageStat aggregates LLM request events by purpose or by model.
// Exactly one of Purpose and Model is set, matching the grouping used.
type LLMUsageStat struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// CategoryMasteryData is the recalculated mastery record for one category.
type CategoryMasteryData struct {
	CategoryID           string
	TotalCorrect         int
	TotalAnswered        int
	WeightedCorrectScore float64
	MasteryLevel         string
	LastAnswered         *time.Time
}

// ScheduleData is the persisted spaced-repetition state for one question.
type ScheduleData struct {
	QuestionID   string
	CategoryID   string
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	NextReview   time.Time
	LastReviewed *time.Time
}

// QuestionData is an ingested trivia question.
type QuestionData struct {
	QuestionID  string
	CategoryID  string
	Prompt      string
	Answer      string
	Choices     []string
	Difficulty  string
	Explanation string
	Source      string
}

// EventRepo provides append and query access to the event log. All domain
// aggregates (mastery, readiness) are folds over the records it returns.
type EventRepo interface {
	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// CategoryAnswers returns the full answer history for one category,
	// oldest first.
	CategoryAnswers(ctx context.Context, categoryID string) ([]AnswerRecord, error)

	// AnswersSince returns all answers with timestamp >= since, oldest first.
	AnswersSince(ctx context.Context, since time.Time) ([]AnswerRecord, error)

	// AnswersByMode returns answers in the given mode with timestamp >= since.
	AnswersByMode(ctx context.Context, mode string, since time.Time) ([]AnswerRecord, error)

	// LatestAnswerTime returns the most recent answer time in a category,
	// or the zero time if the category has never been answered.
	LatestAnswerTime(ctx context.Context, categoryID string) (time.Time, error)

	// AppendTestAttempt records a completed anytime test.
	AppendTestAttempt(ctx context.Context, data TestAttemptData) error

	// TestAttemptsSince returns attempts with timestamp >= since, oldest first.
	TestAttemptsSince(ctx context.Context, since time.Time) ([]TestAttemptRecord, error)

	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentSessions returns finished sessions (completed or abandoned),
	// newest first, up to limit (0 for all).
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// AppendAchievementEvent records an earned achievement.
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// AchievementCounts returns award counts grouped by type plus the total.
	AchievementCounts(ctx context.Context) (map[string]int, int, error)

	// RecentAchievements returns earned achievements, newest first, up to
	// limit (0 for all).
	RecentAchievements(ctx context.Context, limit int) ([]AchievementRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMEvents returns LLM request events, newest first, up to
	// limit (0 for all).
	RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStat, error)
}

// MasteryRepo manages recalculated category mastery records.
type MasteryRepo interface {
	// SaveCategoryMastery upserts the record for its category.
	SaveCategoryMastery(ctx context.Context, data CategoryMasteryData) error

	// GetCategoryMastery returns the record for a category, or nil when the
	// category has never been answered.
	GetCategoryMastery(ctx context.Context, categoryID string) (*CategoryMasteryData, error)

	// AllCategoryMastery returns every stored record.
	AllCategoryMastery(ctx context.Context) ([]CategoryMasteryData, error)
}

// ScheduleRepo manages per-question spaced-repetition state.
type ScheduleRepo interface {
	// SaveSchedule upserts the schedule for its question.
	SaveSchedule(ctx context.Context, data ScheduleData) error

	// GetSchedule returns the schedule for a question, or nil if untracked.
	GetSchedule(ctx context.Context, questionID string) (*ScheduleData, error)

	// AllSchedules returns every stored schedule.
	AllSchedules(ctx context.Context) ([]ScheduleData, error)
}

// QuestionRepo manages ingested questions.
type QuestionRepo interface {
	// SaveQuestion upserts a question by its question ID.
	SaveQuestion(ctx context.Context, data QuestionData) error

	// GetQuestion returns a question, or nil if unknown.
	GetQuestion(ctx context.Context, questionID string) (*QuestionData, error)

	// QuestionsByCategory returns all questions in one category.
	QuestionsByCategory(ctx context.Context, categoryID string) ([]QuestionData, error)

	// CountByCategory returns question counts grouped by category.
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// SnapshotData captures derived learner state at a point in time.
type SnapshotData struct {
	Version   int                   `json:"version"`
	Mastery   []CategoryMasteryData `json:"mastery,omitempty"`
	Schedules []ScheduleData        `json:"schedules,omitempty"`
}

// Snapshot represents a point-in-time capture of derived state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages derived-state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
