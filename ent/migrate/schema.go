// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementEventsColumns holds the columns for the "achievement_events" table.
	AchievementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "achievement_type", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "category_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
	}
	// AchievementEventsTable holds the schema information for the "achievement_events" table.
	AchievementEventsTable = &schema.Table{
		Name:       "achievement_events",
		Columns:    AchievementEventsColumns,
		PrimaryKey: []*schema.Column{AchievementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[1]},
			},
			{
				Name:    "achievementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[2]},
			},
			{
				Name:    "achievementevent_achievement_type",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[3]},
			},
			{
				Name:    "achievementevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[6]},
			},
			{
				Name:    "achievementevent_tier",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[4]},
			},
		},
	}
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "category_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_spent_secs", Type: field.TypeFloat64, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_category_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_mode",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[6]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[7]},
			},
		},
	}
	// CategoryMasteriesColumns holds the columns for the "category_masteries" table.
	CategoryMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category_id", Type: field.TypeString, Unique: true},
		{Name: "total_correct", Type: field.TypeInt, Default: 0},
		{Name: "total_answered", Type: field.TypeInt, Default: 0},
		{Name: "weighted_correct_score", Type: field.TypeFloat64, Default: 0},
		{Name: "mastery_level", Type: field.TypeString, Default: "novice"},
		{Name: "last_answered", Type: field.TypeTime, Nullable: true},
	}
	// CategoryMasteriesTable holds the schema information for the "category_masteries" table.
	CategoryMasteriesTable = &schema.Table{
		Name:       "category_masteries",
		Columns:    CategoryMasteriesColumns,
		PrimaryKey: []*schema.Column{CategoryMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "categorymastery_mastery_level",
				Unique:  false,
				Columns: []*schema.Column{CategoryMasteriesColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "category_id", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "choices", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty", Type: field.TypeString, Default: "medium"},
		{Name: "explanation", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "generated"},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_category_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2]},
			},
			{
				Name:    "question_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[6]},
			},
		},
	}
	// ReviewSchedulesColumns holds the columns for the "review_schedules" table.
	ReviewSchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "category_id", Type: field.TypeString},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "next_review", Type: field.TypeTime},
		{Name: "last_reviewed", Type: field.TypeTime, Nullable: true},
	}
	// ReviewSchedulesTable holds the schema information for the "review_schedules" table.
	ReviewSchedulesTable = &schema.Table{
		Name:       "review_schedules",
		Columns:    ReviewSchedulesColumns,
		PrimaryKey: []*schema.Column{ReviewSchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewschedule_category_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewSchedulesColumns[2]},
			},
			{
				Name:    "reviewschedule_next_review",
				Unique:  false,
				Columns: []*schema.Column{ReviewSchedulesColumns[6]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_mode",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// TestAttemptEventsColumns holds the columns for the "test_attempt_events" table.
	TestAttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// TestAttemptEventsTable holds the schema information for the "test_attempt_events" table.
	TestAttemptEventsTable = &schema.Table{
		Name:       "test_attempt_events",
		Columns:    TestAttemptEventsColumns,
		PrimaryKey: []*schema.Column{TestAttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testattemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TestAttemptEventsColumns[1]},
			},
			{
				Name:    "testattemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TestAttemptEventsColumns[2]},
			},
			{
				Name:    "testattemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TestAttemptEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementEventsTable,
		AnswerEventsTable,
		CategoryMasteriesTable,
		LlmRequestEventsTable,
		QuestionsTable,
		ReviewSchedulesTable,
		SessionEventsTable,
		SnapshotsTable,
		TestAttemptEventsTable,
	}
)

func init() {
}
