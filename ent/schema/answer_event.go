package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered trivia question. Events are
// immutable once appended; every mastery and readiness figure is a fold
// over this log.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Question that was answered"),
		field.String("category_id").
			NotEmpty().
			Comment("Category the question belongs to"),
		field.String("mode").
			NotEmpty().
			Comment("game, rapid_fire, or anytime_test"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Float("time_spent_secs").
			Default(0).
			Comment("Seconds from question display to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("category_id"),
		index.Fields("mode"),
		index.Fields("correct"),
	}
}
