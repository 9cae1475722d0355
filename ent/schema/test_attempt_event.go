package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestAttemptEvent records one completed anytime test: a fixed-size,
// time-boxed self-assessment. Attempt accuracy feeds the readiness score's
// heaviest component.
type TestAttemptEvent struct {
	ent.Schema
}

func (TestAttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TestAttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Int("total_questions").
			Positive(),
		field.Int("correct_count").
			Min(0),
		field.Float("accuracy").
			Comment("correct_count / total_questions, [0,1]"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock length of the attempt"),
	}
}

func (TestAttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
