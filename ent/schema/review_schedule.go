package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewSchedule is the canonical spaced-repetition state for one question.
// Unlike the event tables this row is mutable: it is rewritten after every
// game-mode answer and deleted only on full progress reset.
type ReviewSchedule struct {
	ent.Schema
}

func (ReviewSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			NotEmpty(),
		field.String("category_id").
			NotEmpty(),
		field.Float("ease_factor").
			Default(2.5).
			Comment("SM-2 ease, never below 1.3"),
		field.Int("interval_days").
			Default(1).
			Min(1),
		field.Int("repetitions").
			Default(0).
			Min(0),
		field.Time("next_review"),
		field.Time("last_reviewed").
			Optional().
			Nillable(),
	}
}

func (ReviewSchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
		index.Fields("next_review"),
	}
}
