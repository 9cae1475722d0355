package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records the start or end of a practice session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("mode").
			NotEmpty().
			Comment("game, rapid_fire, or anytime_test"),
		field.String("action").
			NotEmpty().
			Comment("started, completed, or abandoned"),
		field.Int("questions_served").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("duration_secs").
			Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode"),
		index.Fields("action"),
	}
}
