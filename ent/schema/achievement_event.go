package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementEvent records an earned achievement.
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("achievement_type").NotEmpty(),
		field.String("tier").NotEmpty(),
		field.String("category_id").Optional().Nillable(),
		field.String("session_id").NotEmpty(),
		field.String("reason").NotEmpty(),
	}
}

func (AchievementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("achievement_type"),
		index.Fields("session_id"),
		index.Fields("tier"),
	}
}
