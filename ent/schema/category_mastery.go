package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CategoryMastery is the recalculated mastery record for one category.
// It is a materialized view over the answer-event log: replaced wholesale
// on every recompute, never incrementally patched.
type CategoryMastery struct {
	ent.Schema
}

func (CategoryMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("category_id").
			Unique().
			NotEmpty(),
		field.Int("total_correct").
			Default(0).
			Min(0),
		field.Int("total_answered").
			Default(0).
			Min(0),
		field.Float("weighted_correct_score").
			Default(0).
			Comment("Decay-weighted correctness, [0,100]"),
		field.String("mastery_level").
			Default("novice"),
		field.Time("last_answered").
			Optional().
			Nillable(),
	}
}

func (CategoryMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mastery_level"),
	}
}
