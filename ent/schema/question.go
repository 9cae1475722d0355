package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is an ingested trivia question. A matching ReviewSchedule row is
// created with defaults at ingestion time.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			NotEmpty(),
		field.String("category_id").
			NotEmpty(),
		field.String("prompt").
			NotEmpty(),
		field.String("answer").
			NotEmpty(),
		field.Strings("choices").
			Optional().
			Comment("Multiple-choice distractors including the answer; empty for free-response"),
		field.String("difficulty").
			Default("medium").
			Comment("easy, medium, or hard"),
		field.String("explanation").
			Optional().
			Comment("Context shown after the question is answered"),
		field.String("source").
			Default("generated").
			Comment("Where the question came from: generated, imported"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
		index.Fields("difficulty"),
	}
}
