package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoryEvent records every story generation request a session makes.
type StoryEvent struct {
	ent.Schema
}

func (StoryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StoryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the requesting session"),
		field.String("hero").
			Default("").
			Comment("Hero the story was told with"),
		field.String("problem").
			NotEmpty().
			Comment("The submitted math problem text"),
		field.String("problem_type").
			Default("mixed").
			Comment("Classified kind: addition, division, equations, ..."),
		field.String("age_group").
			Default("8-10").
			Comment("Age bracket the content was tuned for"),
		field.Bool("solved_locally").
			Default(false).
			Comment("Whether the deterministic solver produced the answer"),
		field.String("answer").
			Default("").
			Comment("Verified answer when one exists"),
		field.String("source").
			Default("fallback").
			Comment("Where the story came from: ai or fallback"),
	}
}

func (StoryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("problem_type"),
	}
}
