package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageRecord counts story generations per session per calendar day.
// Free sessions are cut off when the day's count reaches the limit.
type UsageRecord struct {
	ent.Schema
}

func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID identifying the browser session"),
		field.String("day").
			NotEmpty().
			Comment("UTC calendar day in YYYY-MM-DD form"),
		field.Int("count").
			Default(0).
			Comment("Story generations on that day"),
	}
}

func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "day").Unique(),
	}
}
