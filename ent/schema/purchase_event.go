package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PurchaseEvent records a successful shop purchase.
type PurchaseEvent struct {
	ent.Schema
}

func (PurchaseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PurchaseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the buying session"),
		field.String("item_id").
			NotEmpty().
			Comment("Shop item identifier, e.g. fire_sword"),
		field.Int("price").
			Comment("Coins paid"),
		field.Int("coins_after").
			Comment("Session coin balance after the purchase"),
	}
}

func (PurchaseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
	}
}
