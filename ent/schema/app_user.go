package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AppUser ties a browser session to its subscription state. Unlike the
// event tables this is mutable row-per-user state: the Stripe webhook
// updates it in place.
type AppUser struct {
	ent.Schema
}

func (AppUser) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID identifying the browser session"),
		field.String("stripe_customer_id").
			Default("").
			Comment("Stripe customer, empty until checkout"),
		field.String("stripe_subscription_id").
			Default("").
			Comment("Stripe subscription, empty until checkout"),
		field.String("subscription_status").
			Default("free").
			Comment("free, active, or trialing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (AppUser) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subscription_status"),
	}
}
