// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AppUser is the predicate function for appuser builders.
type AppUser func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PurchaseEvent is the predicate function for purchaseevent builders.
type PurchaseEvent func(*sql.Selector)

// StoryEvent is the predicate function for storyevent builders.
type StoryEvent func(*sql.Selector)

// UsageRecord is the predicate function for usagerecord builders.
type UsageRecord func(*sql.Selector)
