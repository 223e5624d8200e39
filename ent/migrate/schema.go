// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppUsersColumns holds the columns for the "app_users" table.
	AppUsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "stripe_customer_id", Type: field.TypeString, Default: ""},
		{Name: "stripe_subscription_id", Type: field.TypeString, Default: ""},
		{Name: "subscription_status", Type: field.TypeString, Default: "free"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AppUsersTable holds the schema information for the "app_users" table.
	AppUsersTable = &schema.Table{
		Name:       "app_users",
		Columns:    AppUsersColumns,
		PrimaryKey: []*schema.Column{AppUsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appuser_subscription_status",
				Unique:  false,
				Columns: []*schema.Column{AppUsersColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PurchaseEventsColumns holds the columns for the "purchase_events" table.
	PurchaseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "price", Type: field.TypeInt},
		{Name: "coins_after", Type: field.TypeInt},
	}
	// PurchaseEventsTable holds the schema information for the "purchase_events" table.
	PurchaseEventsTable = &schema.Table{
		Name:       "purchase_events",
		Columns:    PurchaseEventsColumns,
		PrimaryKey: []*schema.Column{PurchaseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "purchaseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PurchaseEventsColumns[1]},
			},
			{
				Name:    "purchaseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PurchaseEventsColumns[2]},
			},
			{
				Name:    "purchaseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PurchaseEventsColumns[3]},
			},
			{
				Name:    "purchaseevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{PurchaseEventsColumns[4]},
			},
		},
	}
	// StoryEventsColumns holds the columns for the "story_events" table.
	StoryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "hero", Type: field.TypeString, Default: ""},
		{Name: "problem", Type: field.TypeString},
		{Name: "problem_type", Type: field.TypeString, Default: "mixed"},
		{Name: "age_group", Type: field.TypeString, Default: "8-10"},
		{Name: "solved_locally", Type: field.TypeBool, Default: false},
		{Name: "answer", Type: field.TypeString, Default: ""},
		{Name: "source", Type: field.TypeString, Default: "fallback"},
	}
	// StoryEventsTable holds the schema information for the "story_events" table.
	StoryEventsTable = &schema.Table{
		Name:       "story_events",
		Columns:    StoryEventsColumns,
		PrimaryKey: []*schema.Column{StoryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "storyevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StoryEventsColumns[1]},
			},
			{
				Name:    "storyevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StoryEventsColumns[2]},
			},
			{
				Name:    "storyevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{StoryEventsColumns[3]},
			},
			{
				Name:    "storyevent_problem_type",
				Unique:  false,
				Columns: []*schema.Column{StoryEventsColumns[6]},
			},
		},
	}
	// UsageRecordsColumns holds the columns for the "usage_records" table.
	UsageRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "day", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt, Default: 0},
	}
	// UsageRecordsTable holds the schema information for the "usage_records" table.
	UsageRecordsTable = &schema.Table{
		Name:       "usage_records",
		Columns:    UsageRecordsColumns,
		PrimaryKey: []*schema.Column{UsageRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_session_id_day",
				Unique:  true,
				Columns: []*schema.Column{UsageRecordsColumns[1], UsageRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppUsersTable,
		LlmRequestEventsTable,
		PurchaseEventsTable,
		StoryEventsTable,
		UsageRecordsTable,
	}
)

func init() {
}
