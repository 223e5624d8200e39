package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// StoryEventData captures one story generation request.
type StoryEventData struct {
	SessionID     string
	Hero          string
	Problem       string
	ProblemType   string
	AgeGroup      string
	SolvedLocally bool
	Answer        string
	Source        string // "ai" or "fallback"
}

// StoryRecord is a persisted story event as read back from the store.
type StoryRecord struct {
	Sequence    int64     `json:"sequence"`
	Timestamp   time.Time `json:"timestamp"`
	Hero        string    `json:"hero"`
	Problem     string    `json:"problem"`
	ProblemType string    `json:"problem_type"`
	Answer      string    `json:"answer"`
}

// PurchaseEventData captures one successful shop purchase.
type PurchaseEventData struct {
	SessionID  string
	ItemID     string
	Price      int
	CoinsAfter int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a persisted LLM request event as read back from the store.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendStory records a story generation event.
	AppendStory(ctx context.Context, data StoryEventData) error

	// RecentStories returns the newest story events for a session,
	// newest first, up to limit.
	RecentStories(ctx context.Context, sessionID string, limit int) ([]StoryRecord, error)

	// AppendPurchase records a shop purchase event.
	AppendPurchase(ctx context.Context, data PurchaseEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single LLM event by row id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// AppUser is a session's subscription state.
type AppUser struct {
	SessionID            string
	StripeCustomerID     string
	StripeSubscriptionID string
	SubscriptionStatus   string
	CreatedAt            time.Time
}

// Premium reports whether the user's subscription entitles unlimited use.
func (u AppUser) Premium() bool {
	return u.SubscriptionStatus == "active" || u.SubscriptionStatus == "trialing"
}

// FreeDailyLimit is the number of story generations a free session gets
// per UTC calendar day.
const FreeDailyLimit = 6

// AppUserRepo manages per-session subscription and usage state.
type AppUserRepo interface {
	// GetOrCreate returns the user row for the session, creating a free
	// one on first sight.
	GetOrCreate(ctx context.Context, sessionID string) (*AppUser, error)

	// UpdateSubscription sets the Stripe ids and status for the session.
	UpdateSubscription(ctx context.Context, sessionID, customerID, subscriptionID, status string) error

	// IncrementUsage bumps the session's counter for the given day and
	// returns the new count.
	IncrementUsage(ctx context.Context, sessionID, day string) (int, error)

	// DailyUsage returns the session's counter for the given day.
	DailyUsage(ctx context.Context, sessionID, day string) (int, error)
}

// Day formats t as the UTC calendar day key used by usage tracking.
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
