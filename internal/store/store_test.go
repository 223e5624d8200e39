package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestStoryEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, problem := range []string{"8 + 5", "7 x 6", "10 / 2"} {
		err := repo.AppendStory(ctx, StoryEventData{
			SessionID:     "sess-1",
			Hero:          "wizard",
			Problem:       problem,
			ProblemType:   "addition",
			AgeGroup:      "8-10",
			SolvedLocally: true,
			Answer:        "13",
			Source:        "ai",
		})
		if err != nil {
			t.Fatalf("append story %d: %v", i, err)
		}
	}
	// A different session's event must not leak into sess-1's history.
	err := repo.AppendStory(ctx, StoryEventData{
		SessionID: "sess-2",
		Problem:   "1 + 1",
	})
	if err != nil {
		t.Fatalf("append story for sess-2: %v", err)
	}

	records, err := repo.RecentStories(ctx, "sess-1", 2)
	if err != nil {
		t.Fatalf("recent stories: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].Problem != "10 / 2" {
		t.Errorf("newest problem = %q, want 10 / 2", records[0].Problem)
	}
	if records[1].Problem != "7 x 6" {
		t.Errorf("second problem = %q, want 7 x 6", records[1].Problem)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("sequence order wrong: %d then %d", records[0].Sequence, records[1].Sequence)
	}
}

func TestPurchaseEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendPurchase(ctx, PurchaseEventData{
		SessionID:  "sess-1",
		ItemID:     "fire_sword",
		Price:      100,
		CoinsAfter: 25,
	})
	if err != nil {
		t.Fatalf("append purchase: %v", err)
	}

	count, err := s.Client().PurchaseEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("purchase events = %d, want 1", count)
	}
}

func TestLLMRequestEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "story",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[user]\ntell a story",
		ResponseBody: `{"story":"..."}`,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("llm request events = %d, want 1", count)
	}
}

func TestLLMEventQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "story", InputTokens: 100, OutputTokens: 400, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "minigame-gen", InputTokens: 200, OutputTokens: 600, LatencyMs: 1200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "story", InputTokens: 50, OutputTokens: 150, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for _, d := range seed {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "story" || events[0].Provider != "openai" {
		t.Errorf("first event = %s/%s, want openai/story", events[0].Provider, events[0].Purpose)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ErrorMessage != "rate limited" {
		t.Errorf("get event = %+v, want rate limited record", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := make(map[string]PurposeUsage, len(byPurpose))
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	story := usage["story"]
	if story.Calls != 2 || story.InputTokens != 150 || story.OutputTokens != 550 {
		t.Errorf("story usage = %+v, want 2 calls, 150 in, 550 out", story)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]ModelUsage, len(byModel))
	for _, u := range byModel {
		models[u.Model] = u
	}
	flash := models["gemini-2.5-flash"]
	if flash.Calls != 2 || flash.InputTokens != 300 || flash.OutputTokens != 1000 {
		t.Errorf("flash usage = %+v, want 2 calls, 300 in, 1000 out", flash)
	}
}

func TestAppUserGetOrCreate(t *testing.T) {
	s := openTestStore(t)
	repo := s.AppUserRepo()
	ctx := context.Background()

	u, err := repo.GetOrCreate(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if u.SubscriptionStatus != "free" {
		t.Errorf("status = %q, want free", u.SubscriptionStatus)
	}
	if u.Premium() {
		t.Error("fresh user must not be premium")
	}

	// Second call returns the same row, not a duplicate.
	again, err := repo.GetOrCreate(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get or create again: %v", err)
	}
	if again.SessionID != u.SessionID {
		t.Errorf("session id = %q, want %q", again.SessionID, u.SessionID)
	}
	count, err := s.Client().AppUser.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("app users = %d, want 1", count)
	}
}

func TestAppUserUpdateSubscription(t *testing.T) {
	s := openTestStore(t)
	repo := s.AppUserRepo()
	ctx := context.Background()

	// UpdateSubscription creates the row when the webhook arrives before
	// the session ever called the API.
	err := repo.UpdateSubscription(ctx, "sess-1", "cus_123", "sub_456", "active")
	if err != nil {
		t.Fatalf("update subscription: %v", err)
	}

	u, err := repo.GetOrCreate(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.StripeCustomerID != "cus_123" || u.StripeSubscriptionID != "sub_456" {
		t.Errorf("stripe ids = %q/%q, want cus_123/sub_456", u.StripeCustomerID, u.StripeSubscriptionID)
	}
	if !u.Premium() {
		t.Error("active user should be premium")
	}
}

func TestAppUserPremiumStatuses(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"free", false},
		{"active", true},
		{"trialing", true},
		{"canceled", false},
	}
	for _, tt := range tests {
		u := AppUser{SubscriptionStatus: tt.status}
		if got := u.Premium(); got != tt.want {
			t.Errorf("Premium(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestUsageTracking(t *testing.T) {
	s := openTestStore(t)
	repo := s.AppUserRepo()
	ctx := context.Background()
	day := Day(time.Now())

	n, err := repo.DailyUsage(ctx, "sess-1", day)
	if err != nil {
		t.Fatalf("daily usage (empty): %v", err)
	}
	if n != 0 {
		t.Errorf("initial usage = %d, want 0", n)
	}

	for i := 1; i <= 3; i++ {
		n, err = repo.IncrementUsage(ctx, "sess-1", day)
		if err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
		if n != i {
			t.Errorf("count after increment %d = %d, want %d", i, n, i)
		}
	}

	// Another day is counted separately.
	other := Day(time.Now().AddDate(0, 0, -1))
	n, err = repo.DailyUsage(ctx, "sess-1", other)
	if err != nil {
		t.Fatalf("daily usage (other day): %v", err)
	}
	if n != 0 {
		t.Errorf("other day usage = %d, want 0", n)
	}
}

func TestDayFormatsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2026-03-02 07:00 +10:00 is 2026-03-01 21:00 UTC.
	ts := time.Date(2026, 3, 2, 7, 0, 0, 0, loc)
	if got := Day(ts); got != "2026-03-01" {
		t.Errorf("Day = %q, want 2026-03-01", got)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"story_events", "purchase_events", "llm_request_events", "app_users", "usage_records"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
