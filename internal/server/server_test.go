package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devika/mathquest/internal/llm"
	"github.com/devika/mathquest/internal/mathsteps"
	"github.com/devika/mathquest/internal/minigame"
	"github.com/devika/mathquest/internal/quest"
	"github.com/devika/mathquest/internal/session"
	"github.com/devika/mathquest/internal/store"
	"github.com/devika/mathquest/internal/story"
)

// offlineProvider returns an erroring response for every call so all AI
// stages exercise their fallbacks.
func offlineProvider() *llm.MockProvider {
	mock := llm.NewMockProvider()
	for i := 0; i < 10; i++ {
		mock.AddResponse(llm.MockResponse{Err: errors.New("offline")})
	}
	return mock
}

// newTestServer wires a server over the offline provider. st may be nil;
// the user store and event log are then disabled, as in ephemeral runs.
func newTestServer(t *testing.T, st *store.Store) *Server {
	t.Helper()
	mock := offlineProvider()
	sessions := session.NewService(session.NewMemoryStore(0))

	var users store.AppUserRepo
	var events store.EventRepo
	if st != nil {
		users = st.AppUserRepo()
		events = st.EventRepo()
	}

	quests := quest.NewService(
		mathsteps.NewService(mock, mathsteps.DefaultConfig()),
		story.NewService(mock, story.DefaultConfig()),
		minigame.NewGenerator(mock, minigame.DefaultConfig()),
		sessions,
		events,
		nil,
	)
	return New(DefaultConfig(), nil, sessions, quests, users, events)
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil)
	w := doJSON(t, s, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestCharactersAndShop(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s, http.MethodGet, "/api/characters", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("characters status = %d", w.Code)
	}
	var heroes []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &heroes); err != nil {
		t.Fatalf("decode heroes: %v", err)
	}
	if len(heroes) != 6 {
		t.Errorf("got %d heroes, want 6", len(heroes))
	}

	w = doJSON(t, s, http.MethodGet, "/api/shop", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("shop status = %d", w.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 6 {
		t.Errorf("got %d items, want 6", len(items))
	}
}

func TestStoryQuest(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s, http.MethodPost, "/api/story", map[string]any{
		"hero":       "Wizard",
		"problem":    "8 + 5",
		"session_id": "sess-1",
		"age_group":  "8-10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var res struct {
		Story       string   `json:"story"`
		Answer      string   `json:"answer"`
		DisplayExpr string   `json:"display_expr"`
		MathSteps   []string `json:"math_steps"`
		MiniGames   []struct {
			Type          string   `json:"type"`
			Question      string   `json:"question"`
			CorrectAnswer string   `json:"correct_answer"`
			Choices       []string `json:"choices"`
			TimeLimit     int      `json:"time_limit"`
			RewardCoins   int      `json:"reward_coins"`
		} `json:"mini_games"`
		Coins int `json:"coins"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Answer != "13" {
		t.Errorf("answer = %q, want 13", res.Answer)
	}
	if res.DisplayExpr != "8+5" {
		t.Errorf("display_expr = %q, want 8+5", res.DisplayExpr)
	}
	if res.Story == "" {
		t.Error("story missing")
	}
	if len(res.MiniGames) != 3 {
		t.Fatalf("got %d mini-games, want 3", len(res.MiniGames))
	}
	wantTypes := []string{"quicktime", "timed", "choice"}
	for i, g := range res.MiniGames {
		if g.Type != wantTypes[i] {
			t.Errorf("game %d type = %q, want %q", i, g.Type, wantTypes[i])
		}
		if g.CorrectAnswer != "13" {
			t.Errorf("game %d correct answer = %q, want 13", i, g.CorrectAnswer)
		}
		if len(g.Choices) != 4 {
			t.Errorf("game %d has %d choices, want 4", i, len(g.Choices))
		}
	}
	if res.Coins != session.QuestReward {
		t.Errorf("coins = %d, want %d", res.Coins, session.QuestReward)
	}
}

func TestStoryRejectsUnknownHero(t *testing.T) {
	s := newTestServer(t, nil)
	w := doJSON(t, s, http.MethodPost, "/api/story", map[string]any{
		"hero":       "Batman",
		"problem":    "8 + 5",
		"session_id": "sess-1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestStoryRejectsMissingFields(t *testing.T) {
	s := newTestServer(t, nil)
	w := doJSON(t, s, http.MethodPost, "/api/story", map[string]any{"hero": "Wizard"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBuyFlow(t *testing.T) {
	s := newTestServer(t, nil)

	// Earn enough coins for a purchase: two quests at 50 each.
	for i := 0; i < 2; i++ {
		w := doJSON(t, s, http.MethodPost, "/api/story", map[string]any{
			"hero":       "Ninja",
			"problem":    "7 x 6",
			"session_id": "sess-buy",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("quest %d status = %d", i, w.Code)
		}
	}

	w := doJSON(t, s, http.MethodPost, "/api/shop/buy", map[string]any{
		"item_id":    "fire_sword",
		"session_id": "sess-buy",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("buy status = %d, body = %s", w.Code, w.Body.String())
	}
	var res struct {
		Coins     int      `json:"coins"`
		Inventory []string `json:"inventory"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Coins != 0 {
		t.Errorf("coins = %d, want 0", res.Coins)
	}
	if len(res.Inventory) != 1 || res.Inventory[0] != "Fire Sword" {
		t.Errorf("inventory = %v", res.Inventory)
	}

	// Re-buying is refused.
	w = doJSON(t, s, http.MethodPost, "/api/shop/buy", map[string]any{
		"item_id":    "fire_sword",
		"session_id": "sess-buy",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("re-buy status = %d, want 400", w.Code)
	}
}

func TestBuyUnknownItem(t *testing.T) {
	s := newTestServer(t, nil)
	w := doJSON(t, s, http.MethodPost, "/api/shop/buy", map[string]any{
		"item_id":    "bat_mobile",
		"session_id": "sess-1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMiniGameComplete(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s, http.MethodPost, "/api/minigame/complete", map[string]any{
		"session_id":   "sess-1",
		"reward_coins": 20,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var res struct {
		Coins int `json:"coins"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Coins != 20 {
		t.Errorf("coins = %d, want 20", res.Coins)
	}

	// Oversized rewards are rejected.
	w = doJSON(t, s, http.MethodPost, "/api/minigame/complete", map[string]any{
		"session_id":   "sess-1",
		"reward_coins": 500,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSessionEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	w := doJSON(t, s, http.MethodGet, "/api/session/sess-new", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var res struct {
		ID    string `json:"id"`
		Coins int    `json:"coins"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.ID != "sess-new" {
		t.Errorf("id = %q, want sess-new", res.ID)
	}
}

func TestDailyLimit(t *testing.T) {
	st := openTestStore(t)
	s := newTestServer(t, st)

	body := map[string]any{
		"hero":       "Wizard",
		"problem":    "2 + 2",
		"session_id": "sess-free",
	}
	for i := 0; i < store.FreeDailyLimit; i++ {
		w := doJSON(t, s, http.MethodPost, "/api/story", body)
		if w.Code != http.StatusOK {
			t.Fatalf("quest %d status = %d, body = %s", i, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, s, http.MethodPost, "/api/story", body)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status after limit = %d, want 429", w.Code)
	}

	// Premium sessions are unlimited.
	if err := st.AppUserRepo().UpdateSubscription(t.Context(), "sess-free", "cus_1", "sub_1", "active"); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	w = doJSON(t, s, http.MethodPost, "/api/story", body)
	if w.Code != http.StatusOK {
		t.Errorf("premium status = %d, want 200", w.Code)
	}
}

// With a user store wired, the daily-limit middleware binds the story
// body before the handler does. Both reads must come from gin's body
// cache or the handler sees an exhausted body and rejects valid requests.
func TestStoryWithUserStore(t *testing.T) {
	st := openTestStore(t)
	s := newTestServer(t, st)

	w := doJSON(t, s, http.MethodPost, "/api/story", map[string]any{
		"hero":       "Wizard",
		"problem":    "8 + 5",
		"session_id": "sess-bind",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var res struct {
		Answer    string           `json:"answer"`
		MiniGames []map[string]any `json:"mini_games"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Answer != "13" {
		t.Errorf("answer = %q, want 13", res.Answer)
	}
	if len(res.MiniGames) != 3 {
		t.Errorf("got %d mini-games, want 3", len(res.MiniGames))
	}
}

func TestQuestLog(t *testing.T) {
	st := openTestStore(t)
	s := newTestServer(t, st)

	w := doJSON(t, s, http.MethodPost, "/api/story", map[string]any{
		"hero":       "Goku",
		"problem":    "9 - 4",
		"session_id": "sess-log",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("story status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodGet, "/api/session/sess-log/quests", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("quest log status = %d", w.Code)
	}
	var records []struct {
		Hero        string `json:"hero"`
		Problem     string `json:"problem"`
		ProblemType string `json:"problem_type"`
		Answer      string `json:"answer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Hero != "Goku" || records[0].Problem != "9 - 4" {
		t.Errorf("record = %+v", records[0])
	}
	if records[0].ProblemType != "subtraction" || records[0].Answer != "5" {
		t.Errorf("record = %+v", records[0])
	}

	// Sessions with no quests get an empty list, not null.
	w = doJSON(t, s, http.MethodGet, "/api/session/sess-fresh/quests", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("empty log status = %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("empty log body = %s, want []", body)
	}
}

func TestBuyRecordsPurchaseEvent(t *testing.T) {
	st := openTestStore(t)
	s := newTestServer(t, st)

	for i := 0; i < 2; i++ {
		w := doJSON(t, s, http.MethodPost, "/api/story", map[string]any{
			"hero":       "Ninja",
			"problem":    "6 x 7",
			"session_id": "sess-shop",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("quest %d status = %d", i, w.Code)
		}
	}

	w := doJSON(t, s, http.MethodPost, "/api/shop/buy", map[string]any{
		"item_id":    "fire_sword",
		"session_id": "sess-shop",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("buy status = %d, body = %s", w.Code, w.Body.String())
	}

	count, err := st.Client().PurchaseEvent.Query().Count(t.Context())
	if err != nil {
		t.Fatalf("count purchase events: %v", err)
	}
	if count != 1 {
		t.Errorf("purchase events = %d, want 1", count)
	}
}
