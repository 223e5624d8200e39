package session

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func newTestService() *Service {
	return NewService(NewMemoryStore(0))
}

func TestGetOrCreate(t *testing.T) {
	svc := newTestService()
	ctx := t.Context()

	sess, err := svc.GetOrCreate(ctx, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("empty id should get a generated UUID")
	}
	if sess.Coins != 0 || len(sess.Inventory) != 0 || len(sess.History) != 0 {
		t.Errorf("fresh session not empty: %+v", sess)
	}

	again, err := svc.GetOrCreate(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.ID != sess.ID {
		t.Errorf("id = %q, want %q", again.ID, sess.ID)
	}
}

func TestCompleteQuest(t *testing.T) {
	svc := newTestService()
	ctx := t.Context()

	sess, err := svc.CompleteQuest(ctx, "sess-1", "8 + 5", "Wizard")
	if err != nil {
		t.Fatalf("complete quest: %v", err)
	}
	if sess.Coins != QuestReward {
		t.Errorf("coins = %d, want %d", sess.Coins, QuestReward)
	}
	if len(sess.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(sess.History))
	}
	if sess.History[0].Concept != "8 + 5" || sess.History[0].Hero != "Wizard" {
		t.Errorf("history entry = %+v", sess.History[0])
	}

	// A second quest accumulates.
	sess, err = svc.CompleteQuest(ctx, "sess-1", "7 x 6", "Ninja")
	if err != nil {
		t.Fatalf("second quest: %v", err)
	}
	if sess.Coins != 2*QuestReward {
		t.Errorf("coins = %d, want %d", sess.Coins, 2*QuestReward)
	}
	if len(sess.History) != 2 {
		t.Errorf("history length = %d, want 2", len(sess.History))
	}
}

func TestAwardCoins(t *testing.T) {
	svc := newTestService()
	ctx := t.Context()

	sess, err := svc.AwardCoins(ctx, "sess-1", 25)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if sess.Coins != 25 {
		t.Errorf("coins = %d, want 25", sess.Coins)
	}

	if _, err := svc.AwardCoins(ctx, "sess-1", -5); err == nil {
		t.Error("negative award should be rejected")
	}
}

func TestAwardCoinsConcurrent(t *testing.T) {
	svc := newTestService()
	ctx := t.Context()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.AwardCoins(ctx, "sess-race", 1); err != nil {
				t.Errorf("award: %v", err)
			}
		}()
	}
	wg.Wait()

	sess, err := svc.GetOrCreate(ctx, "sess-race")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sess.Coins != workers {
		t.Errorf("coins = %d after %d concurrent awards, want %d", sess.Coins, workers, workers)
	}
}

func TestPurchaseRules(t *testing.T) {
	svc := newTestService()
	ctx := t.Context()

	// Unknown item.
	if _, _, err := svc.Purchase(ctx, "sess-1", "bat_mobile"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}

	// Broke session.
	if _, _, err := svc.Purchase(ctx, "sess-1", "fire_sword"); !errors.Is(err, ErrInsufficientCoins) {
		t.Errorf("err = %v, want ErrInsufficientCoins", err)
	}

	// Fund and buy.
	if _, err := svc.AwardCoins(ctx, "sess-1", 150); err != nil {
		t.Fatalf("award: %v", err)
	}
	sess, item, err := svc.Purchase(ctx, "sess-1", "fire_sword")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if item.ID != "fire_sword" {
		t.Errorf("item = %q, want fire_sword", item.ID)
	}
	if sess.Coins != 50 {
		t.Errorf("coins after purchase = %d, want 50", sess.Coins)
	}
	if len(sess.Inventory) != 1 || sess.Inventory[0] != "Fire Sword" {
		t.Errorf("inventory = %v, want [Fire Sword]", sess.Inventory)
	}

	// Re-buying is refused.
	if _, _, err := svc.Purchase(ctx, "sess-1", "fire_sword"); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("err = %v, want ErrAlreadyOwned", err)
	}
}

func TestHistoryBounded(t *testing.T) {
	s := &Session{}
	for i := 0; i < maxHistory+10; i++ {
		s.appendHistory(HistoryEntry{Concept: "p"})
	}
	if len(s.History) != maxHistory {
		t.Errorf("history length = %d, want %d", len(s.History), maxHistory)
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := t.Context()

	if err := store.Put(ctx, &Session{ID: "sess-1"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := store.Get(ctx, "sess-1"); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.Get(ctx, "sess-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after expiry", err)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := t.Context()

	orig := &Session{ID: "sess-1", Inventory: []string{"Fire Sword"}}
	if err := store.Put(ctx, orig); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Inventory[0] = "mutated"

	again, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again.Inventory[0] != "Fire Sword" {
		t.Error("stored session must not alias returned slices")
	}
}
