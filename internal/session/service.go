package session

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/devika/mathquest/internal/catalog"
)

// QuestReward is the coin award for completing a quest.
const QuestReward = 50

// Purchase rule violations. Handlers map these to client errors.
var (
	ErrUnknownItem       = errors.New("unknown item")
	ErrAlreadyOwned      = errors.New("already owned")
	ErrInsufficientCoins = errors.New("not enough coins")
)

// lockStripes is the number of mutexes session writes are spread over.
const lockStripes = 64

// Service implements the session game rules on top of a Store.
// Read-modify-write cycles on one session are serialized through striped
// locks, within this process. Multi-instance deployments sharing a Redis
// store still need sticky routing per session.
type Service struct {
	store Store
	now   func() time.Time
	locks [lockStripes]sync.Mutex
}

// NewService creates a session service.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// lock returns the stripe mutex for a session id.
func (s *Service) lock(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockStripes]
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.New().String()
}

// GetOrCreate returns the session for id, creating an empty one on first
// sight. An empty id gets a fresh UUID.
func (s *Service) GetOrCreate(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		id = NewID()
	}
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()
	return s.getOrCreate(ctx, id)
}

// getOrCreate is GetOrCreate without locking, for callers already holding
// the session's stripe.
func (s *Service) getOrCreate(ctx context.Context, id string) (*Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("load session: %w", err)
	}

	now := s.now().UTC()
	sess = &Session{
		ID:        id,
		Inventory: []string{},
		History:   []HistoryEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// CompleteQuest awards the quest reward and records the quest in the
// session history. It returns the updated session.
func (s *Service) CompleteQuest(ctx context.Context, id, concept, hero string) (*Session, error) {
	if id == "" {
		id = NewID()
	}
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.getOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	sess.Coins += QuestReward
	sess.appendHistory(HistoryEntry{
		Time:    now.Format("2006-01-02 15:04"),
		Concept: concept,
		Hero:    hero,
	})
	sess.UpdatedAt = now

	if err := s.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// AwardCoins adds coins (e.g. from a won mini-game) and returns the
// updated session. Negative amounts are rejected.
func (s *Service) AwardCoins(ctx context.Context, id string, coins int) (*Session, error) {
	if coins < 0 {
		return nil, fmt.Errorf("negative coin award: %d", coins)
	}
	if id == "" {
		id = NewID()
	}
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.getOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.Coins += coins
	sess.UpdatedAt = s.now().UTC()
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Purchase buys a shop item for the session. The item must exist, must
// not already be owned, and the session must afford it.
func (s *Service) Purchase(ctx context.Context, id, itemID string) (*Session, catalog.Item, error) {
	item, ok := catalog.ItemByID(itemID)
	if !ok {
		return nil, catalog.Item{}, ErrUnknownItem
	}
	if id == "" {
		id = NewID()
	}
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.getOrCreate(ctx, id)
	if err != nil {
		return nil, catalog.Item{}, err
	}

	if sess.owns(item.Name) {
		return nil, catalog.Item{}, ErrAlreadyOwned
	}
	if sess.Coins < item.Price {
		return nil, catalog.Item{}, ErrInsufficientCoins
	}

	sess.Coins -= item.Price
	sess.Inventory = append(sess.Inventory, item.Name)
	sess.UpdatedAt = s.now().UTC()

	if err := s.store.Put(ctx, sess); err != nil {
		return nil, catalog.Item{}, fmt.Errorf("save session: %w", err)
	}
	return sess, item, nil
}
