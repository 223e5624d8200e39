package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for single-instance deployments and
// tests. Entries expire after the TTL; expiry is checked lazily on Get.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	ttl  time.Duration
	now  func() time.Time
}

type memoryEntry struct {
	session Session
	expires time.Time
}

// NewMemoryStore creates a MemoryStore. A non-positive ttl disables
// expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.data[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if m.ttl > 0 && m.now().After(entry.expires) {
		m.mu.Lock()
		delete(m.data, id)
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	s := entry.session
	s.Inventory = append([]string(nil), entry.session.Inventory...)
	s.History = append([]HistoryEntry(nil), entry.session.History...)
	return &s, nil
}

func (m *MemoryStore) Put(_ context.Context, s *Session) error {
	copied := *s
	copied.Inventory = append([]string(nil), s.Inventory...)
	copied.History = append([]HistoryEntry(nil), s.History...)

	m.mu.Lock()
	m.data[s.ID] = memoryEntry{
		session: copied,
		expires: m.now().Add(m.ttl),
	}
	m.mu.Unlock()
	return nil
}
