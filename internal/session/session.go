// Package session tracks per-player game state: coins, owned gear, and
// quest history. State lives in a pluggable Store so a single server can
// run on memory and a fleet can share Redis.
package session

import (
	"context"
	"errors"
	"time"
)

// Session is the full game state of one player session.
type Session struct {
	ID        string         `json:"id"`
	Coins     int            `json:"coins"`
	Inventory []string       `json:"inventory"`
	History   []HistoryEntry `json:"history"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// HistoryEntry records one completed quest.
type HistoryEntry struct {
	Time    string `json:"time"`
	Concept string `json:"concept"`
	Hero    string `json:"hero"`
}

// ErrNotFound is returned by Store.Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store persists sessions. Implementations treat sessions as whole-value
// writes; Service serializes read-modify-write cycles per session id.
type Store interface {
	// Get returns the session, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Put stores the session, refreshing its TTL where applicable.
	Put(ctx context.Context, s *Session) error
}

// maxHistory bounds the per-session quest log.
const maxHistory = 100

// appendHistory adds an entry, dropping the oldest beyond maxHistory.
func (s *Session) appendHistory(e HistoryEntry) {
	s.History = append(s.History, e)
	if len(s.History) > maxHistory {
		s.History = s.History[len(s.History)-maxHistory:]
	}
}

// owns reports whether the inventory contains the item name.
func (s *Session) owns(itemName string) bool {
	for _, name := range s.Inventory {
		if name == itemName {
			return true
		}
	}
	return false
}
