// Package session keeps per-conversation search state for the chat endpoint.
// Each conversational turn merges its interpreted parameters onto the criteria
// stored here, so "cheaper" or "what about condos" refines the previous search
// instead of starting over.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/arcturus-labs/property-search/services"
)

// Store holds the last merged criteria per session. Implementations must be
// safe for concurrent use and are allowed to evict entries at any time; a
// missing session simply means the conversation starts from empty criteria.
type Store interface {
	Get(sessionID string) (services.SearchQuery, bool)
	Put(sessionID string, query services.SearchQuery)
	Delete(sessionID string)
	Len() int
}

// NewSessionID returns a fresh opaque session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// LRUStore is a bounded Store with TTL expiry. Capacity and TTL keep memory
// flat no matter how many anonymous visitors open chat sessions.
type LRUStore struct {
	cache *expirable.LRU[string, services.SearchQuery]
}

// NewLRUStore creates a store that holds at most capacity sessions, each
// expiring ttl after its last write.
func NewLRUStore(capacity int, ttl time.Duration) *LRUStore {
	return &LRUStore{
		cache: expirable.NewLRU[string, services.SearchQuery](capacity, nil, ttl),
	}
}

func (s *LRUStore) Get(sessionID string) (services.SearchQuery, bool) {
	return s.cache.Get(sessionID)
}

func (s *LRUStore) Put(sessionID string, query services.SearchQuery) {
	s.cache.Add(sessionID, query)
}

func (s *LRUStore) Delete(sessionID string) {
	s.cache.Remove(sessionID)
}

func (s *LRUStore) Len() int {
	return s.cache.Len()
}
