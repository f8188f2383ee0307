package session

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/google/uuid"
)

// Store holds per-session contexts, bounded by an LRU so abandoned
// sessions age out. The cache is safe for concurrent use; an individual
// Context is only ever touched by its own session's turns.
type Store struct {
	cache *lru.Cache[string, *Context]
}

// NewStore creates a store holding at most capacity sessions.
func NewStore(capacity int) (*Store, error) {
	cache, err := lru.New[string, *Context](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}

// Get returns the context for a session, creating it (and a session ID,
// when the given one is blank) as needed.
func (s *Store) Get(sessionID string) (*Context, string) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	if ctx, ok := s.cache.Get(sessionID); ok {
		return ctx, sessionID
	}
	ctx := &Context{}
	s.cache.Add(sessionID, ctx)
	return ctx, sessionID
}

// End drops a session's context.
func (s *Store) End(sessionID string) {
	s.cache.Remove(sessionID)
}

// Len reports how many sessions are live.
func (s *Store) Len() int { return s.cache.Len() }
