// README: In-process turn store; default when no Redis address is configured.
package chat

import (
	"context"
	"sync"
)

// MemoryStore keeps turn logs in a plain map. Appends for one session are
// serialized by the mutex; order is call-completion order, which is the only
// ordering guarantee sessions need.
type MemoryStore struct {
	mu    sync.Mutex
	turns map[string][]Turn
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{turns: make(map[string][]Turn)}
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, t Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[sessionID] = append(s.turns[sessionID], t)
	return nil
}

func (s *MemoryStore) List(_ context.Context, sessionID string) ([]Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns[sessionID]))
	copy(out, s.turns[sessionID])
	return out, nil
}
