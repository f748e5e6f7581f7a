package wizard

import (
	"sync"

	"github.com/google/uuid"
)

// sessionStore holds the transient per-player cursor (index of the next
// question). Cursors are in-memory only: on restart a player resumes from
// the persisted draft. Serialization of wizard steps happens through the
// shared per-player lock, not here.
type sessionStore struct {
	mu      sync.RWMutex
	cursors map[uuid.UUID]int
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		cursors: make(map[uuid.UUID]int),
	}
}

func (s *sessionStore) cursor(playerId uuid.UUID) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index, ok := s.cursors[playerId]
	return index, ok
}

func (s *sessionStore) setCursor(playerId uuid.UUID, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursors[playerId] = index
}

func (s *sessionStore) deleteCursor(playerId uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cursors, playerId)
}
