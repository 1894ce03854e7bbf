package memory

import (
	"sync"

	"robot-race-service/internal/app"
)

// MatchStore is an in-memory implementation of app.MatchStore.
type MatchStore struct {
	mu      sync.RWMutex
	matches map[string]*app.LiveMatch
}

func NewMatchStore() *MatchStore {
	return &MatchStore{
		matches: make(map[string]*app.LiveMatch),
	}
}

func (s *MatchStore) Put(id string, match *app.LiveMatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[id] = match
}

func (s *MatchStore) Get(id string) (*app.LiveMatch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	return match, ok
}

func (s *MatchStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
}
