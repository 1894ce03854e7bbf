package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"robot-race-service/internal/app"
)

// MatchStore is a Redis-aware implementation of app.MatchStore.
// Notes:
//   - Live matches stay in a local map; the engine loop is in-process and
//     cannot be serialized through Redis.
//   - Redis marks match liveness so an operator (or another instance) can see
//     which matches exist.
type MatchStore struct {
	client  *redis.Client
	ttl     time.Duration
	mu      sync.RWMutex
	matches map[string]*app.LiveMatch
}

func NewMatchStore(client *redis.Client, ttl time.Duration) *MatchStore {
	return &MatchStore{
		client:  client,
		ttl:     ttl,
		matches: make(map[string]*app.LiveMatch),
	}
}

func (s *MatchStore) Put(id string, match *app.LiveMatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[id] = match
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(id), "1", s.ttl).Err()
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
	_ = s.client.Del(context.Background(), s.key(id)).Err()
}

func (s *MatchStore) key(id string) string {
	return "race:match:" + id
}
