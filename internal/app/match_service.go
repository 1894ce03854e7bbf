package app

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"robot-race-service/internal/actuator"
	"robot-race-service/internal/bank"
	"robot-race-service/internal/domain"
	"robot-race-service/internal/engine"
)

// MatchStore abstracts how live matches are tracked (in-memory, Redis-marked).
type MatchStore interface {
	Put(id string, match *LiveMatch)
	Get(id string) (*LiveMatch, bool)
	Delete(id string)
}

// CatalogRepository loads the validated question catalog (from cache/backing
// store, falling back to the built-in set).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (*bank.Catalog, error)
}

// MatchService owns match lifecycle: creating engines, running their host
// loops, and routing hosts to them.
type MatchService struct {
	store    MatchStore
	catalogs CatalogRepository
	rules    engine.Rules
	tick     time.Duration
	port     actuator.Port
}

func NewMatchService(store MatchStore, catalogs CatalogRepository, rules engine.Rules, tick time.Duration, port actuator.Port) *MatchService {
	if tick <= 0 {
		tick = 50 * time.Millisecond
	}
	return &MatchService{store: store, catalogs: catalogs, rules: rules, tick: tick, port: port}
}

// Create builds a match for the requested mode and starts its loop.
func (s *MatchService) Create(ctx context.Context, mode domain.Mode) (*LiveMatch, error) {
	cat, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	eng, err := engine.NewMatch(mode, cat, s.rules, s.port, nil)
	if err != nil {
		return nil, err
	}
	match := newLiveMatch(uuid.NewString(), eng, s.tick)
	s.store.Put(match.ID(), match)
	go match.run()
	log.Printf("app: match %s created (%s)", match.ID(), mode)
	return match, nil
}

// Get returns a live match by ID.
func (s *MatchService) Get(id string) (*LiveMatch, error) {
	match, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return match, nil
}

// Close stops a match loop and forgets it.
func (s *MatchService) Close(id string) {
	if match, ok := s.store.Get(id); ok {
		match.Close()
	}
	s.store.Delete(id)
}
