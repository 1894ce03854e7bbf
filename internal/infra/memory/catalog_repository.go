package memory

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"robot-race-service/internal/bank"
)

// CatalogLoader fetches raw question records from a backing store
// (spreadsheet export, Postgres, built-in defaults).
type CatalogLoader interface {
	LoadRecords(ctx context.Context) ([]bank.Record, error)
}

// CatalogRepository caches the validated catalog with a TTL so every new
// match does not hit the backing store. A loader failure falls back to the
// built-in records; the engine never sees the substitution.
type CatalogRepository struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cached    *bank.Catalog
	expiresAt time.Time
}

func NewCatalogRepository(loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) (*bank.Catalog, error) {
	now := r.clock()

	r.mu.RLock()
	if r.cached != nil && r.expiresAt.After(now) {
		cat := r.cached
		r.mu.RUnlock()
		return cat, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("catalog", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.cached != nil && r.expiresAt.After(now) {
			cat := r.cached
			r.mu.RUnlock()
			return cat, nil
		}
		r.mu.RUnlock()

		records, err := r.loader.LoadRecords(ctx)
		if err != nil {
			log.Printf("memory: catalog source unavailable, using built-in questions: %v", err)
			records = bank.DefaultRecords()
		}
		cat := bank.Load(records)
		if cat.Len() == 0 {
			log.Printf("memory: catalog source yielded no valid questions, using built-in set")
			cat = bank.Load(bank.DefaultRecords())
		}

		r.mu.Lock()
		r.cached = cat
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return cat, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*bank.Catalog), nil
}

// StaticCatalogLoader serves a fixed record slice (defaults, tests).
type StaticCatalogLoader struct {
	records []bank.Record
}

func NewStaticCatalogLoader(records []bank.Record) *StaticCatalogLoader {
	return &StaticCatalogLoader{records: records}
}

func (l *StaticCatalogLoader) LoadRecords(_ context.Context) ([]bank.Record, error) {
	return l.records, nil
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
