package redis

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"robot-race-service/internal/bank"
)

const catalogKey = "race:catalog"

// CatalogLoader fetches raw question records from a backing store.
type CatalogLoader interface {
	LoadRecords(ctx context.Context) ([]bank.Record, error)
}

// CatalogRepository caches the raw records as a JSON blob in Redis and falls
// back to the loader (and then to the built-in set) on a miss. Validation
// always runs on the way out, so a stale cache cannot smuggle bad records
// past the bank.
type CatalogRepository struct {
	client *redis.Client
	loader CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewCatalogRepository(client *redis.Client, loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) (*bank.Catalog, error) {
	if cat, ok := r.fromCache(ctx); ok {
		return cat, nil
	}

	result, err, _ := r.sf.Do(catalogKey, func() (interface{}, error) {
		// Re-check in case another goroutine filled the cache.
		if cat, ok := r.fromCache(ctx); ok {
			return cat, nil
		}

		records, err := r.loader.LoadRecords(ctx)
		if err != nil {
			log.Printf("redis: catalog source unavailable, using built-in questions: %v", err)
			records = bank.DefaultRecords()
		}
		cat := bank.Load(records)
		if cat.Len() == 0 {
			log.Printf("redis: catalog source yielded no valid questions, using built-in set")
			records = bank.DefaultRecords()
			cat = bank.Load(records)
		}

		if data, err := json.Marshal(records); err == nil {
			// best-effort cache write
			_ = r.client.Set(ctx, catalogKey, data, r.ttlWithJitter()).Err()
		}
		return cat, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*bank.Catalog), nil
}

func (r *CatalogRepository) fromCache(ctx context.Context) (*bank.Catalog, bool) {
	data, err := r.client.Get(ctx, catalogKey).Bytes()
	if err != nil || len(data) == 0 {
		return nil, false
	}
	var records []bank.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false
	}
	cat := bank.Load(records)
	if cat.Len() == 0 {
		return nil, false
	}
	return cat, true
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
