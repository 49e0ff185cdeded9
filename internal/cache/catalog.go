// Package cache provides a Redis-backed read-through cache for the
// destination catalog. The catalog is seeded once and read on every
// generated challenge, so a single JSON blob with a TTL keeps SQLite out
// of the hot path.
package cache

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/roamgames/globetrotter/internal/quiz"
)

const catalogKey = "globetrotter:catalog"

// CatalogSource loads the catalog from the backing store on cache miss.
type CatalogSource interface {
	ListDestinations(ctx context.Context) ([]quiz.Destination, error)
}

type Catalog struct {
	client *redis.Client
	source CatalogSource
	ttl    time.Duration
	sf     singleflight.Group
}

func NewCatalog(client *redis.Client, source CatalogSource, ttl time.Duration) *Catalog {
	return &Catalog{client: client, source: source, ttl: ttl}
}

func (c *Catalog) ListDestinations(ctx context.Context) ([]quiz.Destination, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err == nil {
		if catalog, ok := decode(raw); ok {
			return catalog, nil
		}
	}

	result, err, _ := c.sf.Do(catalogKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		raw, err := c.client.Get(ctx, catalogKey).Bytes()
		if err == nil {
			if catalog, ok := decode(raw); ok {
				return catalog, nil
			}
		}

		catalog, err := c.source.ListDestinations(ctx)
		if err != nil {
			return nil, err
		}
		// An empty catalog is not cached so fresh seeds show up immediately.
		if len(catalog) > 0 {
			if data, err := json.Marshal(catalog); err == nil {
				c.client.Set(ctx, catalogKey, data, c.ttlWithJitter())
			}
		}
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]quiz.Destination), nil
}

// Invalidate drops the cached catalog; called after reseeding.
func (c *Catalog) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}

func decode(raw []byte) ([]quiz.Destination, bool) {
	var catalog []quiz.Destination
	if err := json.Unmarshal(raw, &catalog); err != nil || len(catalog) == 0 {
		return nil, false
	}
	return catalog, true
}

// ttlWithJitter adds up to 10% jitter to spread expirations.
func (c *Catalog) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(rand.Int64N(jitterMax+1))
}
