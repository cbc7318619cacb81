package repositories

import (
	"context"
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"backoffice/internal/models"
)

// CacheRepository keeps hot product lookups in Redis. A nil client
// disables caching entirely; every method becomes a miss or a no-op.
type CacheRepository struct {
	rdb *redis.Client
}

func NewCacheRepository(rdb *redis.Client) *CacheRepository {
	return &CacheRepository{rdb: rdb}
}

const productTTL = 10 * time.Minute

func (r *CacheRepository) GetProduct(ctx context.Context, sku string) (*models.Product, error) {
	if r.rdb == nil {
		return nil, nil
	}

	key := "product:" + sku
	payload, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		// Stale or corrupt entry; drop it and report a miss
		r.rdb.Del(ctx, key)
		return nil, nil
	}

	return &product, nil
}

func (r *CacheRepository) StoreProduct(ctx context.Context, product *models.Product) error {
	if r.rdb == nil {
		return nil
	}

	payload, err := json.Marshal(product)
	if err != nil {
		return err
	}

	return r.rdb.Set(ctx, "product:"+product.SKU, payload, productTTL).Err()
}

func (r *CacheRepository) InvalidateProduct(ctx context.Context, sku string) error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Del(ctx, "product:"+sku).Err()
}
