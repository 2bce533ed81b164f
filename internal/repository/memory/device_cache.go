package memory

import (
	"context"
	"fmt"
	"time"

	"ai-devicechat-be/internal/entity"
	"ai-devicechat-be/internal/repository/contract"
	"ai-devicechat-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

// CachedDeviceRepository is a read-through cache over the device
// activity repository. The activity source is refreshed in batches, so
// a short TTL is safe; only raw rows are cached, never rendered context.
type CachedDeviceRepository struct {
	inner contract.DeviceActivityRepository
	cache *cache.Cache
}

func NewCachedDeviceRepository(inner contract.DeviceActivityRepository) *CachedDeviceRepository {
	// 30s TTL, purge expired entries every 5 minutes
	c := cache.New(30*time.Second, 5*time.Minute)
	return &CachedDeviceRepository{
		inner: inner,
		cache: c,
	}
}

func (r *CachedDeviceRepository) FindLatestByDeviceId(ctx context.Context, deviceId string) (*entity.DeviceActivityLog, error) {
	key := "latest:" + deviceId
	if x, found := r.cache.Get(key); found {
		return x.(*entity.DeviceActivityLog), nil
	}

	row, err := r.inner.FindLatestByDeviceId(ctx, deviceId)
	if err != nil {
		return nil, err
	}
	if row != nil {
		// Misses are not cached so a device appearing in a fresh batch
		// becomes visible immediately.
		r.cache.Set(key, row, cache.DefaultExpiration)
	}
	return row, nil
}

func (r *CachedDeviceRepository) FindRecentByModel(ctx context.Context, modelQuery string, limit int) ([]*entity.DeviceActivityLog, error) {
	key := fmt.Sprintf("model:%s:%d", modelQuery, limit)
	if x, found := r.cache.Get(key); found {
		return x.([]*entity.DeviceActivityLog), nil
	}

	rows, err := r.inner.FindRecentByModel(ctx, modelQuery, limit)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		r.cache.Set(key, rows, cache.DefaultExpiration)
	}
	return rows, nil
}

func (r *CachedDeviceRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DeviceActivityLog, error) {
	// Ad hoc spec reads bypass the cache.
	return r.inner.FindAll(ctx, specs...)
}
