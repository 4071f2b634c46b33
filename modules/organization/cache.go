package organization

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saasbase/saasbase/pkg/cache"
	"github.com/saasbase/saasbase/pkg/tenant"
)

// DefaultCacheTTL bounds how long a resolved tenant stays cached. Slug and
// domain changes take at most this long to propagate to the edge.
const DefaultCacheTTL = 5 * time.Minute

const cacheKeyPrefix = "org:resolve:"

// Cache stores resolved tenants keyed by the resolve arguments. Only
// successful resolutions are cached; misses and errors always go back to the
// store.
type Cache interface {
	Get(ctx context.Context, key string) (*tenant.TenantInfo, bool)
	Set(ctx context.Context, key string, info *tenant.TenantInfo)
}

// CacheKey builds the cache key for a resolve request. Exactly one of slug
// and host is non-empty per request, so the two namespaces cannot collide.
func CacheKey(slug, host string) string {
	if slug != "" {
		return cacheKeyPrefix + "slug:" + slug
	}
	return cacheKeyPrefix + "host:" + host
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache caches resolutions in Redis so all server replicas share one
// view of the tenant map.
func NewRedisCache(client *redis.Client, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string) (*tenant.TenantInfo, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var info tenant.TenantInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, false
	}
	return &info, true
}

func (c *redisCache) Set(ctx context.Context, key string, info *tenant.TenantInfo) {
	raw, err := json.Marshal(info)
	if err != nil {
		return
	}
	// Best effort: a failed write only costs an extra store lookup later.
	_ = c.client.Set(ctx, key, raw, c.ttl).Err()
}

type memoryCache struct {
	lru *cache.LRU[string, tenant.TenantInfo]
	ttl time.Duration
}

// NewMemoryCache caches resolutions in-process for deployments that run
// without Redis. Capacity bounds memory; entries past the TTL are dropped on
// read.
func NewMemoryCache(capacity int, ttl time.Duration) Cache {
	if capacity <= 0 {
		capacity = 1024
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &memoryCache{
		lru: cache.NewLRU[string, tenant.TenantInfo](capacity),
		ttl: ttl,
	}
}

func (c *memoryCache) Get(_ context.Context, key string) (*tenant.TenantInfo, bool) {
	info, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return &info, true
}

func (c *memoryCache) Set(_ context.Context, key string, info *tenant.TenantInfo) {
	c.lru.SetTTL(key, *info, c.ttl)
}
