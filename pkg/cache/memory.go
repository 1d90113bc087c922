package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type MemoryCache struct {
	cache *gocache.Cache
}

var _ Service = &MemoryCache{}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(10*time.Minute, 10*time.Minute),
	}
}

func (m *MemoryCache) Get(ctx context.Context, key string) (string, bool) {
	if x, found := m.cache.Get(key); found {
		return x.(string), true
	}
	return "", false
}

func (m *MemoryCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}

func (m *MemoryCache) Delete(ctx context.Context, key string) {
	m.cache.Delete(key)
}
