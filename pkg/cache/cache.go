package cache

import (
	"context"
	"time"
)

// Service is the minimal cache contract the coach pipeline depends on.
// TTL expiry is best-effort; there are no transactional guarantees.
type Service interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
