package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fivam/blog-api/internal/core/domain"
)

const listKey = "posts:list"
const defaultCacheTTL = 30 * time.Second

// ListCache caches the full post listing as a JSON blob with a short TTL.
// Mutations invalidate the key; readers fall back to the store on any miss
// or error.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a ListCache wrapping the given Redis client.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ListCache{client: client, ttl: ttl}
}

// Get returns the cached listing, or (nil, nil) when the key is absent.
func (c *ListCache) Get(ctx context.Context) ([]*domain.Post, error) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var posts []*domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return posts, nil
}

// Set stores the listing, expiring after the configured TTL.
func (c *ListCache) Set(ctx context.Context, posts []*domain.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, listKey, raw, c.ttl).Err()
}

// Invalidate drops the cached listing.
func (c *ListCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listKey).Err()
}
