package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shammazp/restaurant-backend/internal/domain"
)

// RestaurantCache keeps recently looked-up restaurants in Redis so order
// creation does not hit MySQL for every cart. Menu items are deliberately not
// cached: availability gates pricing and must be read live.
type RestaurantCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRestaurantCache(client *redis.Client, ttl time.Duration) *RestaurantCache {
	return &RestaurantCache{client: client, ttl: ttl}
}

func (c *RestaurantCache) key(id string) string {
	return "restaurant:" + id
}

// Get returns the cached restaurant, or (nil, nil) on a miss. Cache errors
// are returned so callers can decide to fall through to the record store.
func (c *RestaurantCache) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var r domain.Restaurant
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *RestaurantCache) Set(ctx context.Context, r *domain.Restaurant) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(r.ID), raw, c.ttl).Err()
}

// Invalidate drops a cached entry, used after asset updates touch the record.
func (c *RestaurantCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
