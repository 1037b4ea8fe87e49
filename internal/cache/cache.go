package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores computed profile artifacts in redis. A nil client turns every
// operation into a miss so callers can always go through it.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

// Artifacts cached per route.
const (
	Chart    = "chart"
	Gradient = "gradient"
)

var artifacts = []string{Chart, Gradient}

func Key(routeName, artifact string) string {
	return "profiles:" + routeName + ":" + artifact
}

// Load decodes the cached artifact into dst and reports whether it was found.
func (c *Cache) Load(ctx context.Context, key string, dst any) (bool, error) {
	if c == nil || c.redis == nil {
		return false, nil
	}
	raw, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) Store(ctx context.Context, key string, v any) error {
	if c == nil || c.redis == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops every cached artifact of a route. Keys are named
// directly so route names never act as a pattern.
func (c *Cache) Invalidate(ctx context.Context, routeName string) error {
	if c == nil || c.redis == nil {
		return nil
	}
	keys := make([]string, len(artifacts))
	for i, a := range artifacts {
		keys[i] = Key(routeName, a)
	}
	return c.redis.Del(ctx, keys...).Err()
}

// Fetch returns the cached artifact or computes and stores it. Redis errors
// are logged and never fail the request.
func Fetch[T any](ctx context.Context, c *Cache, key string, compute func() (T, error)) (T, error) {
	var v T
	ok, err := c.Load(ctx, key, &v)
	if err != nil {
		log.Printf("cache load %s: %v", key, err)
	}
	if ok {
		return v, nil
	}

	v, err = compute()
	if err != nil {
		return v, err
	}
	if err := c.Store(ctx, key, v); err != nil {
		log.Printf("cache store %s: %v", key, err)
	}
	return v, nil
}
