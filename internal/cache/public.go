package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recipe-mgmt/recipe-storage/internal/logger"
	"github.com/recipe-mgmt/recipe-storage/internal/types"
)

const publicListKey = "recipes:public"

// PublicRecipes caches the public-recipe listing, the one read path served to
// unauthenticated callers. Best effort: every method swallows cache faults so
// the store stays the source of truth.
type PublicRecipes interface {
	Get(ctx context.Context) ([]*types.RecipeResponse, bool)
	Set(ctx context.Context, recipes []*types.RecipeResponse)
	Invalidate(ctx context.Context)
}

// RedisPublicRecipes caches the listing as a JSON blob with a short TTL.
type RedisPublicRecipes struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisPublicRecipes wraps client. A non-positive ttl defaults to a minute.
func NewRedisPublicRecipes(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisPublicRecipes {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisPublicRecipes{
		client: client,
		ttl:    ttl,
		log:    log.With("component", "public-cache"),
	}
}

func (c *RedisPublicRecipes) Get(ctx context.Context) ([]*types.RecipeResponse, bool) {
	raw, err := c.client.Get(ctx, publicListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache read failed", "error", err)
		}
		return nil, false
	}
	var recipes []*types.RecipeResponse
	if err := json.Unmarshal(raw, &recipes); err != nil {
		c.log.Warn("cache entry corrupt, dropping", "error", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return recipes, true
}

func (c *RedisPublicRecipes) Set(ctx context.Context, recipes []*types.RecipeResponse) {
	raw, err := json.Marshal(recipes)
	if err != nil {
		c.log.Warn("cache marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, publicListKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", "error", err)
	}
}

func (c *RedisPublicRecipes) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, publicListKey).Err(); err != nil {
		c.log.Warn("cache invalidate failed", "error", err)
	}
}
