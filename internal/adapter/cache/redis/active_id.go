package cache

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/The-Gleb/event_banner/internal/domain/service"
	"github.com/redis/go-redis/v9"
)

var _ service.ActiveIDCache = new(redisCache)

type redisCache struct {
	client *redis.Client
	key    string
	expiry time.Duration
}

// NewRedisCache stores the active banner id under key. A zero expiry keeps
// the id until it is replaced or cleared.
func NewRedisCache(client *redis.Client, key string, expirySeconds int) *redisCache {
	return &redisCache{
		client: client,
		key:    key,
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

func (c *redisCache) GetActiveID(ctx context.Context) (int64, bool, error) {
	id, err := c.client.Get(ctx, c.key).Int64()
	if err != nil {
		if stdErrors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		slog.Error("error getting active banner id from redis", "error", err)
		return 0, false, err
	}

	if id <= 0 {
		return 0, false, nil
	}

	return id, true, nil
}

func (c *redisCache) SetActiveID(ctx context.Context, id *int64) error {
	if id == nil {
		err := c.client.Del(ctx, c.key).Err()
		if err != nil {
			slog.Error("error clearing active banner id in redis", "error", err)
			return err
		}
		return nil
	}

	err := c.client.Set(ctx, c.key, *id, c.expiry).Err()
	if err != nil {
		slog.Error("error setting active banner id in redis", "error", err)
		return err
	}

	slog.Debug("active banner id cached", "banner_id", *id)

	return nil
}
