package config

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// Cache wraps the shared redis client. All helpers are nil-safe so the
// server keeps working (without caching) when redis is unavailable.
type Cache struct {
	Client *redis.Client
	Locker *redislock.Client
}

// ConnectRedisWithRetry dials redis until it succeeds.
func ConnectRedisWithRetry(cfg *Config) *Cache {
	ctx := context.Background()
	var attempt int
	for {
		attempt++
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: "",
			DB:       0, // use default DB
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err == nil {
			log.Printf("connected to redis (attempt=%d addr=%s)", attempt, cfg.RedisAddress)
			return &Cache{Client: rdb, Locker: redislock.New(rdb)}
		} else {
			sleep := time.Second * time.Duration(1<<min(attempt, 5))
			if sleep > 30*time.Second {
				sleep = 30 * time.Second
			}
			log.Printf("failed to connect redis (attempt=%d addr=%s): %v; retrying in %s", attempt, cfg.RedisAddress, err, sleep)
			time.Sleep(sleep)
		}
	}
}

func (c *Cache) Close() {
	if c != nil && c.Client != nil {
		_ = c.Client.Close()
	}
}

func (c *Cache) GetObject(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil || c.Client == nil {
		return false, nil
	}
	val, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(val), &dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) GetValue(ctx context.Context, key string) (string, bool, error) {
	if c == nil || c.Client == nil {
		return "", false, nil
	}
	val, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (c *Cache) SetObject(ctx context.Context, key string, obj interface{}, exp time.Duration) error {
	if c == nil || c.Client == nil {
		return nil
	}
	objInByte, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, objInByte, exp).Err()
}

func (c *Cache) SetValue(ctx context.Context, key string, value string, exp time.Duration) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Set(ctx, key, value, exp).Err()
}

func (c *Cache) RemoveKey(ctx context.Context, keys ...string) error {
	if c == nil || c.Client == nil || len(keys) == 0 {
		return nil
	}
	_, err := c.Client.Del(ctx, keys...).Result()
	return err
}

// Lock obtains a best-effort distributed lock. Returns nil when redis is
// down or the lock is already held; callers must treat that as advisory.
func (c *Cache) Lock(ctx context.Context, key string, ttl time.Duration) *redislock.Lock {
	if c == nil || c.Locker == nil {
		return nil
	}
	lock, err := c.Locker.Obtain(ctx, key, ttl, nil)
	if err != nil {
		return nil
	}
	return lock
}
