package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"classweather.app/errors"
)

// keyPrefix namespaces cache entries so Entries can enumerate them without
// touching unrelated keys in a shared Redis database.
const keyPrefix = "classweather:"

type RedisCache struct {
	client *redis.Client
}

type RedisCacheConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func NewRedisCache(config *RedisCacheConfig) (GenericCacheInterface, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to redis", err)
	}

	slog.Info("Redis cache connected successfully", "addr", config.Addr)

	return &RedisCache{
		client: client,
	}, nil
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Error("Redis get error", "error", err, "key", key)
		}
		return nil, false
	}

	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if value == nil {
		return
	}

	// zero expiration: entries live for as long as the store does
	if err := r.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		slog.Error("Redis set error", "error", err, "key", key)
	}
}

func (r *RedisCache) Entries(ctx context.Context) map[string][]byte {
	keys, err := r.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		slog.Error("Redis keys error", "error", err)
		return nil
	}

	entries := make(map[string][]byte, len(keys))
	for _, key := range keys {
		val, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}
		entries[key[len(keyPrefix):]] = val
	}
	return entries
}

// Close releases the underlying Redis connection
func (r *RedisCache) Close() error {
	return r.client.Close()
}
