package cache

import (
	"context"
	"encoding/json"
	"sync"

	"classweather.app/models"
)

// GenericCacheInterface defines generic cache operations. Entries never
// expire and are never evicted: the cache memoizes results for the process
// lifetime, which is acceptable because the course catalog keyspace is small
// and externally bounded.
type GenericCacheInterface interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Entries(ctx context.Context) map[string][]byte
}

// CacheInterface defines the interface for course weather caching operations
type CacheInterface interface {
	Get(key string) (*models.CourseWeather, bool)
	Set(key string, value *models.CourseWeather)
	Snapshot() map[string]models.CourseWeather
}

type MemoryCache struct {
	data  map[string][]byte
	mutex sync.RWMutex
}

func NewMemoryCache() GenericCacheInterface {
	return &MemoryCache{
		data: make(map[string][]byte),
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	value, exists := c.data[key]
	return value, exists
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte) {
	if value == nil {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = value
}

func (c *MemoryCache) Entries(ctx context.Context) map[string][]byte {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entries := make(map[string][]byte, len(c.data))
	for key, value := range c.data {
		entries[key] = value
	}
	return entries
}

// CourseWeatherCache wraps a generic cache with course weather operations.
// Keys are exact strings: normalization happens before the cache is reached.
type CourseWeatherCache struct {
	cache GenericCacheInterface
}

func NewCourseWeatherCache(cache GenericCacheInterface) CacheInterface {
	return &CourseWeatherCache{
		cache: cache,
	}
}

func (c *CourseWeatherCache) Get(key string) (*models.CourseWeather, bool) {
	data, found := c.cache.Get(context.Background(), key)
	if !found {
		return nil, false
	}

	var weather models.CourseWeather
	if err := json.Unmarshal(data, &weather); err != nil {
		return nil, false
	}

	return &weather, true
}

func (c *CourseWeatherCache) Set(key string, value *models.CourseWeather) {
	if value == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.cache.Set(context.Background(), key, data)
}

func (c *CourseWeatherCache) Snapshot() map[string]models.CourseWeather {
	entries := c.cache.Entries(context.Background())

	snapshot := make(map[string]models.CourseWeather, len(entries))
	for key, data := range entries {
		var weather models.CourseWeather
		if err := json.Unmarshal(data, &weather); err != nil {
			continue
		}
		snapshot[key] = weather
	}
	return snapshot
}
