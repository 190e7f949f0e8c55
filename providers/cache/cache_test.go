package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classweather.app/models"
)

func testWeather() *models.CourseWeather {
	return &models.CourseWeather{
		Course:            "CS 340",
		NextCourseMeeting: "2024-03-06 11:00:00",
		ForecastTime:      "2024-03-06 11:00:00",
		Temperature:       45,
		ShortForecast:     "Partly Cloudy",
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	t.Run("Get non-existent key", func(t *testing.T) {
		_, found := c.Get(ctx, "CS 999")
		assert.False(t, found)
	})

	t.Run("Set and Get", func(t *testing.T) {
		c.Set(ctx, "CS 340", []byte(`{"course":"CS 340"}`))

		data, found := c.Get(ctx, "CS 340")
		assert.True(t, found)
		assert.JSONEq(t, `{"course":"CS 340"}`, string(data))
	})

	t.Run("Keys are exact strings", func(t *testing.T) {
		c.Set(ctx, "CS 340", []byte(`{"course":"CS 340"}`))

		_, found := c.Get(ctx, "cs 340")
		assert.False(t, found, "cache must not case-fold keys")
	})

	t.Run("Entries returns a copy", func(t *testing.T) {
		c.Set(ctx, "ECE 391", []byte(`{"course":"ECE 391"}`))

		entries := c.Entries(ctx)
		assert.Contains(t, entries, "CS 340")
		assert.Contains(t, entries, "ECE 391")

		delete(entries, "CS 340")
		_, found := c.Get(ctx, "CS 340")
		assert.True(t, found, "mutating the snapshot must not affect the cache")
	})
}

func TestCourseWeatherCache(t *testing.T) {
	typed := NewCourseWeatherCache(NewMemoryCache())

	t.Run("Set and Get", func(t *testing.T) {
		typed.Set("CS 340", testWeather())

		result, found := typed.Get("CS 340")
		require.True(t, found)
		assert.Equal(t, "CS 340", result.Course)
		assert.Equal(t, "2024-03-06 11:00:00", result.NextCourseMeeting)
		assert.Equal(t, "Partly Cloudy", result.ShortForecast)
		assert.EqualValues(t, 45, result.Temperature)
	})

	t.Run("Nil value ignored", func(t *testing.T) {
		typed.Set("CS 341", nil)

		_, found := typed.Get("CS 341")
		assert.False(t, found)
	})

	t.Run("Snapshot", func(t *testing.T) {
		snapshot := typed.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, "CS 340", snapshot["CS 340"].Course)
	})
}

func TestRedisCache(t *testing.T) {
	mockRedis := miniredis.RunT(t)

	c, err := NewRedisCache(&RedisCacheConfig{
		Addr:         mockRedis.Addr(),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("Set and Get", func(t *testing.T) {
		c.Set(ctx, "CS 340", []byte(`{"course":"CS 340"}`))

		data, found := c.Get(ctx, "CS 340")
		assert.True(t, found)
		assert.JSONEq(t, `{"course":"CS 340"}`, string(data))
	})

	t.Run("Get non-existent key", func(t *testing.T) {
		_, found := c.Get(ctx, "PHYS 211")
		assert.False(t, found)
	})

	t.Run("Entries strips the key prefix", func(t *testing.T) {
		c.Set(ctx, "ECE 391", []byte(`{"course":"ECE 391"}`))

		entries := c.Entries(ctx)
		assert.Contains(t, entries, "CS 340")
		assert.Contains(t, entries, "ECE 391")
	})

	t.Run("Entries never expire", func(t *testing.T) {
		mockRedis.FastForward(365 * 24 * time.Hour)

		_, found := c.Get(ctx, "CS 340")
		assert.True(t, found)
	})

	t.Run("Works behind typed wrapper", func(t *testing.T) {
		typed := NewCourseWeatherCache(c)
		typed.Set("MATH 241", testWeather())

		result, found := typed.Get("MATH 241")
		require.True(t, found)
		assert.Equal(t, "CS 340", result.Course)
	})
}

func TestRedisCache_ConnectionFailure(t *testing.T) {
	_, err := NewRedisCache(&RedisCacheConfig{
		Addr:        "localhost:1",
		DialTimeout: 100 * time.Millisecond,
	})
	assert.Error(t, err)
}
