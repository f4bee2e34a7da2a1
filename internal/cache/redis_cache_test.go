package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/cache"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedMenu struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
}

func setupCacheTest(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{DefaultTTL: 10 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock
}

func TestCacheGet(t *testing.T) {
	ctx := t.Context()
	key := "menu:abc"
	stored := cachedMenu{Name: "lunch", Items: 12}
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	t.Run("Hit", func(t *testing.T) {
		redisCache, mock := setupCacheTest(t)
		mock.ExpectGet(key).SetVal(string(data))

		var out cachedMenu
		found, err := redisCache.Get(ctx, key, &out)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, stored, out)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss is not an error", func(t *testing.T) {
		redisCache, mock := setupCacheTest(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		var out cachedMenu
		found, err := redisCache.Get(ctx, key, &out)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, out)
	})

	t.Run("Redis error is wrapped", func(t *testing.T) {
		redisCache, mock := setupCacheTest(t)
		connErr := errors.New("connection refused")
		mock.ExpectGet(key).SetErr(connErr)

		var out cachedMenu
		found, err := redisCache.Get(ctx, key, &out)

		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, connErr)
	})

	t.Run("Corrupt payload fails to unmarshal", func(t *testing.T) {
		redisCache, mock := setupCacheTest(t)
		mock.ExpectGet(key).SetVal(`{"items": "twelve"}`)

		var out cachedMenu
		found, err := redisCache.Get(ctx, key, &out)

		require.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "failed to unmarshal cache data for key "+key)
	})
}

func TestCacheSet(t *testing.T) {
	ctx := t.Context()
	key := "menu:abc"
	stored := cachedMenu{Name: "dinner", Items: 8}
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	t.Run("Explicit TTL", func(t *testing.T) {
		redisCache, mock := setupCacheTest(t)
		mock.ExpectSet(key, data, 2*time.Minute).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, key, stored, 2*time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Non-positive TTL uses the default", func(t *testing.T) {
		redisCache, mock := setupCacheTest(t)
		mock.ExpectSet(key, data, 10*time.Minute).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, key, stored, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unmarshallable value", func(t *testing.T) {
		redisCache, _ := setupCacheTest(t)

		err := redisCache.Set(ctx, key, make(chan int), time.Minute)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal value for key "+key)
	})

	t.Run("Redis error is wrapped", func(t *testing.T) {
		redisCache, mock := setupCacheTest(t)
		setErr := errors.New("SET failed")
		mock.ExpectSet(key, data, time.Minute).SetErr(setErr)

		err := redisCache.Set(ctx, key, stored, time.Minute)

		assert.ErrorIs(t, err, setErr)
	})
}

func TestCacheDelete(t *testing.T) {
	ctx := t.Context()
	key := "menu:abc"

	t.Run("Success", func(t *testing.T) {
		redisCache, mock := setupCacheTest(t)
		mock.ExpectDel(key).SetVal(1)

		require.NoError(t, redisCache.Delete(ctx, key))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error is wrapped", func(t *testing.T) {
		redisCache, mock := setupCacheTest(t)
		delErr := errors.New("DEL failed")
		mock.ExpectDel(key).SetErr(delErr)

		assert.ErrorIs(t, redisCache.Delete(ctx, key), delErr)
	})
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "menu:abc", cache.Key(cache.MenuKeyPrefix, "abc"))
	assert.Equal(t, "order:1", cache.Key(cache.OrderKeyPrefix, "1"))
	assert.Equal(t, "reservation:", cache.Key(cache.ReservationKeyPrefix, ""))
}
