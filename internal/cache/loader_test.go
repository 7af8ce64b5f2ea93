package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/cache"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.CatalogKeyPrefix, "all")
	products := catalogFixture()
	jsonData, err := json.Marshal(products)
	require.NoError(t, err)

	loaderFor := func(calls *int, result []models.Product, err error) func(context.Context) ([]models.Product, error) {
		return func(context.Context) ([]models.Product, error) {
			*calls++
			return result, err
		}
	}

	t.Run("Success - Miss Loads Catalog And Stores It", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		calls := 0

		mock.ExpectGet(key).SetErr(redis.Nil)
		mock.ExpectSet(key, jsonData, time.Minute).SetVal("OK")

		// Act
		result, err := cache.Load(ctx, redisCache, key, time.Minute, loaderFor(&calls, products, nil))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, products, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Hit Skips Loader", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		calls := 0

		mock.ExpectGet(key).SetVal(string(jsonData))

		// Act
		result, err := cache.Load(ctx, redisCache, key, time.Minute, loaderFor(&calls, nil, nil))

		// Assert
		require.NoError(t, err)
		assert.Zero(t, calls)
		require.Len(t, result, 1)
		assert.Equal(t, models.CategoryVegetables, result[0].Category)
		assert.True(t, products[0].Price.Equal(result[0].Price))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Redis Down Falls Back To Loader", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		calls := 0

		mock.ExpectGet(key).SetErr(errors.New("connection refused"))
		mock.ExpectSet(key, jsonData, time.Minute).SetErr(errors.New("connection refused"))

		// Act
		result, err := cache.Load(ctx, redisCache, key, time.Minute, loaderFor(&calls, products, nil))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, products, result)
	})

	t.Run("Failure - Loader Error Is Not Cached", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		calls := 0
		loadErr := errors.New("catalog unavailable")

		mock.ExpectGet(key).SetErr(redis.Nil)

		// Act
		result, err := cache.Load(ctx, redisCache, key, time.Minute, loaderFor(&calls, nil, loadErr))

		// Assert
		require.ErrorIs(t, err, loadErr)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Nil Cache Always Loads", func(t *testing.T) {
		// Arrange
		calls := 0

		// Act
		result, err := cache.Load(ctx, nil, key, time.Minute, loaderFor(&calls, products, nil))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, products, result)
	})
}
