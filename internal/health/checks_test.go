package health_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/config"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/health"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/mocks"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{Otel: config.OtelConfig{ServiceName: "farm-marketplace"}}
}

func TestNewHealthHandler(t *testing.T) {
	t.Run("Success - Catalog Available", func(t *testing.T) {
		// Arrange
		repo := new(mocks.CatalogRepository)
		repo.On("ListProducts", mock.Anything).Return([]models.Product{{ID: "1"}}, nil)

		h, err := health.NewHealthHandler(testConfig(), health.Dependencies{Catalog: repo})
		require.NoError(t, err)

		rr := httptest.NewRecorder()

		// Act
		h.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "farm-marketplace")
	})

	t.Run("Failure - Catalog Unavailable", func(t *testing.T) {
		// Arrange
		repo := new(mocks.CatalogRepository)
		repo.On("ListProducts", mock.Anything).Return(nil, errors.New("file not found"))

		h, err := health.NewHealthHandler(testConfig(), health.Dependencies{Catalog: repo})
		require.NoError(t, err)

		rr := httptest.NewRecorder()

		// Act
		h.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), "failed to load catalog")
	})

	t.Run("Failure - Empty Catalog", func(t *testing.T) {
		// Arrange
		repo := new(mocks.CatalogRepository)
		repo.On("ListProducts", mock.Anything).Return([]models.Product{}, nil)

		h, err := health.NewHealthHandler(testConfig(), health.Dependencies{Catalog: repo})
		require.NoError(t, err)

		rr := httptest.NewRecorder()

		// Act
		h.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
