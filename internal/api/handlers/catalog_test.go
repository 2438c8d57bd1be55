package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetglow/storefront/internal/api/handlers"
	"github.com/velvetglow/storefront/internal/models"
	"github.com/velvetglow/storefront/internal/testutils"
	"github.com/velvetglow/storefront/internal/utils/response"
)

type productsPayload struct {
	Products []models.Product `json:"products"`
	Count    int              `json:"count"`
}

func decodeProducts(t *testing.T, body []byte) productsPayload {
	t.Helper()

	var resp struct {
		Success bool            `json:"success"`
		Data    productsPayload `json:"data"`
	}

	require.NoError(t, json.Unmarshal(body, &resp))
	require.True(t, resp.Success)

	return resp.Data
}

func TestListProducts(t *testing.T) {

	t.Run("Success - Full Catalog", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		catalogHandler := handlers.NewCatalogHandler(s.catalog)

		req := testutils.CreateTestRequest("GET", "/api/v1/products", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		catalogHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, 200, recorder.Code)

		payload := decodeProducts(t, recorder.Body.Bytes())
		assert.Equal(t, 3, payload.Count)
		assert.Equal(t, "Tinted Balm", payload.Products[0].Name)
	})

	t.Run("Success - Category Filter From Query", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		catalogHandler := handlers.NewCatalogHandler(s.catalog)

		req := testutils.CreateTestRequest("GET", "/api/v1/products?category=face", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		catalogHandler.ListProducts()(recorder, req)

		// Assert
		payload := decodeProducts(t, recorder.Body.Bytes())
		require.Equal(t, 1, payload.Count)
		assert.Equal(t, "Cream Blush", payload.Products[0].Name)
	})

	t.Run("Success - Sort And Search", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		catalogHandler := handlers.NewCatalogHandler(s.catalog)

		req := testutils.CreateTestRequest("GET", "/api/v1/products?sort=price-high", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		catalogHandler.ListProducts()(recorder, req)

		// Assert
		payload := decodeProducts(t, recorder.Body.Bytes())
		require.Equal(t, 3, payload.Count)
		assert.Equal(t, "Cream Blush", payload.Products[0].Name)
		assert.Equal(t, "Tinted Balm", payload.Products[2].Name)
	})

	t.Run("Success - Zero Matches Is Not An Error", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		catalogHandler := handlers.NewCatalogHandler(s.catalog)

		req := testutils.CreateTestRequest("GET", "/api/v1/products?search=nothing+matches", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		catalogHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, 200, recorder.Code)
		assert.Equal(t, 0, decodeProducts(t, recorder.Body.Bytes()).Count)
	})
}

func TestGetProduct(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		catalogHandler := handlers.NewCatalogHandler(s.catalog)

		req := testutils.CreateTestRequest("GET", "/api/v1/products/2", nil, map[string]string{"id": "2"})
		recorder := httptest.NewRecorder()

		// Act
		catalogHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, 200, recorder.Code)

		var resp struct {
			Success bool           `json:"success"`
			Data    models.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Cream Blush", resp.Data.Name)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		catalogHandler := handlers.NewCatalogHandler(s.catalog)

		req := testutils.CreateTestRequest("GET", "/api/v1/products/999", nil, map[string]string{"id": "999"})
		recorder := httptest.NewRecorder()

		// Act
		catalogHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, 404, recorder.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
	})

	t.Run("Failure - Invalid Id", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		catalogHandler := handlers.NewCatalogHandler(s.catalog)

		req := testutils.CreateTestRequest("GET", "/api/v1/products/abc", nil, map[string]string{"id": "abc"})
		recorder := httptest.NewRecorder()

		// Act
		catalogHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, 400, recorder.Code)
	})
}
