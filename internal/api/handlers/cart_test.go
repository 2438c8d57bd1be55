package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetglow/storefront/internal/api/handlers"
	"github.com/velvetglow/storefront/internal/cart"
	"github.com/velvetglow/storefront/internal/catalog"
	"github.com/velvetglow/storefront/internal/config"
	"github.com/velvetglow/storefront/internal/storage"
	"github.com/velvetglow/storefront/internal/testutils"
	"github.com/velvetglow/storefront/internal/utils/response"
)

const testCatalog = `{
	"products": [
		{"id": 1, "name": "Tinted Balm", "category": "lips", "price": 10.00, "description": "Sheer tinted balm", "inStock": true},
		{"id": 2, "name": "Cream Blush", "category": "face", "price": 20.00, "description": "Buildable cream blush", "inStock": true},
		{"id": 3, "name": "Liner Pen", "category": "eyes", "price": 15.00, "description": "Fine liner pen", "inStock": false}
	]
}`

type stores struct {
	catalog *catalog.Store
	cart    *cart.Store
}

func setupStores(t *testing.T) *stores {
	t.Helper()

	dir := t.TempDir()

	sourcePath := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(sourcePath, []byte(testCatalog), 0o644))

	catalogStore := catalog.NewStore(&config.Catalog{Source: sourcePath, FetchTimeout: time.Second})
	catalogStore.Load(t.Context())

	kv, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	cartStore := cart.NewStore(catalogStore, kv)
	cartStore.Load(t.Context())

	return &stores{catalog: catalogStore, cart: cartStore}
}

type cartPayload struct {
	Lines []struct {
		ProductID int64 `json:"id"`
		Quantity  int   `json:"quantity"`
	} `json:"lines"`
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

func decodeCart(t *testing.T, body []byte) cartPayload {
	t.Helper()

	var resp struct {
		Success bool        `json:"success"`
		Data    cartPayload `json:"data"`
	}

	require.NoError(t, json.Unmarshal(body, &resp))
	require.True(t, resp.Success)

	return resp.Data
}

func TestAddItem(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		cartHandler := handlers.NewCartHandler(s.cart)

		body := []byte(`{"product_id": 1}`)
		req := testutils.CreateTestRequest("POST", "/api/v1/cart/items", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, 200, recorder.Code)

		payload := decodeCart(t, recorder.Body.Bytes())
		require.Len(t, payload.Lines, 1)
		assert.Equal(t, int64(1), payload.Lines[0].ProductID)
		assert.Equal(t, 1, payload.ItemCount)
		assert.InDelta(t, 10.0, payload.Subtotal, 1e-9)
		assert.InDelta(t, 10.8, payload.Total, 1e-9)
	})

	t.Run("Success - Unknown Product Is No-Op", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		cartHandler := handlers.NewCartHandler(s.cart)

		body := []byte(`{"product_id": 999}`)
		req := testutils.CreateTestRequest("POST", "/api/v1/cart/items", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, 200, recorder.Code)
		assert.Empty(t, decodeCart(t, recorder.Body.Bytes()).Lines)
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		cartHandler := handlers.NewCartHandler(s.cart)

		req := testutils.CreateTestRequest("POST", "/api/v1/cart/items", bytes.NewBuffer(nil), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, 400, recorder.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, response.StatusError, resp.Status)
	})
}

func TestUpdateQuantityHandler(t *testing.T) {

	t.Run("Success - Decrement To Zero Removes Line", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		require.NoError(t, s.cart.Add(t.Context(), 1))

		cartHandler := handlers.NewCartHandler(s.cart)

		body := []byte(`{"product_id": 1, "delta": -1}`)
		req := testutils.CreateTestRequest("PUT", "/api/v1/cart/items", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity()(recorder, req)

		// Assert
		assert.Equal(t, 200, recorder.Code)
		assert.Empty(t, decodeCart(t, recorder.Body.Bytes()).Lines)
	})
}

func TestRemoveItem(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		require.NoError(t, s.cart.Add(t.Context(), 1))
		require.NoError(t, s.cart.Add(t.Context(), 2))

		cartHandler := handlers.NewCartHandler(s.cart)

		req := testutils.CreateTestRequest("DELETE", "/api/v1/cart/items/1", nil, map[string]string{"id": "1"})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem()(recorder, req)

		// Assert
		assert.Equal(t, 200, recorder.Code)

		payload := decodeCart(t, recorder.Body.Bytes())
		require.Len(t, payload.Lines, 1)
		assert.Equal(t, int64(2), payload.Lines[0].ProductID)
	})

	t.Run("Failure - Invalid Id", func(t *testing.T) {
		// Arrange
		s := setupStores(t)
		cartHandler := handlers.NewCartHandler(s.cart)

		req := testutils.CreateTestRequest("DELETE", "/api/v1/cart/items/abc", nil, map[string]string{"id": "abc"})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem()(recorder, req)

		// Assert
		assert.Equal(t, 400, recorder.Code)
	})
}

func TestGetCartHandler(t *testing.T) {
	// Arrange
	s := setupStores(t)
	require.NoError(t, s.cart.Add(t.Context(), 1))
	require.NoError(t, s.cart.Add(t.Context(), 1))
	require.NoError(t, s.cart.Add(t.Context(), 2))

	cartHandler := handlers.NewCartHandler(s.cart)

	req := testutils.CreateTestRequest("GET", "/api/v1/cart", nil, nil)
	recorder := httptest.NewRecorder()

	// Act
	cartHandler.GetCart()(recorder, req)

	// Assert
	assert.Equal(t, 200, recorder.Code)

	payload := decodeCart(t, recorder.Body.Bytes())
	assert.Len(t, payload.Lines, 2)
	assert.Equal(t, 3, payload.ItemCount)
	assert.InDelta(t, 40.0, payload.Subtotal, 1e-9)
	assert.InDelta(t, 3.2, payload.Tax, 1e-9)
	assert.InDelta(t, 43.2, payload.Total, 1e-9)
}
