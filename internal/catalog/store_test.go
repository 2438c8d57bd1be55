package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetglow/storefront/internal/catalog"
	"github.com/velvetglow/storefront/internal/config"
)

const sourceDocument = `{
	"products": [
		{"id": 10, "name": "Dewy Primer", "category": "face", "price": 21.50, "description": "Hydrating makeup primer", "inStock": true},
		{"id": 11, "name": "Lash Curler", "category": "eyes", "price": 12.00, "description": "Classic lash curler", "inStock": false}
	]
}`

func newStore(t *testing.T, source string) *catalog.Store {
	t.Helper()

	return catalog.NewStore(&config.Catalog{
		Source:       source,
		FetchTimeout: 2 * time.Second,
	})
}

func writeSource(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadFromFile(t *testing.T) {
	store := newStore(t, writeSource(t, sourceDocument))

	store.Load(t.Context())

	products := store.GetAll()
	require.Len(t, products, 2)
	assert.Equal(t, int64(10), products[0].ID, "source order is preserved")
	assert.Equal(t, "Dewy Primer", products[0].Name)
	assert.False(t, products[1].InStock)
}

func TestLoadFromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sourceDocument))
	}))
	defer server.Close()

	store := newStore(t, server.URL)

	store.Load(t.Context())

	assert.Len(t, store.GetAll(), 2)
}

func TestLoadFallback(t *testing.T) {

	cases := []struct {
		name   string
		source func(t *testing.T) string
	}{
		{
			name:   "Missing file",
			source: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
		},
		{
			name:   "Malformed document",
			source: func(t *testing.T) string { return writeSource(t, "{not valid json") },
		},
		{
			name:   "Empty product list",
			source: func(t *testing.T) string { return writeSource(t, `{"products": []}`) },
		},
		{
			name: "HTTP error status",
			source: func(t *testing.T) string {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}))
				t.Cleanup(server.Close)

				return server.URL
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newStore(t, tc.source(t))

			store.Load(t.Context())

			products := store.GetAll()
			require.Len(t, products, 4, "fallback catalog always has content")

			categories := make(map[string]bool)
			for _, p := range products {
				categories[p.Category] = true
			}

			assert.Equal(t, map[string]bool{"face": true, "eyes": true, "lips": true, "body": true}, categories,
				"fallback spans the four known categories")
		})
	}
}

func TestFindByID(t *testing.T) {
	store := newStore(t, writeSource(t, sourceDocument))
	store.Load(t.Context())

	t.Run("Found", func(t *testing.T) {
		product, ok := store.FindByID(11)

		assert.True(t, ok)
		assert.Equal(t, "Lash Curler", product.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		product, ok := store.FindByID(999)

		assert.False(t, ok)
		assert.Empty(t, product)
	})
}

func TestFeatured(t *testing.T) {
	store := newStore(t, writeSource(t, sourceDocument))
	store.Load(t.Context())

	t.Run("Shorter catalog returns everything", func(t *testing.T) {
		assert.Len(t, store.Featured(8), 2)
	})

	t.Run("Longer catalog is truncated", func(t *testing.T) {
		assert.Len(t, store.Featured(1), 1)
	})
}
