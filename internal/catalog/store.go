package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/velvetglow/storefront/internal/config"
	"github.com/velvetglow/storefront/internal/models"
)

// Store holds the product list for the lifetime of the process. The list is
// loaded once at startup and immutable afterwards.
type Store struct {
	source  string
	timeout time.Duration
	client  *http.Client

	mu       sync.RWMutex
	products []models.Product
}

type sourceDocument struct {
	Products []models.Product `json:"products"`
}

func NewStore(cfg *config.Catalog) *Store {
	return &Store{
		source:  cfg.Source,
		timeout: cfg.FetchTimeout,
		client:  &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// Load fetches the catalog from the configured source. A single attempt is
// made; on any failure the fixed sample catalog is substituted so the views
// always have content to render. Load never fails.
func (s *Store) Load(ctx context.Context) {

	products, err := s.fetch(ctx)
	if err != nil {
		slog.Error("Failed to load product catalog, using fallback",
			slog.String("source", s.source),
			slog.String("error", err.Error()))

		products = sampleProducts()
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()

	slog.Info("Product catalog loaded", slog.Int("count", len(products)))
}

func (s *Store) fetch(ctx context.Context) ([]models.Product, error) {

	data, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	var doc sourceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog source: %w", err)
	}

	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("catalog source contains no products")
	}

	return doc.Products, nil
}

func (s *Store) read(ctx context.Context) ([]byte, error) {

	if strings.HasPrefix(s.source, "http://") || strings.HasPrefix(s.source, "https://") {

		reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, s.source, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build catalog request: %w", err)
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch catalog source: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog response: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(s.source)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return data, nil
}

// GetAll returns the loaded products in source order.
func (s *Store) GetAll() []models.Product {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)

	return out
}

// FindByID returns the product with the given id. A miss is not an error;
// callers treat it as a silent no-op.
func (s *Store) FindByID(id int64) (models.Product, bool) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}

	return models.Product{}, false
}

// Featured returns the first n products for the landing page.
func (s *Store) Featured(n int) []models.Product {

	all := s.GetAll()
	if len(all) > n {
		all = all[:n]
	}

	return all
}

// sampleProducts is the fallback catalog, one product per known category.
func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Flawless Foundation", Category: "face", Price: 32.99, Description: "Full coverage liquid foundation", InStock: true},
		{ID: 2, Name: "Volume Max Mascara", Category: "eyes", Price: 22.99, Description: "Volumizing mascara for dramatic lashes", InStock: true},
		{ID: 3, Name: "Velvet Matte Lipstick", Category: "lips", Price: 26.99, Description: "Long-lasting matte lipstick", InStock: true},
		{ID: 4, Name: "Silky Body Lotion", Category: "body", Price: 24.99, Description: "Hydrating body lotion", InStock: true},
	}
}
