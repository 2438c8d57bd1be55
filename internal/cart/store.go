package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/velvetglow/storefront/internal/catalog"
	appErrors "github.com/velvetglow/storefront/internal/errors"
	"github.com/velvetglow/storefront/internal/models"
	"github.com/velvetglow/storefront/internal/storage"
)

// Store owns the cart for the process. The persisted copy is a serialized
// mirror written after every mutation; insertion order is display order.
type Store struct {
	catalog *catalog.Store
	kv      storage.KV

	mu    sync.Mutex
	lines []models.CartLine
}

func NewStore(catalogStore *catalog.Store, kv storage.KV) *Store {
	return &Store{
		catalog: catalogStore,
		kv:      kv,
	}
}

// Load rehydrates the cart from storage. Absent or malformed data yields an
// empty cart; Load never surfaces an error to the caller.
func (s *Store) Load(ctx context.Context) {

	var lines []models.CartLine

	found, err := s.kv.Get(ctx, storage.CartKey, &lines)
	if err != nil {
		slog.Warn("Malformed or unreadable persisted cart, starting empty",
			slog.String("error", err.Error()))

		lines = nil
	}

	if !found {
		lines = nil
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
}

// Add looks up the product and merges it into the cart: an existing line
// for the same id gains quantity 1, otherwise a new snapshot line is
// appended. Unknown ids and out-of-stock products are silent no-ops.
func (s *Store) Add(ctx context.Context, productID int64) error {

	product, ok := s.catalog.FindByID(productID)
	if !ok {
		slog.Debug("Add to cart ignored, unknown product", slog.Int64("productId", productID))
		return nil
	}

	if !product.InStock {
		slog.Debug("Add to cart ignored, product out of stock", slog.Int64("productId", productID))
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity++
			merged = true

			break
		}
	}

	if !merged {
		s.lines = append(s.lines, models.CartLine{
			ProductID:   product.ID,
			Name:        product.Name,
			Category:    product.Category,
			Price:       product.Price,
			Description: product.Description,
			Quantity:    1,
		})
	}

	return s.persist(ctx)
}

// UpdateQuantity adds delta to the line's quantity. A resulting quantity of
// zero or below removes the line entirely. Absent lines are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, delta int) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {

		if s.lines[i].ProductID != productID {
			continue
		}

		s.lines[i].Quantity += delta

		if s.lines[i].Quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}

		return s.persist(ctx)
	}

	return nil
}

// Remove deletes the line with the matching product id, if present.
func (s *Store) Remove(ctx context.Context, productID int64) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)

			return s.persist(ctx)
		}
	}

	return nil
}

// Clear empties the cart. Used on successful checkout completion.
func (s *Store) Clear(ctx context.Context) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil

	return s.persist(ctx)
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []models.CartLine {

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)

	return out
}

// Total is the sum of price × quantity across lines, recomputed on every
// call so it can never go stale against the persisted state.
func (s *Store) Total() float64 {

	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64

	for _, line := range s.lines {
		total += line.LineTotal()
	}

	return total
}

// ItemCount is the sum of quantities across lines.
func (s *Store) ItemCount() int {

	s.mu.Lock()
	defer s.mu.Unlock()

	var count int

	for _, line := range s.lines {
		count += line.Quantity
	}

	return count
}

// persist writes the current lines through to storage. Callers must hold
// the mutex. An empty cart is written as an empty array, not deleted, so a
// cleared cart round-trips as "empty" rather than "absent".
func (s *Store) persist(ctx context.Context) error {

	lines := s.lines
	if lines == nil {
		lines = []models.CartLine{}
	}

	if err := s.kv.Set(ctx, storage.CartKey, lines); err != nil {
		return appErrors.StorageError("Failed to persist cart").WithError(err)
	}

	return nil
}
