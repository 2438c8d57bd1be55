package handlers

import (
	"log/slog"
	"net/http"

	"github.com/velvetglow/storefront/internal/cart"
	"github.com/velvetglow/storefront/internal/catalog"
	"github.com/velvetglow/storefront/internal/checkout"
	"github.com/velvetglow/storefront/internal/view"
)

// featuredCount is how many products the landing page shows.
const featuredCount = 8

// PagesHandler serves the server-rendered storefront pages. Pages are
// recomputed from the stores on every request.
type PagesHandler struct {
	catalog  *catalog.Store
	cart     *cart.Store
	renderer *view.Renderer
}

func NewPagesHandler(catalogStore *catalog.Store, cartStore *cart.Store, renderer *view.Renderer) *PagesHandler {
	return &PagesHandler{
		catalog:  catalogStore,
		cart:     cartStore,
		renderer: renderer,
	}
}

func (h *PagesHandler) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		data := view.HomePageData{
			Featured:  h.catalog.Featured(featuredCount),
			ItemCount: h.cart.ItemCount(),
		}

		h.render(w, func() error { return h.renderer.HomePage(w, data) })
	}
}

// Products renders the catalog page. A category query parameter supplied on
// entry pre-selects that filter; the catalog is always fully loaded before
// the server starts listening, so the filter never races the load.
func (h *PagesHandler) Products() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		criteria := catalog.Criteria{
			Category: r.URL.Query().Get("category"),
			Search:   r.URL.Query().Get("search"),
			Sort:     r.URL.Query().Get("sort"),
		}

		data := view.ProductsPageData{
			Products:  catalog.FilterAndSort(h.catalog.GetAll(), criteria),
			Category:  criteria.Category,
			Search:    criteria.Search,
			Sort:      criteria.Sort,
			ItemCount: h.cart.ItemCount(),
		}

		h.render(w, func() error { return h.renderer.ProductsPage(w, data) })
	}
}

func (h *PagesHandler) Cart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		subtotal := h.cart.Total()
		tax := subtotal * checkout.TaxRate

		data := view.CartPageData{
			Lines:     h.cart.Lines(),
			Subtotal:  subtotal,
			Tax:       tax,
			Total:     subtotal + tax,
			ItemCount: h.cart.ItemCount(),
		}

		h.render(w, func() error { return h.renderer.CartPage(w, data) })
	}
}

func (h *PagesHandler) render(w http.ResponseWriter, renderFn func() error) {

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := renderFn(); err != nil {
		slog.Error("Failed to render page", slog.String("error", err.Error()))
	}
}
