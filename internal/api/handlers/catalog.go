package handlers

import (
	"net/http"
	"strconv"

	"github.com/velvetglow/storefront/internal/catalog"
	appErrors "github.com/velvetglow/storefront/internal/errors"
	"github.com/velvetglow/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalog *catalog.Store
}

func NewCatalogHandler(catalogStore *catalog.Store) *CatalogHandler {
	return &CatalogHandler{catalog: catalogStore}
}

// ListProducts applies the filter pipeline to the full catalog. An empty
// result is a normal response, not an error.
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		criteria := catalog.Criteria{
			Category: r.URL.Query().Get("category"),
			Search:   r.URL.Query().Get("search"),
			Sort:     r.URL.Query().Get("sort"),
		}

		products := catalog.FilterAndSort(h.catalog.GetAll(), criteria)

		response.Success(w, http.StatusOK, map[string]any{
			"products": products,
			"count":    len(products),
		})
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		idStr := r.PathValue("id")

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		product, ok := h.catalog.FindByID(id)
		if !ok {
			response.Error(w, appErrors.NotFoundError("Product not found"))
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
