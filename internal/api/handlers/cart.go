package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/velvetglow/storefront/internal/cart"
	"github.com/velvetglow/storefront/internal/checkout"
	appErrors "github.com/velvetglow/storefront/internal/errors"
	"github.com/velvetglow/storefront/internal/models"
	"github.com/velvetglow/storefront/internal/utils"
	"github.com/velvetglow/storefront/internal/utils/response"
)

type CartHandler struct {
	cart      *cart.Store
	validator *validator.Validate
}

func NewCartHandler(cartStore *cart.Store) *CartHandler {
	return &CartHandler{
		cart:      cartStore,
		validator: validator.New(),
	}
}

type cartResponse struct {
	Lines     []models.CartLine `json:"lines"`
	ItemCount int               `json:"itemCount"`
	Subtotal  float64           `json:"subtotal"`
	Tax       float64           `json:"tax"`
	Total     float64           `json:"total"`
}

// snapshot derives the response fresh from the store; totals are never
// cached between requests.
func (h *CartHandler) snapshot() cartResponse {

	subtotal := h.cart.Total()
	tax := subtotal * checkout.TaxRate

	return cartResponse{
		Lines:     h.cart.Lines(),
		ItemCount: h.cart.ItemCount(),
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.snapshot())
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.cart.Add(r.Context(), req.ProductID); err != nil {
			slog.Error("Error adding item to cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.snapshot())
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.cart.UpdateQuantity(r.Context(), req.ProductID, req.Delta); err != nil {
			slog.Error("Error updating cart quantity", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.snapshot())
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		idStr := r.PathValue("id")

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		if err := h.cart.Remove(r.Context(), id); err != nil {
			slog.Error("Error removing cart item", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.snapshot())
	}
}
