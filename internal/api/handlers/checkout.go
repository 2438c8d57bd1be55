package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/velvetglow/storefront/internal/checkout"
	"github.com/velvetglow/storefront/internal/models"
	"github.com/velvetglow/storefront/internal/utils"
	"github.com/velvetglow/storefront/internal/utils/response"
	"github.com/velvetglow/storefront/internal/view"
)

type CheckoutHandler struct {
	flow     *checkout.Flow
	renderer *view.Renderer
}

func NewCheckoutHandler(flow *checkout.Flow, renderer *view.Renderer) *CheckoutHandler {
	return &CheckoutHandler{
		flow:     flow,
		renderer: renderer,
	}
}

// OpenSummary opens the checkout summary. An empty cart surfaces the
// transient notice and leaves the flow idle.
func (h *CheckoutHandler) OpenSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.flow.OpenSummary(); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"state": h.flow.State().String()})
	}
}

func (h *CheckoutHandler) Cancel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.flow.Cancel()

		response.Success(w, http.StatusOK, map[string]string{"state": h.flow.State().String()})
	}
}

// Submit runs the simulated checkout. Form posts get the HTML confirmation
// with a timed redirect back to the catalog entry point; JSON requests get
// the fabricated order record.
func (h *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		req, ok := h.decodeSubmit(w, r)
		if !ok {
			return
		}

		order, err := h.flow.Submit(r.Context(), req)
		if err != nil {
			slog.Warn("Checkout submission rejected", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("Order placed",
			slog.String("orderId", order.ID),
			slog.Float64("total", order.Total),
			slog.Int("lines", len(order.Items)))

		// Success → Idle once the confirmation is out the door.
		defer h.flow.Reset()

		if wantsHTML(r) {

			redirectSeconds := int(math.Round(h.flow.RedirectDelay().Seconds()))

			data := view.ConfirmationData{
				Order:           order,
				RedirectSeconds: redirectSeconds,
				RedirectURL:     "/",
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")

			if err := h.renderer.ConfirmationPage(w, data); err != nil {
				slog.Error("Failed to render confirmation", slog.String("error", err.Error()))
			}

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// decodeSubmit accepts either a JSON body or a form-encoded checkout page
// submission.
func (h *CheckoutHandler) decodeSubmit(w http.ResponseWriter, r *http.Request) (*models.CheckoutRequest, bool) {

	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {

		if err := r.ParseForm(); err != nil {
			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return nil, false
		}

		return &models.CheckoutRequest{
			FullName: r.FormValue("fullName"),
			Email:    r.FormValue("email"),
			Phone:    r.FormValue("phone"),
			Street:   r.FormValue("address"),
			City:     r.FormValue("city"),
			State:    r.FormValue("state"),
			Zip:      r.FormValue("zip"),
		}, true
	}

	var req models.CheckoutRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
		return nil, false
	}

	return &req, true
}

func wantsHTML(r *http.Request) bool {

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {
		return true
	}

	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
