package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/velvetglow/storefront/internal/models"
	"github.com/velvetglow/storefront/internal/utils"
	"github.com/velvetglow/storefront/internal/utils/response"
)

// NewsletterHandler is a stub: it accepts a subscription, thanks the
// subscriber and stores nothing.
type NewsletterHandler struct {
	validator *validator.Validate
}

func NewNewsletterHandler() *NewsletterHandler {
	return &NewsletterHandler{validator: validator.New()}
}

func (h *NewsletterHandler) Subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.NewsletterRequest

		contentType := r.Header.Get("Content-Type")

		if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {

			if err := r.ParseForm(); err != nil {
				response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}

			req.Email = r.FormValue("email")

			if err := utils.ValidateStruct(h.validator, &req); err != nil {
				response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}

		} else if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		slog.Info("Newsletter subscription received", slog.String("email", req.Email))

		response.Success(w, http.StatusOK, map[string]string{"message": "Thank you for subscribing!"})
	}
}
