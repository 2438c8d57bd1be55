package models

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}
