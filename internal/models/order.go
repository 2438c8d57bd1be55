package models

import "time"

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type Customer struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Address  Address `json:"address"`
}

// OrderRecord is fabricated at checkout submission and exists only to
// populate the confirmation; it is never persisted.
type OrderRecord struct {
	ID       string     `json:"id"`
	Customer Customer   `json:"customer"`
	Items    []CartLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"orderDate"`
}

// CheckoutRequest mirrors the checkout form. All fields are required;
// validation happens before the simulated processing begins.
type CheckoutRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required"`
	Street   string `json:"address"  validate:"required"`
	City     string `json:"city"     validate:"required"`
	State    string `json:"state"    validate:"required"`
	Zip      string `json:"zip"      validate:"required"`
}
