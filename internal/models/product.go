package models

// Product is immutable once the catalog has loaded. The JSON tags match the
// shape of the catalog source document.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	InStock     bool    `json:"inStock"`
	Image       string  `json:"image,omitempty"`
}
