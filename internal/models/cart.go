package models

// CartLine is a snapshot of a product taken at add-time plus a quantity.
// Line identity is the originating product id; a cart holds at most one
// line per id.
type CartLine struct {
	ProductID   int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

// LineTotal returns price × quantity for this line.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

// UpdateQuantityRequest carries a signed delta; a delta that drives the
// quantity to zero or below removes the line.
type UpdateQuantityRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Delta     int   `json:"delta"      validate:"required"`
}
