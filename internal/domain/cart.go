package domain

import (
	"github.com/google/uuid"
)

// CartItem is one line of a cart. Name, Price and Image are snapshots of
// the product taken at add time; later catalog edits do not touch lines
// already in a cart.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     int       `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
}

// Subtotal returns the line total.
func (i CartItem) Subtotal() int {
	return i.Price * i.Quantity
}
