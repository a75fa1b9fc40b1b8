package domain

import (
	"github.com/google/uuid"
)

// Product represents a product in the catalog. Prices are integer XOF
// amounts; the currency has no minor unit. OriginalPrice and
// DiscountPercentage are only meaningful while IsPromo is set, and the
// promo invariant is OriginalPrice >= Price.
type Product struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Category           string    `json:"category" db:"category"`
	Price              int       `json:"price" db:"price"`
	OriginalPrice      int       `json:"original_price,omitempty" db:"original_price"`
	DiscountPercentage int       `json:"discount_percentage,omitempty" db:"discount_percentage"`
	Description        string    `json:"description,omitempty" db:"description"`
	Images             []string  `json:"images" db:"images"`
	Stock              int       `json:"stock" db:"stock"`
	IsLimited          bool      `json:"is_limited" db:"is_limited"`
	IsNew              bool      `json:"is_new" db:"is_new"`
	IsPromo            bool      `json:"is_promo" db:"is_promo"`
	IsFeatured         bool      `json:"is_featured" db:"is_featured"`
}

// CoverImage returns the primary image, the first of the ordered list.
func (p *Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Category represents a product category. Products reference categories
// by display name, not by ID; renaming a category silently orphans its
// products.
type Category struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	ImageURL string    `json:"image_url" db:"image_url"`
}
