package catalog

import (
	"context"
	"errors"

	"caviste/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductUpdate carries a partial update; nil fields keep the stored
// value. This mirrors the merge semantics of the catalog helpers.
type ProductUpdate struct {
	Name               *string
	Category           *string
	Price              *int
	OriginalPrice      *int
	DiscountPercentage *int
	Description        *string
	Images             []string
	Stock              *int
	IsLimited          *bool
	IsNew              *bool
	IsPromo            *bool
	IsFeatured         *bool
}

// ProductRepository defines the interface for product data access.
// List and Search return products in insertion order; no further
// ordering is guaranteed.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, id uuid.UUID, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	Search(ctx context.Context, query string) ([]*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Featured(ctx context.Context) ([]*domain.Product, error)
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
}
