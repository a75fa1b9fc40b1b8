package service

import (
	"context"
	"fmt"

	"caviste/internal/catalog"
	"caviste/internal/domain"

	"github.com/google/uuid"
)

// BrowseQuery carries the navigation inputs of the catalog page. Search
// and Category come straight from the query string; Category narrows the
// toggle set to that single category (case-insensitive), and a name
// outside the fixed category set matches nothing. The remaining fields
// are the filter controls themselves.
type BrowseQuery struct {
	Search      string
	Category    string
	MinPrice    *int
	MaxPrice    *int
	NewOnly     bool
	PromoOnly   bool
	LimitedOnly bool
}

// CatalogService answers the read side of the storefront: browsing,
// single-product resolution, categories and the featured strip.
type CatalogService interface {
	Browse(ctx context.Context, query BrowseQuery) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Categories(ctx context.Context) ([]*domain.Category, error)
	FeaturedProducts(ctx context.Context) ([]*domain.Product, error)
}

type catalogService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	maxPrice   int
}

// NewCatalogService creates a CatalogService. maxPrice is the default
// ceiling of the price range when the caller does not set one.
func NewCatalogService(
	products catalog.ProductRepository,
	categories catalog.CategoryRepository,
	maxPrice int,
) CatalogService {
	return &catalogService{
		products:   products,
		categories: categories,
		maxPrice:   maxPrice,
	}
}

// Browse seeds the filter from the navigation inputs and applies it over
// the full product list. The result keeps the repository's insertion
// order; an empty result is an empty slice, never nil.
func (s *catalogService) Browse(ctx context.Context, query BrowseQuery) ([]*domain.Product, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	filter := catalog.NewFilter(categories, s.maxPrice)
	filter.Search = query.Search
	if query.Category != "" {
		filter.NarrowToCategory(query.Category)
	}
	if query.MinPrice != nil {
		filter.MinPrice = *query.MinPrice
	}
	if query.MaxPrice != nil {
		filter.MaxPrice = *query.MaxPrice
	}
	filter.NewOnly = query.NewOnly
	filter.PromoOnly = query.PromoOnly
	filter.LimitedOnly = query.LimitedOnly

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return filter.Apply(products), nil
}

// GetProduct resolves one product by identifier.
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if err == catalog.ErrProductNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// Categories returns the category taxonomy.
func (s *catalogService) Categories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// FeaturedProducts returns the landing page strip.
func (s *catalogService) FeaturedProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.Featured(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	return products, nil
}
