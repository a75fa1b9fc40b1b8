package catalog

import (
	"context"
	"strings"
	"sync"

	"caviste/internal/domain"

	"github.com/google/uuid"
)

// MemoryStore keeps the whole catalog resident in memory. It is the
// default backend and is seeded once at construction; insertion order is
// preserved across all reads.
type MemoryStore struct {
	mu         sync.RWMutex
	products   []*domain.Product
	categories []*domain.Category
}

// NewMemoryStore creates a store holding the given catalog. The slices
// are copied so callers cannot alias internal state.
func NewMemoryStore(categories []*domain.Category, products []*domain.Product) *MemoryStore {
	s := &MemoryStore{
		products:   make([]*domain.Product, 0, len(products)),
		categories: make([]*domain.Category, 0, len(categories)),
	}
	for _, c := range categories {
		cc := *c
		s.categories = append(s.categories, &cc)
	}
	for _, p := range products {
		pp := *p
		s.products = append(s.products, &pp)
	}
	return s
}

// Create appends a product, assigning an ID when none is set.
func (s *MemoryStore) Create(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	stored := *product
	s.products = append(s.products, &stored)
	return nil
}

// Update merges the provided fields over the existing record and returns
// the result.
func (s *MemoryStore) Update(_ context.Context, id uuid.UUID, update ProductUpdate) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrProductNotFound
	}

	p := s.products[idx]
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Category != nil {
		p.Category = *update.Category
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.OriginalPrice != nil {
		p.OriginalPrice = *update.OriginalPrice
	}
	if update.DiscountPercentage != nil {
		p.DiscountPercentage = *update.DiscountPercentage
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Images != nil {
		p.Images = append([]string(nil), update.Images...)
	}
	if update.Stock != nil {
		p.Stock = *update.Stock
	}
	if update.IsLimited != nil {
		p.IsLimited = *update.IsLimited
	}
	if update.IsNew != nil {
		p.IsNew = *update.IsNew
	}
	if update.IsPromo != nil {
		p.IsPromo = *update.IsPromo
	}
	if update.IsFeatured != nil {
		p.IsFeatured = *update.IsFeatured
	}

	result := *p
	return &result, nil
}

// Delete removes a product; absent IDs report ErrProductNotFound.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrProductNotFound
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	return nil
}

// FindByID retrieves a product by exact ID.
func (s *MemoryStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrProductNotFound
	}
	p := *s.products[idx]
	return &p, nil
}

// FindByCategory retrieves all products whose category name equals the
// argument. Matching is case-sensitive.
func (s *MemoryStore) FindByCategory(_ context.Context, category string) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []*domain.Product{}
	for _, p := range s.products {
		if p.Category == category {
			pp := *p
			results = append(results, &pp)
		}
	}
	return results, nil
}

// Search matches the query case-insensitively against name or
// description. An empty query matches everything.
func (s *MemoryStore) Search(_ context.Context, query string) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(query)
	results := []*domain.Product{}
	for _, p := range s.products {
		if term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			pp := *p
			results = append(results, &pp)
		}
	}
	return results, nil
}

// List returns every product in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		pp := *p
		results = append(results, &pp)
	}
	return results, nil
}

// Featured returns the products flagged for the landing page.
func (s *MemoryStore) Featured(_ context.Context) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []*domain.Product{}
	for _, p := range s.products {
		if p.IsFeatured {
			pp := *p
			results = append(results, &pp)
		}
	}
	return results, nil
}

// Categories implements CategoryRepository over the same store.
func (s *MemoryStore) Categories(_ context.Context) ([]*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		cc := *c
		results = append(results, &cc)
	}
	return results, nil
}

// categoryList adapts MemoryStore to CategoryRepository.
type categoryList struct {
	store *MemoryStore
}

func (l categoryList) List(ctx context.Context) ([]*domain.Category, error) {
	return l.store.Categories(ctx)
}

// CategoryRepository returns a CategoryRepository view of the store.
func (s *MemoryStore) CategoryRepository() CategoryRepository {
	return categoryList{store: s}
}

// indexOf must be called with the lock held.
func (s *MemoryStore) indexOf(id uuid.UUID) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
