package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"caviste/internal/domain"

	"github.com/google/uuid"
)

const productColumns = `id, name, category, price, original_price, discount_percentage, description, images, stock, is_limited, is_new, is_promo, is_featured`

// PostgresStore implements ProductRepository and CategoryRepository over
// a managed postgres backend. The query surface deliberately preserves
// the four shapes the storefront depends on: equality on category and
// flags, ILIKE on name/description, inclusive price range, and single
// lookup by ID.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a store backed by the given connection pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts a new product using parameterized queries.
func (s *PostgresStore) Create(ctx context.Context, product *domain.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	images, err := json.Marshal(product.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = s.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.OriginalPrice,
		product.DiscountPercentage,
		product.Description,
		images,
		product.Stock,
		product.IsLimited,
		product.IsNew,
		product.IsPromo,
		product.IsFeatured,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update merges the provided fields over the stored record and returns
// the result.
func (s *PostgresStore) Update(ctx context.Context, id uuid.UUID, update ProductUpdate) (*domain.Product, error) {
	setClauses := []string{}
	args := []interface{}{id}
	argIndex := 2

	set := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if update.Name != nil {
		set("name", *update.Name)
	}
	if update.Category != nil {
		set("category", *update.Category)
	}
	if update.Price != nil {
		set("price", *update.Price)
	}
	if update.OriginalPrice != nil {
		set("original_price", *update.OriginalPrice)
	}
	if update.DiscountPercentage != nil {
		set("discount_percentage", *update.DiscountPercentage)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.Images != nil {
		images, err := json.Marshal(update.Images)
		if err != nil {
			return nil, fmt.Errorf("failed to encode images: %w", err)
		}
		set("images", images)
	}
	if update.Stock != nil {
		set("stock", *update.Stock)
	}
	if update.IsLimited != nil {
		set("is_limited", *update.IsLimited)
	}
	if update.IsNew != nil {
		set("is_new", *update.IsNew)
	}
	if update.IsPromo != nil {
		set("is_promo", *update.IsPromo)
	}
	if update.IsFeatured != nil {
		set("is_featured", *update.IsFeatured)
	}

	if len(setClauses) == 0 {
		return s.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`
		UPDATE products
		SET %s
		WHERE id = $1
		RETURNING `+productColumns,
		strings.Join(setClauses, ", "),
	)

	product, err := scanProduct(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete removes a product using parameterized queries.
func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product by ID.
func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	product, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// FindByCategory retrieves all products in a category by exact name
// equality.
func (s *PostgresStore) FindByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1
		ORDER BY inserted_seq ASC
	`

	return s.queryProducts(ctx, query, category)
}

// Search matches the query case-insensitively against name or
// description using ILIKE. An empty query returns all products.
func (s *PostgresStore) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		return s.List(ctx)
	}

	pattern := "%" + query + "%"
	searchQuery := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY inserted_seq ASC
	`

	return s.queryProducts(ctx, searchQuery, pattern)
}

// List returns every product in insertion order.
func (s *PostgresStore) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY inserted_seq ASC
	`

	return s.queryProducts(ctx, query)
}

// Featured returns the products flagged for the landing page.
func (s *PostgresStore) Featured(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_featured = TRUE
		ORDER BY inserted_seq ASC
	`

	return s.queryProducts(ctx, query)
}

// CategoryRepository returns a CategoryRepository view of the store.
func (s *PostgresStore) CategoryRepository() CategoryRepository {
	return postgresCategoryList{db: s.db}
}

type postgresCategoryList struct {
	db *sql.DB
}

// List retrieves all categories.
func (l postgresCategoryList) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, name, image_url
		FROM categories
		ORDER BY name ASC
	`

	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func (s *PostgresStore) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var images []byte

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.OriginalPrice,
		&product.DiscountPercentage,
		&product.Description,
		&images,
		&product.Stock,
		&product.IsLimited,
		&product.IsNew,
		&product.IsPromo,
		&product.IsFeatured,
	)
	if err != nil {
		return nil, err
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &product.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
	}

	return product, nil
}
