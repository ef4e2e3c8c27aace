package repository

//go:generate mockgen -destination=mocks/mock_product_repository.go -package=mocks storefront-be/internal/repository ProductRepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storefront-be/internal/apperrors"
	"storefront-be/internal/entities"
)

// ProductChanges holds the fields of a partial update. Nil fields keep
// their stored value.
type ProductChanges struct {
	Title       *string
	Description *string
	Price       *float64
	ImageURL    *string
	IsFeatured  *bool
}

// ProductRepository defines the interface for product database operations
type ProductRepository interface {
	List(ctx context.Context) ([]*entities.Product, error)
	FindByID(ctx context.Context, id int64) (*entities.Product, error)
	Create(ctx context.Context, product *entities.Product) (*entities.Product, error)
	Update(ctx context.Context, id int64, changes ProductChanges) (*entities.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, title, description, price, image_url, is_featured, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entities.Product, error) {
	var p entities.Product
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every product ordered by ID
func (r *productRepository) List(ctx context.Context) ([]*entities.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]*entities.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// FindByID finds a product by ID
func (r *productRepository) FindByID(ctx context.Context, id int64) (*entities.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return p, nil
}

// Create inserts a new product into the database
func (r *productRepository) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	query := `
		INSERT INTO products (title, description, price, image_url, is_featured)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns

	p, err := scanProduct(r.db.QueryRowContext(ctx, query,
		product.Title,
		product.Description,
		product.Price,
		product.ImageURL,
		product.IsFeatured,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return p, nil
}

// Update applies the non-nil fields of changes to the product
func (r *productRepository) Update(ctx context.Context, id int64, changes ProductChanges) (*entities.Product, error) {
	query := `
		UPDATE products
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    price = COALESCE($4, price),
		    image_url = COALESCE($5, image_url),
		    is_featured = COALESCE($6, is_featured),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	p, err := scanProduct(r.db.QueryRowContext(ctx, query,
		id,
		changes.Title,
		changes.Description,
		changes.Price,
		changes.ImageURL,
		changes.IsFeatured,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return p, nil
}

// Delete removes a product from the database
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
