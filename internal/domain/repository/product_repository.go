package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductInUse is returned when a product cannot be removed because order details reference it.
	ErrProductInUse = errors.New("product referenced by order details")

	// ErrInsufficientStock is returned by DecrementStock when fewer units remain than requested.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines persistence operations for products and their tag links.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// ListAvailable returns products with stock greater than zero.
	ListAvailable(ctx context.Context) ([]*entity.Product, error)

	// Create persists a product and links the tags it carries. Tags must already exist.
	Create(ctx context.Context, product *entity.Product) error

	// DecrementStock atomically lowers stock by quantity, failing with ErrInsufficientStock.
	DecrementStock(ctx context.Context, id int64, quantity int) error

	// Delete unlinks the product's tags and removes it.
	Delete(ctx context.Context, id int64) error
}
