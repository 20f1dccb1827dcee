package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderDetailNotFound is returned when an order detail is not found.
	ErrOrderDetailNotFound = errors.New("order detail not found")
)

// OrderRepository defines persistence operations for orders and order details.
type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// List returns every order with its owner preloaded (nil for orphaned orders).
	List(ctx context.Context) ([]*entity.Order, error)

	ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error)

	// Create persists the order together with its details.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus changes status and order date only.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus, orderDate time.Time) error

	// Delete removes the order and its details.
	Delete(ctx context.Context, id int64) error

	// ReassignUser moves every order of fromUserID to toUserID and returns the affected count.
	ReassignUser(ctx context.Context, fromUserID, toUserID int64) (int64, error)

	// ListDetails returns every order detail with product and order preloaded.
	ListDetails(ctx context.Context) ([]*entity.OrderDetail, error)

	DeleteDetail(ctx context.Context, id int64) error
}
