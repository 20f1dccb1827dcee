package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// AddProductInput describes a new product. TagNames must name existing tags.
type AddProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	TagNames    []string
}

// ImportProductsOutput summarizes a catalog import.
type ImportProductsOutput struct {
	Products    []*entity.Product
	CreatedTags []string
}

// AddOrderInput places an order on behalf of a user.
type AddOrderInput struct {
	UserID    int64
	Status    entity.OrderStatus
	OrderDate time.Time
	Items     []entity.OrderItem
}

// UpdateOrderInput replaces status and order date.
type UpdateOrderInput struct {
	Status    entity.OrderStatus
	OrderDate time.Time
}

// AddUserInput creates an account from a plaintext password.
type AddUserInput struct {
	Username string
	Email    string
	Password string
	IsAdmin  bool
}

// AdminUsecase covers back-office management. Callers must have passed the admin gate.
type AdminUsecase interface {
	AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error)
	RemoveProduct(ctx context.Context, id int64) error
	ImportProducts(ctx context.Context, key string) (*ImportProductsOutput, error)

	ListOrders(ctx context.Context) ([]*entity.Order, error)
	CancelOrder(ctx context.Context, id int64) error
	AddOrder(ctx context.Context, input *AddOrderInput) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id int64, input *UpdateOrderInput) error
	ListOrderDetails(ctx context.Context) ([]*entity.OrderDetail, error)
	RemoveOrderDetail(ctx context.Context, id int64) error

	AddTag(ctx context.Context, name string) (*entity.Tag, error)
	RemoveTag(ctx context.Context, id int64) error

	ListUsers(ctx context.Context) ([]*entity.User, error)
	UserOrders(ctx context.Context, userID int64) ([]*entity.Order, error)
	AddUser(ctx context.Context, input *AddUserInput) (*entity.User, error)

	// RemoveUser deletes the user and moves their orders to the deleted-user sentinel, returning how many moved.
	RemoveUser(ctx context.Context, id int64) (int64, error)
}
