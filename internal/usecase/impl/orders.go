package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// placeOrder prices every item at the current product price, reserves stock and
// persists the order with one detail per item. It must run inside a transaction.
func placeOrder(
	ctx context.Context,
	repos repository.RepositoryFactory,
	userID int64,
	items []entity.OrderItem,
	status entity.OrderStatus,
	orderDate time.Time,
) (*entity.Order, error) {
	productRepo := repos.ProductRepo()

	order := &entity.Order{
		UserID:    userID,
		OrderDate: orderDate,
		Status:    status,
	}
	for _, item := range items {
		product, err := productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, translateError(err)
		}
		if !product.InStock(item.Quantity) {
			return nil, translateError(repository.ErrInsufficientStock)
		}
		if err := productRepo.DecrementStock(ctx, product.ID, item.Quantity); err != nil {
			return nil, translateError(err)
		}

		linePrice := product.Price * float64(item.Quantity)
		order.Details = append(order.Details, &entity.OrderDetail{
			ProductID: product.ID,
			Price:     linePrice,
		})
		order.TotalPrice += linePrice
	}

	if err := repos.OrderRepo().Create(ctx, order); err != nil {
		return nil, translateError(err)
	}

	return order, nil
}

// validItems reports whether items is non-empty with positive ids and quantities.
func validItems(items []entity.OrderItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return false
		}
	}

	return true
}
