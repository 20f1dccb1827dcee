package handler

import (
	"time"

	"storefront/internal/domain/entity"
)

// UserView is the public shape of an account. The stored credential is never rendered.
type UserView struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

type TagView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Tags        []TagView `json:"tags"`
}

type OrderDetailView struct {
	ID        int64        `json:"id"`
	OrderID   int64        `json:"orderId"`
	ProductID int64        `json:"productId"`
	Price     float64      `json:"price"`
	Product   *ProductView `json:"product,omitempty"`
}

// OrderView renders an order. User is null for orders whose owner was removed.
type OrderView struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"userId"`
	OrderDate  time.Time         `json:"orderDate"`
	Status     string            `json:"status"`
	TotalPrice float64           `json:"totalPrice"`
	Details    []OrderDetailView `json:"details,omitempty"`
	User       *UserView         `json:"user,omitempty"`
}

func newUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

func newUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return views
}

func newTagView(tag *entity.Tag) TagView {
	return TagView{ID: tag.ID, Name: tag.Name}
}

func newProductView(product *entity.Product) *ProductView {
	if product == nil {
		return nil
	}

	view := &ProductView{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Tags:        make([]TagView, 0, len(product.Tags)),
	}
	for _, tag := range product.Tags {
		view.Tags = append(view.Tags, newTagView(tag))
	}

	return view
}

func newProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}

func newOrderDetailView(detail *entity.OrderDetail) OrderDetailView {
	return OrderDetailView{
		ID:        detail.ID,
		OrderID:   detail.OrderID,
		ProductID: detail.ProductID,
		Price:     detail.Price,
		Product:   newProductView(detail.Product),
	}
}

func newOrderView(order *entity.Order) *OrderView {
	view := &OrderView{
		ID:         order.ID,
		UserID:     order.UserID,
		OrderDate:  order.OrderDate,
		Status:     string(order.Status),
		TotalPrice: order.TotalPrice,
		User:       newUserView(order.User),
	}
	for _, detail := range order.Details {
		view.Details = append(view.Details, newOrderDetailView(detail))
	}

	return view
}

func newOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}
