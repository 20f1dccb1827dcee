package entity

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPaid      OrderStatus = "Paid"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusCompleted OrderStatus = "Completed"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// Order groups order details for one user. UserID is DeletedUserID once the owner is removed.
type Order struct {
	ID         int64
	UserID     int64
	OrderDate  time.Time
	Status     OrderStatus
	TotalPrice float64
	Details    []*OrderDetail
	User       *User // Only populated by listing queries that join the owner.
}

// OwnedBy reports whether the order belongs to userID.
func (o *Order) OwnedBy(userID int64) bool {
	return o.UserID != DeletedUserID && o.UserID == userID
}

// OrderDetail is one line of an order. Price is the line total at order time.
type OrderDetail struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Price     float64
	Product   *Product // Only populated by listing queries.
}
