package model

import "time"

// OrderModel mirrors the 'orders' table. The migration declares no foreign key on user_id
// so it can hold the deleted-user sentinel after its owner is removed.
type OrderModel struct {
	ID         int64              `gorm:"primaryKey;autoIncrement"`
	UserID     int64              `gorm:"index;not null"`
	OrderDate  time.Time          `gorm:"not null"`
	Status     string             `gorm:"type:varchar(50);not null"`
	TotalPrice float64            `gorm:"type:numeric(10,2);not null;default:0"`
	Details    []OrderDetailModel `gorm:"foreignKey:OrderID"`
	User       *UserModel         `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderDetailModel mirrors the 'order_details' table.
type OrderDetailModel struct {
	ID        int64         `gorm:"primaryKey;autoIncrement"`
	OrderID   int64         `gorm:"index;not null"`
	ProductID int64         `gorm:"index;not null"`
	Price     float64       `gorm:"type:numeric(10,2);not null"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
	Order     *OrderModel   `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailModel) TableName() string {
	return "order_details"
}
