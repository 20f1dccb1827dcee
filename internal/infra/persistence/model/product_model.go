package model

import "time"

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:text"`
	Price       float64    `gorm:"type:numeric(10,2);not null"`
	Stock       int        `gorm:"not null;default:0"`
	CreatedAt   time.Time  `gorm:"not null"`
	Tags        []TagModel `gorm:"many2many:product_tags;joinForeignKey:ProductID;joinReferences:TagID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// TagModel mirrors the 'tags' table.
type TagModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// ProductTagModel mirrors the 'product_tags' join table.
type ProductTagModel struct {
	ProductID int64 `gorm:"primaryKey"`
	TagID     int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (ProductTagModel) TableName() string {
	return "product_tags"
}
