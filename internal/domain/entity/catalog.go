package entity

import "time"

// Product is a sellable item. Stock is decremented when orders are created.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	Tags        []*Tag
}

// InStock reports whether at least quantity units are available.
func (p *Product) InStock(quantity int) bool {
	return quantity > 0 && p.Stock >= quantity
}

// Tag labels products. Tags and products are linked many-to-many.
type Tag struct {
	ID   int64
	Name string
}
