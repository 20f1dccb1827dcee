package postgres

import (
	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"
)

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
	}
}

func toTagDomain(m *model.TagModel) *entity.Tag {
	return &entity.Tag{ID: m.ID, Name: m.Name}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	product := &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		CreatedAt:   m.CreatedAt,
	}
	for i := range m.Tags {
		product.Tags = append(product.Tags, toTagDomain(&m.Tags[i]))
	}

	return product
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	productM := &model.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
	}
	for _, tag := range p.Tags {
		productM.Tags = append(productM.Tags, model.TagModel{ID: tag.ID, Name: tag.Name})
	}

	return productM
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:         m.ID,
		UserID:     m.UserID,
		OrderDate:  m.OrderDate,
		Status:     entity.OrderStatus(m.Status),
		TotalPrice: m.TotalPrice,
		User:       toUserDomain(m.User),
	}
	for i := range m.Details {
		order.Details = append(order.Details, toOrderDetailDomain(&m.Details[i]))
	}

	return order
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:         o.ID,
		UserID:     o.UserID,
		OrderDate:  o.OrderDate,
		Status:     string(o.Status),
		TotalPrice: o.TotalPrice,
	}
	for _, detail := range o.Details {
		orderM.Details = append(orderM.Details, model.OrderDetailModel{
			ID:        detail.ID,
			ProductID: detail.ProductID,
			Price:     detail.Price,
		})
	}

	return orderM
}

func toOrderDetailDomain(m *model.OrderDetailModel) *entity.OrderDetail {
	return &entity.OrderDetail{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Price:     m.Price,
		Product:   toProductDomain(m.Product),
	}
}
