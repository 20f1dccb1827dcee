package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Preload("Details").First(&orderM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// List preloads the owner. Orders reassigned to the deleted-user sentinel come back with a nil User.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	return repo.find("failed to list orders", repo.db.WithContext(ctx).Preload("User"))
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	return repo.find("failed to list orders of user", repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *orderRepository) find(failure string, query *gorm.DB) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	if err := query.Preload("Details").Order("id").Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Create inserts the order and, through the has-many association, its details.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	for i, detail := range order.Details {
		detail.ID = orderM.Details[i].ID
		detail.OrderID = orderM.ID
	}

	return nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus, orderDate time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"order_date": orderDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) Delete(ctx context.Context, id int64) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderDetailModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete order details")
		}

		result := tx.Delete(&model.OrderModel{}, id)
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
		}
		if result.RowsAffected == 0 {
			return repository.ErrOrderNotFound
		}

		return nil
	})
}

func (repo *orderRepository) ReassignUser(ctx context.Context, fromUserID, toUserID int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", fromUserID).
		Update("user_id", toUserID)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to reassign orders")
	}

	return result.RowsAffected, nil
}

func (repo *orderRepository) ListDetails(ctx context.Context) ([]*entity.OrderDetail, error) {
	var detailMs []*model.OrderDetailModel
	if err := repo.db.WithContext(ctx).Preload("Product").Order("id").Find(&detailMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order details")
	}

	details := make([]*entity.OrderDetail, 0, len(detailMs))
	for _, detailM := range detailMs {
		details = append(details, toOrderDetailDomain(detailM))
	}

	return details, nil
}

func (repo *orderRepository) DeleteDetail(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderDetailModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order detail")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderDetailNotFound
	}

	return nil
}
