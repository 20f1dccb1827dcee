package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Preload("Tags").First(&productM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) ListAvailable(ctx context.Context) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Tags").
		Where("stock > ?", 0).
		Order("id").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create inserts the product row and its product_tags links. Tag rows themselves are never written here.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Tags.*").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTagNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// DecrementStock lowers stock with a guarded UPDATE so concurrent orders cannot oversell.
func (repo *productRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check product existence")
	}
	if count == 0 {
		return repository.ErrProductNotFound
	}

	return repository.ErrInsufficientStock
}

func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var referenced int64
		if err := tx.Model(&model.OrderDetailModel{}).Where("product_id = ?", id).Count(&referenced).Error; err != nil {
			return errors.Wrap(err, "failed to count order details of product")
		}
		if referenced > 0 {
			return repository.ErrProductInUse
		}

		if err := tx.Where("product_id = ?", id).Delete(&model.ProductTagModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to unlink product tags")
		}

		result := tx.Delete(&model.ProductModel{}, id)
		if result.Error != nil {
			if isForeignKeyConstraintViolation(result.Error) {
				return repository.ErrProductInUse
			}

			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
		}
		if result.RowsAffected == 0 {
			return repository.ErrProductNotFound
		}

		return nil
	})
}
