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

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func (repo *tagRepository) FindByName(ctx context.Context, name string) (*entity.Tag, error) {
	var tagM model.TagModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&tagM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by name")
	}

	return toTagDomain(&tagM), nil
}

func (repo *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagM := &model.TagModel{Name: tag.Name}
	if err := repo.db.WithContext(ctx).Create(tagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTagAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tag")
	}

	tag.ID = tagM.ID

	return nil
}

func (repo *tagRepository) Delete(ctx context.Context, id int64) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&model.ProductTagModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to unlink tag from products")
		}

		result := tx.Delete(&model.TagModel{}, id)
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tag")
		}
		if result.RowsAffected == 0 {
			return repository.ErrTagNotFound
		}

		return nil
	})
}
