package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

var (
	// ErrTagNotFound is returned when a tag is not found.
	ErrTagNotFound = errors.New("tag not found")

	// ErrTagAlreadyExists is returned when a tag name is already taken.
	ErrTagAlreadyExists = errors.New("tag already exists")
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Tag, error)
	Create(ctx context.Context, tag *entity.Tag) error

	// Delete unlinks the tag from every product and removes it.
	Delete(ctx context.Context, id int64) error
}
