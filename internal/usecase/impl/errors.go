package impl

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// translateError maps repository and collaborator sentinels onto domain errors.
// Errors that already carry an HTTP mapping are returned unchanged.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrProductInUse):
		return domainerrors.ErrProductInUse
	case errors.Is(err, repository.ErrInsufficientStock):
		return domainerrors.ErrInsufficientStock
	case errors.Is(err, repository.ErrTagNotFound):
		return domainerrors.ErrTagNotFound
	case errors.Is(err, repository.ErrTagAlreadyExists):
		return domainerrors.ErrTagAlreadyExists
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	case errors.Is(err, repository.ErrOrderDetailNotFound):
		return domainerrors.ErrOrderDetailNotFound
	case errors.Is(err, service.ErrCatalogDocumentNotFound):
		return domainerrors.ErrCatalogDocumentNotFound
	case errors.Is(err, service.ErrCatalogDocumentInvalid):
		var docErr *service.CatalogDocumentError
		if errors.As(err, &docErr) {
			return domainerrors.ErrCatalogDocumentInvalid.WithDetails(docErr.Detail)
		}

		return domainerrors.ErrCatalogDocumentInvalid
	case errors.Is(err, service.ErrCatalogUnavailable):
		return domainerrors.ErrCatalogUnavailable
	default:
		return err
	}
}
