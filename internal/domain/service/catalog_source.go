package service

import (
	"context"
	"errors"
)

var (
	// ErrCatalogDocumentNotFound is returned by CatalogSource when the key does not exist.
	ErrCatalogDocumentNotFound = errors.New("catalog document not found")

	// ErrCatalogDocumentInvalid is returned when a document cannot be parsed or holds invalid entries.
	ErrCatalogDocumentInvalid = errors.New("catalog document invalid")

	// ErrCatalogUnavailable is returned when no catalog storage is configured.
	ErrCatalogUnavailable = errors.New("catalog storage unavailable")
)

// CatalogDocumentError rejects a catalog document.
// Detail is safe to show to the caller; Cause, when set, is the underlying parser failure.
type CatalogDocumentError struct {
	Detail string
	Cause  error
}

// InvalidCatalogDocument returns a CatalogDocumentError matching ErrCatalogDocumentInvalid.
func InvalidCatalogDocument(detail string, cause error) error {
	return &CatalogDocumentError{Detail: detail, Cause: cause}
}

func (e *CatalogDocumentError) Error() string {
	if e.Cause != nil {
		return e.Detail + ": " + e.Cause.Error()
	}

	return e.Detail
}

func (e *CatalogDocumentError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrCatalogDocumentInvalid, e.Cause}
	}

	return []error{ErrCatalogDocumentInvalid}
}

// CatalogProduct is one product entry of an imported catalog document.
type CatalogProduct struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	TagName     string
}

// CatalogSource reads product catalog documents from external storage.
type CatalogSource interface {
	Load(ctx context.Context, key string) ([]CatalogProduct, error)
}
