// Package catalog loads product catalog documents from blob storage.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	"gocloud.dev/gcerrors"
)

// SourceParams holds dependencies for CatalogSource, injected by Fx
type SourceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobSource struct {
	bucket   *blob.Bucket
	maxBytes int64
	logger   *slog.Logger
}

// unavailableSource answers every load with ErrCatalogUnavailable.
type unavailableSource struct{}

func (unavailableSource) Load(context.Context, string) ([]service.CatalogProduct, error) {
	return nil, service.ErrCatalogUnavailable
}

// NewCatalogSource opens the configured bucket. Without a bucket URL imports are reported as unavailable.
func NewCatalogSource(params SourceParams) (service.CatalogSource, error) {
	cfg := params.Config.Catalog
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Catalog bucket not configured, product import disabled")

		return unavailableSource{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Catalog bucket opened", slog.String("bucket_url", cfg.BucketURL))

	return newBlobSource(bucket, cfg.MaxBytes, params.Logger), nil
}

func newBlobSource(bucket *blob.Bucket, maxBytes int64, logger *slog.Logger) *blobSource {
	return &blobSource{bucket: bucket, maxBytes: maxBytes, logger: logger}
}

// Load reads and parses the document stored under key.
func (s *blobSource) Load(ctx context.Context, key string) ([]service.CatalogProduct, error) {
	if key == "" || strings.Contains(key, "..") {
		return nil, service.InvalidCatalogDocument(fmt.Sprintf("invalid document key %q", key), nil)
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(service.ErrCatalogDocumentNotFound, "key %s", key)
		}

		return nil, errors.Wrapf(err, "failed to open catalog document %s", key)
	}
	defer reader.Close()

	if s.maxBytes > 0 && reader.Size() > s.maxBytes {
		return nil, service.InvalidCatalogDocument(fmt.Sprintf("document %s is %s, limit is %s",
			key, util.FormatBytes(reader.Size()), util.FormatBytes(s.maxBytes)), nil)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog document %s", key)
	}

	products, err := ParseProductsXML(data)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Catalog document loaded",
		slog.String("key", key),
		slog.Int("product_count", len(products)),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("sha256", util.Checksum(data)),
	)

	return products, nil
}
