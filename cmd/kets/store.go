package main

import (
	"context"

	"github.com/hupe1980/kets/blobstore"
	miniostore "github.com/hupe1980/kets/blobstore/minio"
	s3store "github.com/hupe1980/kets/blobstore/s3"
	"github.com/hupe1980/kets/internal/config"
)

// openStore builds the blob store selected by cfg. Positive io_limit or
// max_inflight throttle it; a positive cache_bytes adds a read cache on top.
func openStore(ctx context.Context, cfg config.Config) (blobstore.BlobStore, error) {
	var store blobstore.BlobStore

	switch cfg.Store {
	case config.StoreS3:
		opts := []s3store.Option{s3store.WithPrefix(cfg.S3.Prefix)}
		if cfg.S3.Region != "" {
			opts = append(opts, s3store.WithRegion(cfg.S3.Region))
		}
		if cfg.S3.Endpoint != "" {
			opts = append(opts, s3store.WithEndpoint(cfg.S3.Endpoint))
		}
		s, err := s3store.New(ctx, cfg.S3.Bucket, opts...)
		if err != nil {
			return nil, err
		}
		store = s
	case config.StoreMinio:
		s, err := miniostore.New(miniostore.Config{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Secure:    cfg.Minio.Secure,
			Region:    cfg.Minio.Region,
			Bucket:    cfg.Minio.Bucket,
			Prefix:    cfg.Minio.Prefix,
		})
		if err != nil {
			return nil, err
		}
		store = s
	default:
		store = blobstore.NewLocalStore(cfg.StoreDir)
	}

	if cfg.IOLimit > 0 || cfg.MaxInFlight > 0 {
		store = blobstore.NewLimitedStore(store, blobstore.Limits{
			BytesPerSec: cfg.IOLimit,
			MaxInFlight: cfg.MaxInFlight,
		})
	}
	if cfg.CacheBytes > 0 {
		store = blobstore.NewCachingStore(store, cfg.CacheBytes)
	}
	return store, nil
}
