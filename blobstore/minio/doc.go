// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This
// package works with MinIO and other S3-compatible systems such as Ceph,
// SeaweedFS and Garage, without AWS SDK dependencies.
//
// # Basic Usage
//
//	store, err := minio.New(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Bucket:    "kets",
//	    Prefix:    "bases/",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	basis, err := persist.LoadLossless(ctx, store, "graphene.kets")
package minio
