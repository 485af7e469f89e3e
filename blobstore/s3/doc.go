// Package s3 stores persisted bases in an Amazon S3 bucket.
//
//	store, err := s3.New(ctx, "my-bucket", s3.WithPrefix("bases"))
//	if err != nil { ... }
//	err = persist.SaveLossless(ctx, store, "graphene.kets", basis)
//
// Blobs up to UploadConfig.PartSize go out in a single PutObject carrying a
// CRC32-C checksum; larger ones use the multipart uploader. Blob names are
// joined to the prefix with "/". WithEndpoint targets S3-compatible services
// with path-style addressing.
package s3
