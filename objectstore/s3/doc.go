// Package s3 provides an Amazon S3 implementation of the objectstore.Store interface.
//
// # Usage
//
//	store, err := s3.NewFromDefaultConfig(ctx, "my-bucket", "gearsetup/")
//
//	data, err := store.Get(ctx, "equipment/latest.json.zst")
//
// # Features
//
//   - Multipart uploads for large snapshots
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
