// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client and supports both AWS S3 and self-hosted MinIO.
// The bucket is where user uploads (recipe and pantry item images) will live;
// today the service only verifies and provisions it.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - EnsureBucket: Creates the bucket if it is missing (used by `check --fix`).
//   - Checker: Readiness check reporting whether the bucket is reachable.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
