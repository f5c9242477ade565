// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so launcher metadata
// downloaded from loader repositories can be kept across restarts on AWS S3
// or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Object cache
//
// ObjectCache stores small documents under a key prefix in one bucket. A
// missing object is a cache miss, not an error.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	cache := storage.NewObjectCache(client, config.Bucket, "launcher-meta/")
//	data, ok, err := cache.Get(ctx, "net/fabricmc/fabric-loader/0.15.0/fabric-loader-0.15.0.json")
package storage
