package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ObjectCache keeps documents as objects under a key prefix.
type ObjectCache struct {
	client Client
	bucket string
	prefix string
}

// NewObjectCache creates a cache over bucket.
func NewObjectCache(client Client, bucket, prefix string) *ObjectCache {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &ObjectCache{client: client, bucket: bucket, prefix: prefix}
}

// EnsureBucket creates the bucket if it does not exist yet.
func (c *ObjectCache) EnsureBucket(ctx context.Context, region string) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %s: %w", c.bucket, err)
	}
	if exists {
		return nil
	}
	if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("creating bucket %s: %w", c.bucket, err)
	}
	return nil
}

// Get reads key. ok is false when the object does not exist.
func (c *ObjectCache) Get(ctx context.Context, key string) (data []byte, ok bool, err error) {
	obj, err := c.client.GetObject(ctx, c.bucket, c.prefix+key, minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("getting %s: %w", key, err)
	}
	defer obj.Close()

	data, err = io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, true, nil
}

// Put stores data under key.
func (c *ObjectCache) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := c.client.PutObject(ctx, c.bucket, c.prefix+key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("putting %s: %w", key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NoSuchBucket"
}
