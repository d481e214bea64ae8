package storage

import (
	"context"
	"io"
)

// StorageInterface abstracts the object store holding applicant documents.
// Two implementations exist: local filesystem (development) and S3.
type StorageInterface interface {
	// EnsureBucket makes sure the destination bucket/directory exists,
	// creating it when missing.
	EnsureBucket(ctx context.Context) error

	// Put stores an object under key with the given content type and makes
	// it publicly readable.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error

	// Delete removes an object. Used for compensating cleanup when a later
	// step of a submission fails.
	Delete(ctx context.Context, key string) error

	// PublicURL returns the publicly dereferenceable URL for key.
	PublicURL(key string) string

	// Open reads an object back. Only the local backend serves reads itself;
	// S3 objects are fetched straight from the bucket URL.
	Open(key string) (io.ReadCloser, error)
}
