package model

import (
	"context"
	"io"
	"time"
)

// ObjectStorage defines the binary object operations used for artifact
// photographs. The bucket behind it is provisioned lazily at startup.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// PresignedURL returns a time-limited pre-authorized GET link for key.
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
