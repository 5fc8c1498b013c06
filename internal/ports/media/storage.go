package media

import (
	"context"
	"time"
)

// ObjectStorage is the blob-store boundary. Remove is best-effort: callers
// treat its failure as retriable, never as fatal to the row operation that
// triggered it.
type ObjectStorage interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
	Remove(ctx context.Context, paths []string) error
}

// URLCache memoizes signed URLs for less than their TTL so polling clients
// do not re-sign on every refresh. Get returns "" on a miss.
type URLCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
