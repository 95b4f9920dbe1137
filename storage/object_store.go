package storage

import (
	"context"
	"io"
)

type PutResult struct {
	Key      string `json:"key"`
	Location string `json:"location,omitempty"`
	ETag     string `json:"etag,omitempty"`
}

// ObjectStore keeps season archives and other blobs.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) (*PutResult, error)

	Delete(ctx context.Context, key string) error

	// PublicURL returns "" when the object cannot be addressed publicly.
	PublicURL(key string) string
}
