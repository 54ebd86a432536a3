package objectstore

import "context"

type PutResult struct {
	URL string
	Key string
}

// Store is the boundary to durable binary storage. Put sets a long-lived
// cache directive because keys are unique per upload and never reused.
// Delete of a nonexistent key must succeed; cleanup paths rely on that.
type Store interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (*PutResult, error)
	Delete(ctx context.Context, key string) error
}
