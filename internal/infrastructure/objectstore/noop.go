package objectstore

import (
	"context"

	"go.uber.org/zap"
)

// NoopStore is the explicit "object storage not configured" variant. Uploads
// still run the full pipeline but nothing durable is written; descriptors come
// back with empty URL and key so consumers can tell the asset was not stored.
type NoopStore struct {
	logger *zap.Logger
}

func NewNoopStore(logger *zap.Logger) *NoopStore {
	logger.Warn("object storage not configured, uploads will not be persisted")
	return &NoopStore{logger: logger}
}

func (s *NoopStore) Put(ctx context.Context, key string, body []byte, contentType string) (*PutResult, error) {
	s.logger.Debug("noop put", zap.String("key", key), zap.Int("size", len(body)))
	return &PutResult{URL: "", Key: ""}, nil
}

func (s *NoopStore) Delete(ctx context.Context, key string) error {
	return nil
}
