package storage

import (
	"context"
)

// IS3Client archives raw engine payloads in object storage
type IS3Client interface {
	PutFile(ctx context.Context, path string, data []byte, contentType string) error
	GetFile(ctx context.Context, path string) ([]byte, error)
}
