package kafka

import (
	"context"
)

// IProducer publishes domain events
type IProducer interface {
	Send(ctx context.Context, key string, value []byte) error
	Close() error
}
