package persistence

import (
	"context"
)

// Persistence is the query surface repositories work against
type Persistence interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExec(ctx context.Context, query string, arg interface{}) error
}
