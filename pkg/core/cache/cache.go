// Package cache provides an optional key-value cache for generated
// advice. The assembler works without one; wiring a cache just avoids
// paying for identical backend calls twice.
package cache

import (
	"context"
	"time"
)

// Cache is the minimal contract the advice assembler needs.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
