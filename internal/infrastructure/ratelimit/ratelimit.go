// Package ratelimit decides whether a client may issue another request.
package ratelimit

import (
	"context"
	"time"
)

// Store tracks request counts per key. retryAfter is only meaningful when
// allowed is false.
type Store interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}
