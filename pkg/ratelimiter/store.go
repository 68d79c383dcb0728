package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state per key.
//
// ConsumeTokens refills the bucket for the elapsed intervals, subtracts tokens
// and returns what is left. A negative remainder means the request is denied
// and the bucket is left untouched.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
