package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect parses cfg.ConnectionURL and pings the server until it answers,
// at most RetryAttempts times and within ConnectTimeout.
//
// It returns ErrEmptyConnectionURL when no URL is set,
// ErrFailedToParseRedisConnString for a malformed URL and ErrRedisNotReady
// when no ping succeeds.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)
	attempts := max(cfg.RetryAttempts, 1)

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			timer := time.NewTimer(cfg.RetryInterval)
			select {
			case <-ctx.Done():
				timer.Stop()
				_ = client.Close()
				return nil, errors.Join(ErrRedisNotReady, lastErr, ctx.Err())
			case <-timer.C:
			}
		}

		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
	}

	_ = client.Close()
	return nil, errors.Join(ErrRedisNotReady, lastErr)
}
