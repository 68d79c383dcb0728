package suppression

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps addresses in a Redis set.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKey overrides DefaultRedisKey. Empty keys are ignored.
func WithKey(key string) RedisOption {
	return func(s *RedisStore) {
		if key != "" {
			s.key = key
		}
	}
}

// NewRedisStore returns a store using client. Panics if client is nil.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	if client == nil {
		panic("suppression: redis client is required")
	}
	s := &RedisStore{client: client, key: DefaultRedisKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the Redis set name.
func (s *RedisStore) Key() string {
	return s.key
}

func (s *RedisStore) Add(ctx context.Context, email string) error {
	email, err := Normalize(email)
	if err != nil {
		return err
	}
	if err := s.client.SAdd(ctx, s.key, email).Err(); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *RedisStore) Contains(ctx context.Context, email string) (bool, error) {
	email, err := Normalize(email)
	if err != nil {
		return false, err
	}
	ok, err := s.client.SIsMember(ctx, s.key, email).Result()
	if err != nil {
		return false, errors.Join(ErrStore, err)
	}
	return ok, nil
}
