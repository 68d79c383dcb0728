package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// consumeScript mirrors MemoryStore.ConsumeTokens atomically on a Redis hash.
// ARGV: capacity, refill rate, refill interval (ms), now (ms), tokens.
// Returns remaining tokens and the next refill time (ms).
var consumeScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local now = tonumber(ARGV[4])
local n = tonumber(ARGV[5])

local state = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
	tokens = capacity
	ts = now
end

local elapsed = math.floor((now - ts) / interval)
if elapsed > 0 then
	local ceiling = math.floor(capacity / rate) + 1
	if elapsed > ceiling then
		tokens = capacity
		ts = now
	else
		tokens = math.min(tokens + elapsed * rate, capacity)
		ts = ts + elapsed * interval
	end
end

local remaining = tokens - n
if remaining >= 0 then
	tokens = remaining
end
redis.call('HSET', KEYS[1], 'tokens', tokens, 'ts', ts)
redis.call('PEXPIRE', KEYS[1], (math.floor(capacity / rate) + 2) * interval)
return {remaining, ts + interval}
`)

// RedisStore keeps buckets in Redis so limits hold across replicas.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRedisStore returns a store writing hashes under prefix + key.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if client == nil {
		panic("ratelimiter: redis client is required")
	}
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

func (s *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	res, err := consumeScript.Run(ctx, s.client, []string{s.prefix + key},
		cfg.Capacity, cfg.RefillRate, cfg.RefillInterval.Milliseconds(), s.now().UnixMilli(), tokens,
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, errors.New("unexpected script reply"))
	}
	return int(res[0]), time.UnixMilli(res[1]), nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
