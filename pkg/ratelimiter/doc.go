// Package ratelimiter limits request rates with a token bucket.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Every request takes one token; requests that find the
// bucket empty are denied until the next refill.
//
// MemoryStore suits a single replica. RedisStore runs the same algorithm in
// a Lua script so replicas share limits.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
//	if err != nil {
//		return err
//	}
//	r.Use(clientip.Middleware(resolver))
//	r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP))
package ratelimiter
