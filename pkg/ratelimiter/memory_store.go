package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type bucketState struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore keeps buckets in process memory and evicts idle ones.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState
	now     func() time.Time

	idleTTL   time.Duration
	stop      chan struct{}
	closeOnce sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithIdleTTL evicts buckets untouched for ttl. Zero disables eviction.
func WithIdleTTL(ttl time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.idleTTL = ttl }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore returns a store. Call Close to stop the eviction goroutine.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		buckets: make(map[string]*bucketState),
		now:     time.Now,
		idleTTL: time.Hour,
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.idleTTL > 0 {
		go s.evictLoop()
	}
	return s
}

func (s *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucketState{tokens: cfg.Capacity, lastRefill: now}
		s.buckets[key] = b
	}

	if intervals, capped := refillIntervals(now.Sub(b.lastRefill), cfg); intervals > 0 {
		b.tokens = min(b.tokens+intervals*cfg.RefillRate, cfg.Capacity)
		if capped {
			b.lastRefill = now
		} else {
			b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
		}
	}
	b.lastAccess = now

	remaining := b.tokens - tokens
	if remaining >= 0 {
		b.tokens = remaining
	}
	return remaining, b.lastRefill.Add(cfg.RefillInterval), nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.buckets, key)
	s.mu.Unlock()
	return nil
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// Close stops eviction. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) evictLoop() {
	ticker := time.NewTicker(max(s.idleTTL/4, time.Second))
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictIdle()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) evictIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, b := range s.buckets {
		if now.Sub(b.lastAccess) > s.idleTTL {
			delete(s.buckets, key)
		}
	}
}

// refillIntervals counts whole intervals in elapsed, capped at the number
// that refills an empty bucket so a long idle bucket cannot overflow.
func refillIntervals(elapsed time.Duration, cfg Config) (n int, capped bool) {
	if elapsed <= 0 {
		return 0, false
	}
	ceiling := int64(cfg.Capacity/cfg.RefillRate + 1)
	raw := int64(elapsed / cfg.RefillInterval)
	if raw > ceiling {
		return int(ceiling), true
	}
	return int(raw), false
}
