package ratelimiter

import "time"

// Config describes a token bucket: Capacity tokens at most, RefillRate
// tokens added every RefillInterval.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"20"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"3s"`
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return ErrInvalidConfig
	case c.RefillRate <= 0:
		return ErrInvalidConfig
	case c.RefillInterval <= 0:
		return ErrInvalidConfig
	}
	return nil
}

// Result is the bucket state after a request.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request fit in the bucket.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is the wait until the next refill, or 0 when allowed.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}
