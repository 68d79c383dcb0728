package webhook

import (
	"math"
	"math/rand/v2"
	"time"
)

// BackoffStrategy computes the wait before retry number attempt (1-based).
// Implementations must be safe for concurrent use.
type BackoffStrategy interface {
	NextInterval(attempt int) time.Duration
}

// ExponentialBackoff grows the delay by Multiplier per attempt, capped at
// MaxInterval, with a random spread of ±JitterFactor.
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64
}

func (e ExponentialBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	initial := cmpOr(e.InitialInterval, time.Second)
	ceiling := cmpOr(e.MaxInterval, 30*time.Second)
	multiplier := e.Multiplier
	if multiplier <= 0 {
		multiplier = 2
	}

	interval := float64(initial) * math.Pow(multiplier, float64(attempt-1))
	if e.JitterFactor > 0 {
		interval *= 1 + (rand.Float64()*2-1)*e.JitterFactor
	}
	if interval > float64(ceiling) {
		return ceiling
	}
	return time.Duration(interval)
}

// LinearBackoff waits Interval*attempt, capped at MaxInterval.
type LinearBackoff struct {
	Interval    time.Duration
	MaxInterval time.Duration
}

func (l LinearBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	delay := cmpOr(l.Interval, time.Second) * time.Duration(attempt)
	return min(delay, cmpOr(l.MaxInterval, 30*time.Second))
}

// FixedBackoff waits the same Interval before every retry.
type FixedBackoff struct {
	Interval time.Duration
}

func (f FixedBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return f.Interval
}

// DefaultBackoffStrategy starts at 500ms and doubles up to 10s with 10% jitter.
// Notifications are best effort, so the ceiling stays low.
func DefaultBackoffStrategy() BackoffStrategy {
	return ExponentialBackoff{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		Multiplier:      2,
		JitterFactor:    0.1,
	}
}

func cmpOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
