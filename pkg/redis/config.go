package redis

import "time"

// Config describes how to reach Redis. An empty ConnectionURL means Redis is
// not configured; callers fall back to in-process storage.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s"`
}

// Enabled reports whether a connection URL is set.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
