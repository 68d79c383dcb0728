package main

import (
	"github.com/dmitrymomot/oneclick/pkg/config"
	"github.com/dmitrymomot/oneclick/pkg/httpserver"
	"github.com/dmitrymomot/oneclick/pkg/ratelimiter"
	"github.com/dmitrymomot/oneclick/pkg/redis"
	"github.com/dmitrymomot/oneclick/svc/suppression"
)

// Config is the process configuration, read from the environment and an
// optional .env file.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"oneclick"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSecret is removed from the process environment once read.
	TokenSecret         string `env:"UNSUBSCRIBE_TOKEN_SECRET,required,notEmpty,unset"`
	NotifyWebhookURL    string `env:"NOTIFY_WEBHOOK_URL"`
	SuppressionRedisKey string `env:"SUPPRESSION_REDIS_KEY" envDefault:"oneclick:suppressed"`

	// TrustedIPHeaders lists proxy headers that carry the client address,
	// e.g. "CF-Connecting-IP,X-Forwarded-For". Empty means RemoteAddr only.
	TrustedIPHeaders []string `env:"HTTP_TRUSTED_IP_HEADERS" envSeparator:","`
	RateLimitPrefix  string   `env:"RATE_LIMIT_REDIS_PREFIX" envDefault:"oneclick:ratelimit:"`

	Redis     redis.Config
	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

func loadConfig(envFiles []string) (Config, error) {
	var cfg Config
	var opts []config.Option
	if len(envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(envFiles...))
	}
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if cfg.SuppressionRedisKey == "" {
		cfg.SuppressionRedisKey = suppression.DefaultRedisKey
	}
	return cfg, nil
}
