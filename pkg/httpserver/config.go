package httpserver

import "time"

// Config holds server settings loaded from the environment.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Options converts non-zero fields of cfg into Option values.
func (cfg Config) Options() []Option {
	opts := make([]Option, 0, 6)
	if cfg.Addr != "" {
		opts = append(opts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		opts = append(opts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.ReadHeaderTimeout > 0 {
		opts = append(opts, WithReadHeaderTimeout(cfg.ReadHeaderTimeout))
	}
	if cfg.WriteTimeout > 0 {
		opts = append(opts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		opts = append(opts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	return opts
}

// NewFromConfig creates a Server from cfg. Extra opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	return New(append(cfg.Options(), opts...)...)
}
