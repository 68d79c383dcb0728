package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	files       []string
	prefix      string
	environment map[string]string
}

// Option configures Load.
type Option func(*options)

// WithEnvFiles loads the given .env files instead of the default ./.env.
// Variables already present in the process environment win.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

// WithPrefix prepends prefix to every env tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvironment parses from the given map instead of the process
// environment. No .env file is read.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load parses environment variables into v using `env` struct tags.
//
// Each call parses again: nothing is cached, so a value such as a signing
// secret is only as old as the last Load.
//
// Example:
//
//	type Config struct {
//		Secret string `env:"UNSUBSCRIBE_TOKEN_SECRET,required"`
//		Addr   string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.environment == nil {
		if err := loadEnvFiles(o.files); err != nil {
			return err
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
//
// Example:
//
//	var cfg Config
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		// The default .env file is optional.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
