// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/caarlos0/env/v11 for parsing and github.com/joho/godotenv
// for .env files. The default ./.env is read when present; WithEnvFiles
// names explicit files, which must exist. Values already set in the process
// environment are never overridden by a file.
//
// # Usage
//
//	type Config struct {
//		Env    string `env:"APP_ENV" envDefault:"development"`
//		Secret string `env:"UNSUBSCRIBE_TOKEN_SECRET,required,unset"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// checked with errors.Is.
package config
