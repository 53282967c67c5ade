// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads optional .env files into the
// process environment, and github.com/caarlos0/env/v11, which parses the
// environment into tagged structs:
//
//	type Config struct {
//	    AppEnv   string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    return err
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Nested structs are parsed recursively, so packages can own their part of
// the configuration (for example httpserver.Config) and the application
// struct simply embeds them.
//
// # Error Handling
//
// Load wraps parse failures with ErrParsingConfig and returns ErrNilPointer
// for a nil target; LoadEnv wraps file errors with ErrLoadingEnvFile. All of
// them can be checked with errors.Is.
package config
