package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/mobilegate/pkg/classifier"
	"github.com/dmitrymomot/mobilegate/pkg/config"
	"github.com/dmitrymomot/mobilegate/pkg/httpserver"
	"github.com/dmitrymomot/mobilegate/pkg/logger"
	"github.com/dmitrymomot/mobilegate/pkg/requestid"
)

// Config is the application configuration read from the environment.
type Config struct {
	AppName        string `env:"APP_NAME" envDefault:"mobilegate"`
	AppEnv         string `env:"APP_ENV" envDefault:"development"`
	LogLevel       string `env:"LOG_LEVEL"`
	LogFormat      string `env:"LOG_FORMAT"`
	PatternsFile   string `env:"MOBILE_PATTERNS_FILE"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`

	HTTP httpserver.Config
}

var errInvalidLogFormat = errors.New("invalid log format")

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	switch logger.Format(cfg.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return Config{}, fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.LogFormat)
	}
	return cfg, nil
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(w),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			classifier.LoggerExtractor(),
		),
	)
}

// newClassifier builds the classifier from the configured pattern file, or
// the default patterns when none is set.
func newClassifier(path string) (*classifier.Classifier, error) {
	if path == "" {
		return classifier.New(), nil
	}
	patterns, err := classifier.LoadPatterns(path)
	if err != nil {
		return nil, err
	}
	return classifier.New(patterns...), nil
}
