package main

import (
	"fmt"

	"github.com/dmitrymomot/valida/pkg/config"
	"github.com/dmitrymomot/valida/pkg/logger"
)

// Config is read from VALIDA_* environment variables and an optional .env file.
type Config struct {
	Env         string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	Concurrency int    `env:"CONCURRENCY" envDefault:"0"`
	MetricsFile string `env:"METRICS_FILE"`
	Messages    string `env:"MESSAGES"`
	Lang        string `env:"LANG" envDefault:"en"`
}

const envPrefix = "VALIDA_"

func loadConfig(environ map[string]string) (Config, error) {
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if environ != nil {
		opts = append(opts, config.WithEnviron(environ))
	}

	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return cfg, err
	}

	if cfg.LogLevel != "" {
		if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
			return cfg, err
		}
	}
	switch logger.Format(cfg.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return cfg, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	if cfg.Concurrency < 0 {
		return cfg, fmt.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}

	return cfg, nil
}
