package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a Load call.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
	environ  map[string]string
}

// WithPrefix requires every variable name to carry prefix (e.g. "VALIDA_").
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files before parsing instead of the
// default ".env". Missing files are ignored; variables already set in the
// process environment are never overwritten.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = files }
}

// WithEnviron parses from the given map instead of the process environment.
// Dotenv files are not read in this mode.
func WithEnviron(environ map[string]string) Option {
	return func(o *options) { o.environ = environ }
}

// Load parses environment variables into the struct pointed to by v,
// based on `env` and `envDefault` field tags.
//
// Example:
//
//	type Config struct {
//		LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
//		Concurrency int    `env:"CONCURRENCY" envDefault:"0"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("VALIDA_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{envFiles: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	if o.environ == nil {
		for _, file := range o.envFiles {
			// the file might not exist and that's ok
			_ = godotenv.Load(file)
		}
	}

	parseOpts := env.Options{
		Prefix:      o.prefix,
		Environment: o.environ,
	}
	if err := env.ParseWithOptions(v, parseOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

