// Package config loads typed configuration from environment variables.
//
// Load parses variables into a struct using caarlos0/env tags, after reading
// a dotenv file (".env" by default, see WithEnvFiles) with joho/godotenv.
// Values already present in the process environment always win over the file.
//
//	type Config struct {
//		Env         string `env:"ENV" envDefault:"development"`
//		LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
//		Concurrency int    `env:"CONCURRENCY" envDefault:"0"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("VALIDA_"))
//
// WithEnviron replaces the process environment with an explicit map, which
// keeps tests independent from the machine they run on.
//
// # Error Handling
//
// Parsing failures are returned joined with ErrParsingConfig, so callers can
// test with errors.Is.
package config
