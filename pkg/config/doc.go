// Package config loads typed configuration from environment variables.
//
// Fields are described with github.com/caarlos0/env/v11 struct tags and
// .env files are read with github.com/joho/godotenv:
//
//	type Config struct {
//		Language   string `env:"NOTIFY_LANG" envDefault:"en"`
//		LocalesDir string `env:"NOTIFY_LOCALES_DIR"`
//		LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	if err := config.LoadEnv("deploy/.env"); err != nil {
//		return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load parses each configuration type once per process and serves later
// calls from a cache keyed by type. Tests that change the environment call
// ResetCache, or ForceReload for a single type.
//
// Errors are sentinels usable with errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
