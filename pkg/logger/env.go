package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Environment names the deployment stage a logger is configured for.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment maps an APP_ENV style value onto an Environment.
// Short aliases ("dev", "stage", "prod") are accepted; anything else is Development.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// ParseLevel converts a LOG_LEVEL style value ("debug", "INFO", "warn", "error")
// into a slog.Level. An empty string yields slog.LevelInfo.
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}
