package config

import (
	"strings"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/logger"
)

// Validate checks the semantic constraints of cfg and normalizes the
// format and log level to lower case.
// Returns E_INVALID_CONFIG with details["field"] on the first violation.
func Validate(cfg Config) (Config, error) {
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	switch cfg.Format {
	case FormatJSON, FormatYAML:
	default:
		return cfg, invalid("format", "format must be json or yaml, got "+quote(cfg.Format))
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, invalid("log_level", "log_level must be one of debug, info, warn, error")
	}

	return cfg, nil
}

func invalid(field, msg string) error {
	return errors.NewWithDetails(errors.EInvalidConfig, msg, map[string]string{"field": field})
}

func quote(s string) string {
	return `"` + s + `"`
}
