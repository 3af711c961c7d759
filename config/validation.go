package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MinProductionJWTSecret is the shortest JWT secret accepted in production.
const MinProductionJWTSecret = 32

var (
	// Keys that must be set per environment.
	requirements = map[Environment][]string{
		Development: {"JWT_SECRET"},
		Test:        {"JWT_SECRET"},
		CI:          {"JWT_SECRET"},
		Production:  {"JWT_SECRET", "DATABASE_URL", "CLIENT_URL"},
	}

	// Keys that enable optional features when set.
	optionalKeys = []string{
		"SERVER_HOST", "SERVER_PORT", "DB_DRIVER", "SQLITE_PATH",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"REDIS_URL", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
		"JWT_EXPIRE", "OPENAI_API_KEY", "OPENAI_MODEL", "GROQ_API_KEY", "GROQ_MODEL",
		"S3_BUCKET_NAME", "AWS_REGION", "S3_ENDPOINT", "S3_PUBLIC_BASE_URL",
		"CHAT_HISTORY_TTL", "PLATE_TARGET_RATIO", "PLATE_CANDIDATE_LIMIT",
		"PLATE_DEFAULT_CALORIES", "LOG_LEVEL",
	}

	secretKeys = map[string]bool{
		"JWT_SECRET":     true,
		"DATABASE_URL":   true,
		"DB_PASSWORD":    true,
		"REDIS_PASSWORD": true,
		"REDIS_URL":      true,
		"OPENAI_API_KEY": true,
		"GROQ_API_KEY":   true,
	}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	var errs []error
	fail := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.JWTSecret == "" {
		fail("JWT_SECRET", "is required")
	} else if cfg.Environment == Production && len(cfg.JWTSecret) < MinProductionJWTSecret {
		fail("JWT_SECRET", "must be at least %d characters in production", MinProductionJWTSecret)
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" && cfg.DBHost == "" {
			fail("DATABASE_URL", "is required when DB_DRIVER is postgres")
		}
	case DriverSQLite:
		if cfg.Environment == Production {
			fail("DB_DRIVER", "sqlite is not supported in production")
		}
		if cfg.SQLitePath == "" {
			fail("SQLITE_PATH", "is required when DB_DRIVER is sqlite")
		}
	default:
		fail("DB_DRIVER", "must be postgres or sqlite, got %q", cfg.DBDriver)
	}

	if cfg.PlateTargetRatio <= 0 || cfg.PlateTargetRatio > 1 {
		fail("PLATE_TARGET_RATIO", "must be in (0, 1]")
	}
	if cfg.PlateCandidateLimit <= 0 {
		fail("PLATE_CANDIDATE_LIMIT", "must be positive")
	}
	if cfg.PlateDefaultCalories <= 0 {
		fail("PLATE_DEFAULT_CALORIES", "must be positive")
	}
	if cfg.Environment == Production && len(cfg.ClientURLs) == 0 {
		fail("CLIENT_URL", "is required in production")
	}

	return errors.Join(errs...)
}

// KeyStatus describes one configuration key for an environment report.
type KeyStatus struct {
	Key      string
	Required bool
	Set      bool
	Value    string
}

// Report lists every known key for env with masked values. lookup resolves
// a key the same way LoadConfig does.
func Report(env Environment, lookup func(string) string) []KeyStatus {
	if lookup == nil {
		lookup = envOrSecret
	}
	var out []KeyStatus
	add := func(key string, required bool) {
		v := strings.TrimSpace(lookup(key))
		out = append(out, KeyStatus{Key: key, Required: required, Set: v != "", Value: mask(key, v)})
	}
	for _, key := range requirements[env] {
		add(key, true)
	}
	for _, key := range optionalKeys {
		add(key, false)
	}
	return out
}

func mask(key, value string) string {
	if value == "" || !secretKeys[key] {
		return value
	}
	if len(value) <= 4 {
		return "****"
	}
	return value[:2] + strings.Repeat("*", len(value)-4) + value[len(value)-2:]
}
