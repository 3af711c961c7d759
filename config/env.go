package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

var environments = map[string]Environment{
	"development": Development,
	"dev":         Development,
	"test":        Test,
	"production":  Production,
	"prod":        Production,
}

// GetEnvironment determines the current environment from CI and ENV.
// Unknown or empty values mean development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	if env, ok := environments[strings.ToLower(strings.TrimSpace(os.Getenv("ENV")))]; ok {
		return env
	}
	return Development
}
