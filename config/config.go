package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort string
	ServerHost string
	ClientURLs []string

	// Database configuration
	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	SQLitePath  string

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string
	JWTExpire time.Duration

	// Language model providers
	OpenAIAPIKey string
	OpenAIModel  string
	OpenAIAPIURL string
	GroqAPIKey   string
	GroqModel    string
	GroqAPIURL   string

	// Object storage
	S3BucketName    string
	AWSRegion       string
	S3Endpoint      string
	S3PublicBaseURL string

	// Domain tuning
	ChatHistoryTTL       time.Duration
	PlateTargetRatio     float64
	PlateCandidateLimit  int
	PlateDefaultCalories float64

	LogLevel string
}

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Defaults.
const (
	DefaultServerPort           = "5000"
	DefaultJWTExpire            = 30 * 24 * time.Hour
	DefaultOpenAIModel          = "gpt-4o-mini"
	DefaultOpenAIAPIURL         = "https://api.openai.com/v1/chat/completions"
	DefaultGroqModel            = "llama-3.3-70b-versatile"
	DefaultGroqAPIURL           = "https://api.groq.com/openai/v1/chat/completions"
	DefaultChatHistoryTTL       = 24 * time.Hour
	DefaultPlateTargetRatio     = 0.9
	DefaultPlateCandidateLimit  = 20
	DefaultPlateDefaultCalories = 2000
)

// LoadConfig creates a new Config instance with values from environment
// variables, Docker secrets and defaults, in that order.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	if env == Development {
		// A missing .env is normal outside local development.
		_ = godotenv.Load()
	}

	var lookup func(name string) string
	switch env {
	case CI:
		// CI takes everything from the workflow environment.
		lookup = os.Getenv
	case Development, Test, Production:
		lookup = envOrSecret
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	cfg, err := load(env, lookup)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func load(env Environment, lookup func(string) string) (*Config, error) {
	get := func(name, fallback string) string {
		if v := strings.TrimSpace(lookup(name)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Environment:     env,
		ServerPort:      get("SERVER_PORT", DefaultServerPort),
		ServerHost:      get("SERVER_HOST", ""),
		ClientURLs:      splitList(get("CLIENT_URL", "http://localhost:3000")),
		DatabaseURL:     get("DATABASE_URL", ""),
		DBHost:          get("DB_HOST", "localhost"),
		DBPort:          get("DB_PORT", "5432"),
		DBUser:          get("DB_USER", "postgres"),
		DBPassword:      get("DB_PASSWORD", ""),
		DBName:          get("DB_NAME", "smartdiet"),
		DBSSLMode:       get("DB_SSL_MODE", "disable"),
		SQLitePath:      get("SQLITE_PATH", "smartdiet.db"),
		RedisURL:        get("REDIS_URL", ""),
		RedisHost:       get("REDIS_HOST", ""),
		RedisPort:       get("REDIS_PORT", "6379"),
		RedisPassword:   get("REDIS_PASSWORD", ""),
		JWTSecret:       get("JWT_SECRET", ""),
		OpenAIAPIKey:    get("OPENAI_API_KEY", ""),
		OpenAIModel:     get("OPENAI_MODEL", DefaultOpenAIModel),
		OpenAIAPIURL:    get("OPENAI_API_URL", DefaultOpenAIAPIURL),
		GroqAPIKey:      get("GROQ_API_KEY", ""),
		GroqModel:       get("GROQ_MODEL", DefaultGroqModel),
		GroqAPIURL:      get("GROQ_API_URL", DefaultGroqAPIURL),
		S3BucketName:    get("S3_BUCKET_NAME", ""),
		AWSRegion:       get("AWS_REGION", "ap-south-1"),
		S3Endpoint:      get("S3_ENDPOINT", ""),
		S3PublicBaseURL: get("S3_PUBLIC_BASE_URL", ""),
		LogLevel:        get("LOG_LEVEL", "info"),
	}

	cfg.DBDriver = get("DB_DRIVER", "")
	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverSQLite
		if cfg.DatabaseURL != "" || env == Production {
			cfg.DBDriver = DriverPostgres
		}
	}

	var err error
	if cfg.RedisDB, err = parseInt("REDIS_DB", get("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.JWTExpire, err = parseDuration("JWT_EXPIRE", get("JWT_EXPIRE", ""), DefaultJWTExpire); err != nil {
		return nil, err
	}
	if cfg.ChatHistoryTTL, err = parseDuration("CHAT_HISTORY_TTL", get("CHAT_HISTORY_TTL", ""), DefaultChatHistoryTTL); err != nil {
		return nil, err
	}
	if cfg.PlateTargetRatio, err = parseFloat("PLATE_TARGET_RATIO", get("PLATE_TARGET_RATIO", ""), DefaultPlateTargetRatio); err != nil {
		return nil, err
	}
	if cfg.PlateDefaultCalories, err = parseFloat("PLATE_DEFAULT_CALORIES", get("PLATE_DEFAULT_CALORIES", ""), DefaultPlateDefaultCalories); err != nil {
		return nil, err
	}
	if cfg.PlateCandidateLimit, err = parseInt("PLATE_CANDIDATE_LIMIT", get("PLATE_CANDIDATE_LIMIT", strconv.Itoa(DefaultPlateCandidateLimit))); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PostgresDSN returns DATABASE_URL or a DSN built from the DB_* settings.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.DBSSLMode,
	}
	return u.String()
}

// RedisEnabled reports whether a Redis server is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// StorageEnabled reports whether an upload bucket is configured.
func (c *Config) StorageEnabled() bool {
	return c.S3BucketName != ""
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// envOrSecret returns the environment variable name, falling back to the
// Docker secret of the same name in lower case.
func envOrSecret(name string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return readSecret(strings.ToLower(name))
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError{Field: name, Message: "must be an integer"}
	}
	return v, nil
}

func parseFloat(name, raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ValidationError{Field: name, Message: "must be a number"}
	}
	return v, nil
}

// parseDuration accepts Go durations ("720h") and whole days ("30d").
func parseDuration(name, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	if days, ok := strings.CutSuffix(raw, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, ValidationError{Field: name, Message: "must be a positive duration"}
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, ValidationError{Field: name, Message: "must be a positive duration"}
	}
	return d, nil
}
