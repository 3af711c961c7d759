package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	for _, key := range append(optionalKeys, "JWT_SECRET", "DATABASE_URL", "CLIENT_URL", "CI", "ENV", "REDIS_DB") {
		t.Setenv(key, "")
	}
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, DefaultJWTExpire, cfg.JWTExpire)
	assert.Equal(t, DefaultOpenAIModel, cfg.OpenAIModel)
	assert.Equal(t, DefaultGroqModel, cfg.GroqModel)
	assert.Equal(t, 0.9, cfg.PlateTargetRatio)
	assert.Equal(t, 20, cfg.PlateCandidateLimit)
	assert.Equal(t, 2000.0, cfg.PlateDefaultCalories)
	assert.False(t, cfg.StorageEnabled())
	assert.False(t, cfg.RedisEnabled())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/smartdiet?sslmode=disable")
	t.Setenv("JWT_EXPIRE", "7d")
	t.Setenv("CHAT_HISTORY_TTL", "30m")
	t.Setenv("CLIENT_URL", "http://a.example, http://b.example")
	t.Setenv("PLATE_TARGET_RATIO", "0.8")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://u:p@db:5432/smartdiet?sslmode=disable", cfg.PostgresDSN())
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpire)
	assert.Equal(t, 30*time.Minute, cfg.ChatHistoryTTL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.ClientURLs)
	assert.Equal(t, 0.8, cfg.PlateTargetRatio)
}

func TestLoadConfigReadsSecrets(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "test")
	dir := os.Getenv("SECRETS_DIR")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.JWTSecret)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		isolate(t)
		t.Setenv("ENV", "test")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("short production secret", func(t *testing.T) {
		isolate(t)
		t.Setenv("ENV", "production")
		t.Setenv("JWT_SECRET", "short")
		t.Setenv("DATABASE_URL", "postgres://db/smartdiet")
		t.Setenv("CLIENT_URL", "https://smartdiet.lk")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("bad duration", func(t *testing.T) {
		isolate(t)
		t.Setenv("ENV", "test")
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRE", "soon")

		_, err := LoadConfig()
		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "JWT_EXPIRE", verr.Field)
	})

	t.Run("ratio out of range", func(t *testing.T) {
		isolate(t)
		t.Setenv("ENV", "test")
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PLATE_TARGET_RATIO", "1.5")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PLATE_TARGET_RATIO")
	})
}

func TestPostgresDSNFromParts(t *testing.T) {
	cfg := &Config{DBUser: "app", DBPassword: "p@ss", DBHost: "db", DBPort: "5432", DBName: "smartdiet", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/smartdiet?sslmode=disable", cfg.PostgresDSN())
}

func TestGetEnvironment(t *testing.T) {
	isolate(t)
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "prod")
	assert.Equal(t, Production, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}

func TestReportMasksSecrets(t *testing.T) {
	values := map[string]string{"JWT_SECRET": "abcdefghij", "SERVER_PORT": "5000"}
	report := Report(Development, func(k string) string { return values[k] })

	byKey := map[string]KeyStatus{}
	for _, s := range report {
		byKey[s.Key] = s
	}
	assert.True(t, byKey["JWT_SECRET"].Required)
	assert.Equal(t, "ab******ij", byKey["JWT_SECRET"].Value)
	assert.Equal(t, "5000", byKey["SERVER_PORT"].Value)
	assert.False(t, byKey["GROQ_API_KEY"].Set)
}
