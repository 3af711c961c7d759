package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func useSQLite(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smartdiet.db")
	orig := loadConfig
	loadConfig = func() (*config.Config, error) {
		return &config.Config{
			Environment: config.Test,
			DBDriver:    config.DriverSQLite,
			SQLitePath:  path,
			JWTSecret:   "test-secret",
			JWTExpire:   time.Hour,
			LogLevel:    "error",
		}, nil
	}
	t.Cleanup(func() { loadConfig = orig })
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "check-env")
	assert.Contains(t, out, "seed")
}

func TestMigrateAndSeedIdempotent(t *testing.T) {
	useSQLite(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Migrations applied")

	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.NotContains(t, out, "Traditional foods: 0")

	// Tables already hold rows, nothing more is inserted.
	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Traditional foods: 0")
	assert.Contains(t, out, "Products: 0")
}

func TestCheckEnv(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	orig := lookupEnv
	t.Cleanup(func() { lookupEnv = orig })

	lookupEnv = func(key string) string {
		if key == "JWT_SECRET" {
			return "supersecretvalue"
		}
		return ""
	}
	out, err := run(t, "check-env")
	require.NoError(t, err)
	assert.Contains(t, out, "JWT_SECRET")
	assert.NotContains(t, out, "supersecretvalue")

	lookupEnv = func(string) string { return "" }
	_, err = run(t, "check-env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestBucketPolicyRequiresBucket(t *testing.T) {
	useSQLite(t)
	_, err := run(t, "bucket-policy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET_NAME")
}
