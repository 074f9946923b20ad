package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("ADMIN_SESSION_SECRET", "test-secret")
	os.Setenv("UPLOAD_MAX_FILES", "3")
	defer func() {
		os.Unsetenv("DB_MAX_OPEN_CONNS")
		os.Unsetenv("MINIO_USE_SSL")
		os.Unsetenv("ADMIN_SESSION_SECRET")
		os.Unsetenv("UPLOAD_MAX_FILES")
	}()

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "test-secret", cfg.Session.Secret)
	assert.Equal(t, 7, cfg.Session.TTLDays)
	assert.Equal(t, 3, cfg.Upload.MaxFiles)
	assert.Equal(t, int64(100*1024*1024), cfg.Upload.MaxFileBytes)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("ADMIN_SESSION_SECRET")
	os.Unsetenv("APP_ENV")

	cfg := Load()

	// The secret has no default so that a missing value fails closed.
	assert.Empty(t, cfg.Session.Secret)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "public/uploads/quotes", cfg.Upload.QuoteDir)
}

func TestIsProduction(t *testing.T) {
	cfg := &AppConfig{Env: "production"}
	assert.True(t, cfg.IsProduction())

	cfg.Env = "development"
	assert.False(t, cfg.IsProduction())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvInt64(t *testing.T) {
	key := "TEST_INT64_VAR"

	os.Setenv(key, "10485760")
	assert.Equal(t, int64(10485760), getEnvInt64(key, 0))

	os.Unsetenv(key)
	assert.Equal(t, int64(42), getEnvInt64(key, 42))
}
