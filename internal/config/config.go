package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SessionConfig holds the admin session signing settings.
// Secret is required for login and the admin gate to operate; when it is
// empty both fail closed.
type SessionConfig struct {
	Secret  string
	TTLDays int
}

// UploadConfig holds quote file intake settings.
type UploadConfig struct {
	QuoteDir      string
	MaxFiles      int
	MaxFileBytes  int64
	MaxImageBytes int64
}

// AdminConfig holds the bootstrap admin credentials. When both are set the
// account is created at startup if it does not exist yet.
type AdminConfig struct {
	Email    string
	Password string
}

// SMTPConfig holds outgoing mail settings. All fields must be set for
// notifications to be sent; otherwise dispatch is skipped.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated once from environment variables at startup and passed by
// injection; no component reads the environment directly after Load.
type AppConfig struct {
	AppHost  string
	Port     string
	Env      string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Session  SessionConfig
	Upload   UploadConfig
	Admin    AdminConfig
	SMTP     SMTPConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Env:     getEnv("APP_ENV", "development"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Session: SessionConfig{
			Secret:  getEnv("ADMIN_SESSION_SECRET", ""), // no default: fail closed when unset
			TTLDays: getEnvInt("ADMIN_SESSION_TTL_DAYS", 7),
		},
		Upload: UploadConfig{
			QuoteDir:      getEnv("UPLOAD_QUOTE_DIR", "public/uploads/quotes"),
			MaxFiles:      getEnvInt("UPLOAD_MAX_FILES", 5),
			MaxFileBytes:  getEnvInt64("UPLOAD_MAX_FILE_BYTES", 100*1024*1024),
			MaxImageBytes: getEnvInt64("UPLOAD_MAX_IMAGE_BYTES", 10*1024*1024),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
	}
}

// IsProduction reports whether the app runs in production mode.
// Session cookies are Secure-flagged only in production.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
