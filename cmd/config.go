package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisURL      string
	EmailQueueKey string
	EmailWorkers  int

	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	DefaultFromEmail string

	WebPushPublicKey  string
	WebPushPrivateKey string
	WebPushAdminEmail string
	WebPushTTL        time.Duration
}

const (
	defaultHTTPPort     = "8080"
	defaultDBSslMode    = "disable"
	defaultRedisURL     = "redis://localhost:6379/0"
	defaultEmailWorkers = 2
	defaultSMTPPort     = 25
	defaultFromEmail    = "noreply@ecofleet.local"
	defaultWebPushTTL   = 60
)

// ConfigFromEnv reads the configuration through getenv, usually os.Getenv.
// Unset keys fall back to defaults; malformed numbers are reported together.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	var errList []error
	number := func(key string, fallback int) int {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return fallback
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errList = append(errList, fmt.Errorf("%s: expected a non-negative integer, got %q", key, raw))
			return fallback
		}
		return n
	}

	cfg := Config{
		HTTPPort:          env("HTTP_PORT", defaultHTTPPort),
		DBHost:            env("DB_HOST", "localhost"),
		DBPort:            env("DB_PORT", "5432"),
		DBUser:            env("DB_USER", ""),
		DBPassword:        env("DB_PASSWORD", ""),
		DBName:            env("DB_NAME", ""),
		DBSslMode:         env("DB_SSLMODE", defaultDBSslMode),
		RedisURL:          env("REDIS_URL", defaultRedisURL),
		EmailQueueKey:     env("EMAIL_QUEUE_KEY", ""),
		EmailWorkers:      number("EMAIL_WORKERS", defaultEmailWorkers),
		SMTPHost:          env("SMTP_HOST", "localhost"),
		SMTPPort:          number("SMTP_PORT", defaultSMTPPort),
		SMTPUsername:      env("SMTP_USERNAME", ""),
		SMTPPassword:      env("SMTP_PASSWORD", ""),
		DefaultFromEmail:  env("DEFAULT_FROM_EMAIL", defaultFromEmail),
		WebPushPublicKey:  env("WEBPUSH_VAPID_PUBLIC_KEY", ""),
		WebPushPrivateKey: env("WEBPUSH_VAPID_PRIVATE_KEY", ""),
		WebPushTTL:        time.Duration(number("WEBPUSH_TTL_SECONDS", defaultWebPushTTL)) * time.Second,
	}
	cfg.WebPushAdminEmail = env("WEBPUSH_VAPID_ADMIN_EMAIL", cfg.DefaultFromEmail)

	if cfg.DBName == "" {
		errList = append(errList, errors.New("DB_NAME is required"))
	}

	return cfg, errors.Join(errList...)
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// PushEnabled reports whether a full VAPID key pair is configured.
func (c Config) PushEnabled() bool {
	return c.WebPushPublicKey != "" && c.WebPushPrivateKey != ""
}
