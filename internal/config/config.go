// Package config loads environment-driven settings and holds the domain
// constants shared across services.
package config

import (
	"fmt"
	"os"
)

const (
	// MinPhotos and MaxPhotos bound the photo attachments of a report.
	MinPhotos = 1
	MaxPhotos = 3

	// DispatchBuffer is the capacity of the delivery dispatcher queue.
	// Enqueueing never blocks a workflow transition; an overflow is
	// dropped and logged.
	DispatchBuffer = 256
)

// Config carries the process-level settings read from the environment.
type Config struct {
	DatabaseDSN string
	RedisAddr   string
	RedisDB     int

	HTTPAddr  string
	JWTSecret string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	TelegramToken string
}

// Load reads the configuration from environment variables. Defaults match
// the local docker-compose setup.
func Load() Config {
	return Config{
		DatabaseDSN: fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "participium"),
			getenv("DB_PASSWORD", "participium"),
			getenv("DB_NAME", "participium"),
			getenv("DB_PORT", "5432"),
		),
		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),

		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-me"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: getenv("MAIL_FROM", "no-reply@participium.local"),

		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
