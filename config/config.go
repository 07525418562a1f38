// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	SeedOnStart bool

	// External VIN lookup (optional - lookup is disabled when RapidAPIKey is empty)
	RapidAPIKey         string
	VinLookupURL        string
	VinLookupHost       string
	VinLookupTimeoutSec int

	// Review notification email
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	FromEmail        string
	FromName         string
	ReviewInboxEmail string

	LogLevel string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	lookupTimeout, _ := strconv.Atoi(getEnv("VIN_LOOKUP_TIMEOUT_SECONDS", "5"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/collateral?charset=utf8mb4&parseTime=True&loc=Local"),
		SeedOnStart: getEnv("SEED_ON_START", "false") == "true",

		// VIN lookup settings
		RapidAPIKey:         getEnv("RAPIDAPI_KEY", ""),
		VinLookupURL:        getEnv("VIN_LOOKUP_URL", "https://vin-lookup2.p.rapidapi.com/vehicle-lookup"),
		VinLookupHost:       getEnv("VIN_LOOKUP_HOST", "vin-lookup2.p.rapidapi.com"),
		VinLookupTimeoutSec: lookupTimeout,

		// Email settings (review notifications are skipped when inbox is empty)
		SMTPHost:         getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:         smtpPort,
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		FromEmail:        getEnv("FROM_EMAIL", "noreply@collateral-api.local"),
		FromName:         getEnv("FROM_NAME", "Collateral Lending"),
		ReviewInboxEmail: getEnv("REVIEW_INBOX_EMAIL", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
