package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	// Secret used to sign session cookies
	SecretKey string

	// Directory holding the JSON store files
	DataDir string

	SMTP SMTPConfig
}

// SMTPConfig describes the outbound mail relay, the only external
// network dependency of the service
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		SecretKey: getEnv("SECRET_KEY", "your_default_secret_key"),
		DataDir:   getEnv("DATA_DIR", "."),

		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
