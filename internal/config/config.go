package config

import (
	"os"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// HelplineNumber is substituted into every disclaimer and apology
	// template. Read once at startup, immutable afterward.
	HelplineNumber string

	// Google Sheets data source. SpreadsheetID identifies the hospital
	// data spreadsheet; credentials come from a service-account file or
	// an API key, whichever is set.
	SpreadsheetID         string
	GoogleCredentialsFile string
	GoogleAPIKey          string

	// SheetsTimeout bounds every gateway fetch.
	SheetsTimeout time.Duration

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:                  getEnv("PORT", "8080"),
		Env:                   getEnv("ENV", "development"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		HelplineNumber:        getEnv("HELPLINE_NUMBER", "+1-800-555-0199"),
		SpreadsheetID:         getEnv("SHEETS_SPREADSHEET_ID", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		GoogleAPIKey:          getEnv("GOOGLE_API_KEY", ""),
		SheetsTimeout:         getEnvAsDuration("SHEETS_TIMEOUT", 10*time.Second),
		CORSAllowedOrigins:    getEnvAsSlice("CORS_ALLOWED_ORIGINS"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
