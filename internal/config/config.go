package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Sheets  SheetsConfig
	Digest  DigestConfig
	Notify  NotifyConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the worksheet store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig contains configuration for the KPI digest spreadsheet export.
// Leaving CredentialsPath empty disables the export.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	DigestRange     string
}

// DigestConfig holds the nightly digest schedule.
type DigestConfig struct {
	CronSchedule string
}

// NotifyConfig holds the outbound webhook settings for digest notifications.
// Leaving WebhookURL empty disables notifications.
type NotifyConfig struct {
	WebhookURL string
	AuthToken  string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "shopfloor"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DIGEST_ID"),
			DigestRange:     getenvWithDefault("GOOGLE_SHEET_DIGEST_RANGE", "Digest!A:K"),
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "30 0 * * *"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("DIGEST_WEBHOOK_URL"),
			AuthToken:  os.Getenv("DIGEST_WEBHOOK_TOKEN"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Digest.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided")
	}

	// The sheets export is optional, but a credentials path without a
	// spreadsheet id (or the other way round) is a misconfiguration.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_DIGEST_ID must be provided together")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
