package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Token          string
	GoogleAPIKey   string
	DatabaseURL    string
	GuildID        string
	RedeployURL    string
	Port           string
	Locale         string
	DailyCharLimit int
	MigrationsPath string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:          os.Getenv("DISCORD_BOT_TOKEN"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		GuildID:        os.Getenv("GUILD_ID"),
		RedeployURL:    os.Getenv("REDEPLOY_URL"),
		Port:           os.Getenv("PORT"),
		Locale:         os.Getenv("LOCALE"),
		DailyCharLimit: 100000,
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	if raw := os.Getenv("DAILY_CHAR_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("config: DAILY_CHAR_LIMIT must be a positive integer, got %q", raw)
		}
		cfg.DailyCharLimit = limit
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration and fills in
// defaults.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: DISCORD_BOT_TOKEN is required")
	}

	if strings.TrimSpace(c.GoogleAPIKey) == "" {
		return fmt.Errorf("config: GOOGLE_API_KEY is required")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Sensible local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/translatorbot?sslmode=disable"
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.RedeployURL != "" {
		if _, err := url.ParseRequestURI(c.RedeployURL); err != nil {
			return fmt.Errorf("config: invalid REDEPLOY_URL (%q): %w", c.RedeployURL, err)
		}
	}

	if strings.TrimSpace(c.Port) == "" {
		c.Port = "8080"
	}
	for _, r := range c.Port {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: PORT must be numeric, got %q", c.Port)
		}
	}

	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "ko"
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	return nil
}
