package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("GOOGLE_API_KEY", "key")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GUILD_ID", "")
	t.Setenv("REDEPLOY_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("LOCALE", "")
	t.Setenv("DAILY_CHAR_LIMIT", "")
	t.Setenv("MIGRATIONS_PATH", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/translatorbot?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "ko", cfg.Locale)
	assert.Equal(t, 100000, cfg.DailyCharLimit)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
}

func TestLoadMissingToken(t *testing.T) {
	setRequired(t)
	t.Setenv("DISCORD_BOT_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_BOT_TOKEN")
}

func TestLoadMissingAPIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestLoadInvalidCharLimit(t *testing.T) {
	setRequired(t)
	t.Setenv("DAILY_CHAR_LIMIT", "lots")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadInvalidPort(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "eight")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DAILY_CHAR_LIMIT", "50000")
	t.Setenv("LOCALE", "en")
	t.Setenv("REDEPLOY_URL", "https://deploy.example.com/hook")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50000, cfg.DailyCharLimit)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "https://deploy.example.com/hook", cfg.RedeployURL)
}
