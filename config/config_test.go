package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingEnvFile = "testdata-does-not-exist.env"

func setRequiredEnv(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("N8N_WEBHOOK_URL", "https://n8n.example.com/webhook/discord")
}

func clearOptionalEnv(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "SERVER_LOGS_URL", "HEALTH_PORT", "STRIP_ALL_MENTIONS", "SLACK_ALERT_WEBHOOK_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)

	cfg, err := LoadConfig(missingEnvFile)

	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.DiscordConfig.BotToken)
	assert.True(t, cfg.DiscordConfig.IsConfigured())
	assert.Equal(t, "https://n8n.example.com/webhook/discord", cfg.WebhookConfig.URL)
	assert.False(t, cfg.WebhookConfig.StripAllMentions)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Empty(t, cfg.HealthPort)
	assert.False(t, cfg.SlackConfig.IsConfigured())
}

func TestLoadConfig_OptionalValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("HEALTH_PORT", "8080")
	t.Setenv("STRIP_ALL_MENTIONS", "true")
	t.Setenv("SLACK_ALERT_WEBHOOK_URL", "https://hooks.slack.com/services/T/B/X")
	t.Setenv("SERVER_LOGS_URL", "https://logs.example.com")

	cfg, err := LoadConfig(missingEnvFile)

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.HealthPort)
	assert.True(t, cfg.WebhookConfig.StripAllMentions)
	assert.True(t, cfg.SlackConfig.IsConfigured())
	assert.Equal(t, "https://logs.example.com", cfg.ServerLogsURL)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		webhookURL  string
		expectedErr string
	}{
		{
			name:        "missing token",
			token:       "",
			webhookURL:  "https://n8n.example.com/webhook",
			expectedErr: "DISCORD_TOKEN is not set",
		},
		{
			name:        "missing webhook URL",
			token:       "test-token",
			webhookURL:  "",
			expectedErr: "N8N_WEBHOOK_URL is not set",
		},
		{
			name:        "non-http webhook URL",
			token:       "test-token",
			webhookURL:  "ftp://n8n.example.com/webhook",
			expectedErr: "must use http or https",
		},
		{
			name:        "webhook URL without host",
			token:       "test-token",
			webhookURL:  "https:///webhook",
			expectedErr: "must include a host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DISCORD_TOKEN", tt.token)
			t.Setenv("N8N_WEBHOOK_URL", tt.webhookURL)

			cfg, err := LoadConfig(missingEnvFile)

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("N8N_WEBHOOK_URL", "")
	clearOptionalEnv(t)
	// godotenv does not override variables that already exist, even when empty
	require.NoError(t, os.Unsetenv("DISCORD_TOKEN"))
	require.NoError(t, os.Unsetenv("N8N_WEBHOOK_URL"))

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DISCORD_TOKEN=file-token\nN8N_WEBHOOK_URL=http://localhost:5678/webhook/discord\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("DISCORD_TOKEN")
		_ = os.Unsetenv("N8N_WEBHOOK_URL")
	})

	cfg, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.DiscordConfig.BotToken)
	assert.Equal(t, "http://localhost:5678/webhook/discord", cfg.WebhookConfig.URL)
}
