package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"

	"github.com/nabekou29/n8n-self-host/core/log"
)

type DiscordConfig struct {
	BotToken string
}

// IsConfigured returns true if all required Discord configuration is present
func (c DiscordConfig) IsConfigured() bool {
	return c.BotToken != ""
}

type WebhookConfig struct {
	URL string
	// StripAllMentions removes every user mention from the forwarded content, not only the bot's
	StripAllMentions bool
}

type SlackConfig struct {
	AlertWebhookURL string
}

// IsConfigured returns true if Slack error alerts are enabled
func (c SlackConfig) IsConfigured() bool {
	return c.AlertWebhookURL != ""
}

type AppConfig struct {
	Environment   string
	ServerLogsURL string
	// HealthPort is empty when the health endpoint is disabled
	HealthPort string

	DiscordConfig DiscordConfig
	WebhookConfig WebhookConfig
	SlackConfig   SlackConfig
}

// LoadConfig reads envFile (if present) and then the process environment
func LoadConfig(envFile string) (*AppConfig, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Warn("⚠️ Could not load .env file, continuing with system env vars", "file", envFile)
	}

	botToken, err := getEnvRequired("DISCORD_TOKEN")
	if err != nil {
		return nil, err
	}

	webhookURL, err := getEnvRequired("N8N_WEBHOOK_URL")
	if err != nil {
		return nil, err
	}
	if err := validateWebhookURL(webhookURL); err != nil {
		return nil, err
	}

	config := &AppConfig{
		Environment:   getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL: getEnvWithDefault("SERVER_LOGS_URL", ""),
		HealthPort:    getEnvWithDefault("HEALTH_PORT", ""),

		DiscordConfig: DiscordConfig{
			BotToken: botToken,
		},

		WebhookConfig: WebhookConfig{
			URL:              webhookURL,
			StripAllMentions: getEnvWithDefault("STRIP_ALL_MENTIONS", "false") == "true",
		},

		// Slack configuration (optional)
		SlackConfig: SlackConfig{
			AlertWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
		},
	}

	if config.SlackConfig.IsConfigured() {
		log.Info("✅ Slack error alerts configured")
	} else {
		log.Info("⚠️ Slack error alerts not configured - errors will only be logged")
	}

	return config, nil
}

func validateWebhookURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("N8N_WEBHOOK_URL is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("N8N_WEBHOOK_URL must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("N8N_WEBHOOK_URL must include a host")
	}
	return nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
