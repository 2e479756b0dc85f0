package slack

import (
	"context"
	"fmt"
	"net/http"

	"github.com/slack-go/slack"

	"github.com/nabekou29/n8n-self-host/clients"
)

// SlackAlertClient implements the clients.AlertClient interface with a Slack incoming webhook
type SlackAlertClient struct {
	httpClient *http.Client
	webhookURL string
}

// NewSlackAlertClient creates an alert client. An empty webhookURL disables alerts.
func NewSlackAlertClient(httpClient *http.Client, webhookURL string) clients.AlertClient {
	return &SlackAlertClient{
		httpClient: httpClient,
		webhookURL: webhookURL,
	}
}

// SendAlert posts the alert as a block-kit message
func (c *SlackAlertClient) SendAlert(ctx context.Context, alert clients.Alert) error {
	if c.webhookURL == "" {
		return nil
	}

	msg := &slack.WebhookMessage{
		Text:   fmt.Sprintf("%s: %s", alert.Title, alert.Message),
		Blocks: buildAlertBlocks(alert),
	}
	if err := slack.PostWebhookCustomHTTPContext(ctx, c.webhookURL, c.httpClient, msg); err != nil {
		return fmt.Errorf("failed to post Slack alert: %w", err)
	}
	return nil
}

func buildAlertBlocks(alert clients.Alert) *slack.Blocks {
	envPrefix := ""
	if alert.Environment == "dev" {
		envPrefix = "[dev] "
	}

	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("🚨 %s%s", envPrefix, alert.Title), true, false),
	)
	fields := slack.NewSectionBlock(nil, []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Environment:* %s", alert.Environment), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Context:* %s", alert.Context), false, false),
	}, nil)
	errorSection := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Error:*\n```%s```", alert.Message), false, false),
		nil,
		nil,
	)

	blocks := []slack.Block{header, fields, errorSection}
	if alert.LogsURL != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("🔗 <%s|View Logs>", alert.LogsURL), false, false),
			nil,
			nil,
		))
	}

	return &slack.Blocks{BlockSet: blocks}
}
