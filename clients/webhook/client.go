package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nabekou29/n8n-self-host/appctx"
	"github.com/nabekou29/n8n-self-host/clients"
	"github.com/nabekou29/n8n-self-host/core"
	"github.com/nabekou29/n8n-self-host/core/log"
)

// WebhookClient implements the clients.WebhookClient interface with a single JSON POST per call.
// No retries and no response body contract: any HTTP response counts as delivered.
type WebhookClient struct {
	httpClient *http.Client
	webhookURL string
}

// NewWebhookClient creates a webhook client targeting webhookURL
func NewWebhookClient(httpClient *http.Client, webhookURL string) clients.WebhookClient {
	return &WebhookClient{
		httpClient: httpClient,
		webhookURL: webhookURL,
	}
}

// SendMentionEvent POSTs payload as JSON. Every returned error wraps core.ErrDeliveryFailed.
func (c *WebhookClient) SendMentionEvent(ctx context.Context, payload any) (*clients.WebhookResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", core.ErrDeliveryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create webhook request: %v", core.ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	relayID, _ := appctx.GetRelayID(ctx)
	log.Debug("📤 Posting mention event to webhook", "relay_id", relayID, "bytes", len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute webhook request: %v", core.ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused; the body itself is not part of the contract
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return nil, fmt.Errorf("%w: failed to read webhook response: %v", core.ErrDeliveryFailed, err)
	}

	return &clients.WebhookResponse{
		StatusCode: resp.StatusCode,
	}, nil
}
