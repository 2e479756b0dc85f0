package webhook

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nabekou29/n8n-self-host/clients"
)

// MockWebhookClient implements the clients.WebhookClient interface for testing
type MockWebhookClient struct {
	mock.Mock
}

func (m *MockWebhookClient) SendMentionEvent(ctx context.Context, payload any) (*clients.WebhookResponse, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.WebhookResponse), args.Error(1)
}
