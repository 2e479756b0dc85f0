package slack

import (
	"context"
	"sync"

	"github.com/nabekou29/n8n-self-host/clients"
)

// MockAlertClient implements the clients.AlertClient interface for testing
type MockAlertClient struct {
	MockSendAlert func(ctx context.Context, alert clients.Alert) error

	mu     sync.Mutex
	alerts []clients.Alert
}

func (m *MockAlertClient) SendAlert(ctx context.Context, alert clients.Alert) error {
	m.mu.Lock()
	m.alerts = append(m.alerts, alert)
	m.mu.Unlock()

	if m.MockSendAlert != nil {
		return m.MockSendAlert(ctx, alert)
	}
	return nil
}

// Alerts returns a copy of every alert received so far
func (m *MockAlertClient) Alerts() []clients.Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]clients.Alert(nil), m.alerts...)
}
