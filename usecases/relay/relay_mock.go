package relay

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nabekou29/n8n-self-host/models"
)

// MockRelayUseCase implements RelayUseCaseInterface for testing
type MockRelayUseCase struct {
	mock.Mock
}

func (m *MockRelayUseCase) ProcessMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
