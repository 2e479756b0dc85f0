package discord

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"github.com/nabekou29/n8n-self-host/clients"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordBotUser), args.Error(1)
}

func (m *MockDiscordClient) GetChannelByID(ctx context.Context, channelID string) (*clients.DiscordChannel, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordChannel), args.Error(1)
}

func (m *MockDiscordClient) GetGuildByID(ctx context.Context, guildID string) (mo.Option[*clients.DiscordGuild], error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(mo.Option[*clients.DiscordGuild]), args.Error(1)
}

func (m *MockDiscordClient) GetRoleName(ctx context.Context, guildID, roleID string) (string, error) {
	args := m.Called(ctx, guildID, roleID)
	return args.String(0), args.Error(1)
}

func (m *MockDiscordClient) ReplyToMessage(
	ctx context.Context,
	params clients.DiscordReplyParams,
) (*clients.DiscordPostMessageResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordPostMessageResponse), args.Error(1)
}
