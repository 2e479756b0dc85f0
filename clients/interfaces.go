package clients

import (
	"context"

	"github.com/samber/mo"
)

// DiscordClient defines the Discord operations the relay needs besides the gateway itself
type DiscordClient interface {
	// GetBotUser returns the identity the gateway session is logged in as
	GetBotUser() (*DiscordBotUser, error)

	// Lookups prefer the session state cache and fall back to REST
	GetChannelByID(ctx context.Context, channelID string) (*DiscordChannel, error)
	GetGuildByID(ctx context.Context, guildID string) (mo.Option[*DiscordGuild], error)
	GetRoleName(ctx context.Context, guildID, roleID string) (string, error)

	// ReplyToMessage posts content as a reply referencing the given message
	ReplyToMessage(ctx context.Context, params DiscordReplyParams) (*DiscordPostMessageResponse, error)
}

// WebhookClient delivers JSON payloads to the configured automation webhook
type WebhookClient interface {
	SendMentionEvent(ctx context.Context, payload any) (*WebhookResponse, error)
}

// AlertClient posts operational alerts to an external channel
type AlertClient interface {
	SendAlert(ctx context.Context, alert Alert) error
}
