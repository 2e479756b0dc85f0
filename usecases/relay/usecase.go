package relay

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samber/mo"

	"github.com/nabekou29/n8n-self-host/appctx"
	"github.com/nabekou29/n8n-self-host/clients"
	"github.com/nabekou29/n8n-self-host/core"
	"github.com/nabekou29/n8n-self-host/core/log"
	"github.com/nabekou29/n8n-self-host/models"
	"github.com/nabekou29/n8n-self-host/utils"
)

const (
	SuccessReply = "✅ Webhookに送信しました！"
	FailureReply = "❌ Webhook送信中にエラーが発生しました。"
)

// RelayUseCaseInterface is what the Discord event handler depends on
type RelayUseCaseInterface interface {
	ProcessMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error
}

type Options struct {
	// StripAllMentions removes every user mention from content instead of only the bot's own
	StripAllMentions bool
}

// RelayUseCase forwards messages mentioning the bot to the webhook and acknowledges in-channel.
// It holds no per-event state, so concurrent invocations are independent.
type RelayUseCase struct {
	discordClient clients.DiscordClient
	webhookClient clients.WebhookClient
	options       Options
}

func NewRelayUseCase(
	discordClient clients.DiscordClient,
	webhookClient clients.WebhookClient,
	options Options,
) *RelayUseCase {
	return &RelayUseCase{
		discordClient: discordClient,
		webhookClient: webhookClient,
		options:       options,
	}
}

// ProcessMessageEvent runs filter → build → send → reply for one inbound message.
// The returned error is non-nil only when the bot identity or the acknowledgment reply fails;
// webhook delivery failures are answered with FailureReply and never retried.
func (r *RelayUseCase) ProcessMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error {
	if event.Author.Bot {
		return nil
	}

	botUser, err := r.discordClient.GetBotUser()
	if err != nil {
		return fmt.Errorf("failed to get bot user: %w", err)
	}
	if event.Author.ID == botUser.ID || !event.MentionsUser(botUser.ID) {
		return nil
	}

	relayID := core.NewID("rly")
	ctx = appctx.SetRelayID(ctx, relayID)
	logger := log.With("relay_id", relayID, "message_id", event.MessageID)
	logger.Info("📋 Starting to relay Discord mention",
		"author", event.Author.Username, "guild_id", event.GuildID, "channel_id", event.ChannelID)

	msgCtx := r.resolveMessageContext(ctx, logger, event)
	payload := BuildMentionEvent(event, msgCtx, r.stripContent(event.Content, botUser.ID))

	reply := SuccessReply
	resp, err := r.webhookClient.SendMentionEvent(ctx, payload)
	if err != nil {
		logger.Error("❌ Webhook delivery failed", "error", err)
		reply = FailureReply
	} else if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("⚠️ Webhook responded with an error status", "status", resp.StatusCode)
	} else {
		logger.Info("✅ Webhook delivered", "status", resp.StatusCode)
	}

	_, err = r.discordClient.ReplyToMessage(ctx, clients.DiscordReplyParams{
		GuildID:   event.GuildID,
		ChannelID: event.ChannelID,
		MessageID: event.MessageID,
		Content:   reply,
	})
	if err != nil {
		return fmt.Errorf("failed to send acknowledgment reply: %w", err)
	}

	logger.Info("📋 Completed successfully - relayed Discord mention", "delivered", reply == SuccessReply)
	return nil
}

func (r *RelayUseCase) stripContent(content, botID string) string {
	if r.options.StripAllMentions {
		return utils.StripMentions(content)
	}
	return utils.StripSelfMentions(content, botID)
}

// resolveMessageContext looks up channel, guild and role snapshots.
// A failed lookup degrades the affected fields to defaults instead of blocking delivery.
func (r *RelayUseCase) resolveMessageContext(
	ctx context.Context,
	logger *slog.Logger,
	event models.DiscordMessageEvent,
) MessageContext {
	msgCtx := MessageContext{
		Channel:   clients.DiscordChannel{ID: event.ChannelID, GuildID: event.GuildID},
		Guild:     mo.None[*clients.DiscordGuild](),
		RoleNames: make(map[string]string, len(event.MentionedRoleIDs)),
	}

	channel, err := r.discordClient.GetChannelByID(ctx, event.ChannelID)
	if err != nil {
		logger.Warn("⚠️ Failed to resolve channel, using defaults", "channel_id", event.ChannelID, "error", err)
	} else {
		msgCtx.Channel = *channel
	}

	maybeGuild, err := r.discordClient.GetGuildByID(ctx, event.GuildID)
	if err != nil {
		logger.Warn("⚠️ Failed to resolve guild, using defaults", "guild_id", event.GuildID, "error", err)
	} else {
		msgCtx.Guild = maybeGuild
	}

	for _, roleID := range event.MentionedRoleIDs {
		name, err := r.discordClient.GetRoleName(ctx, event.GuildID, roleID)
		if err != nil {
			logger.Warn("⚠️ Failed to resolve role name", "role_id", roleID, "error", err)
			continue
		}
		msgCtx.RoleNames[roleID] = name
	}

	return msgCtx
}
