package handlers

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/nabekou29/n8n-self-host/core/log"
	"github.com/nabekou29/n8n-self-host/middleware"
	"github.com/nabekou29/n8n-self-host/models"
	"github.com/nabekou29/n8n-self-host/usecases/relay"
)

type DiscordEventsHandler struct {
	discordSDKClient *discordgo.Session
	relayUseCase     relay.RelayUseCaseInterface
	processMessage   func(ctx context.Context, event models.DiscordMessageEvent)
}

// NewDiscordEventsHandler registers the gateway callbacks on session. The session is not opened here.
func NewDiscordEventsHandler(
	session *discordgo.Session,
	relayUseCase relay.RelayUseCaseInterface,
	alertMiddleware *middleware.ErrorAlertMiddleware,
) *DiscordEventsHandler {
	handler := &DiscordEventsHandler{
		discordSDKClient: session,
		relayUseCase:     relayUseCase,
		processMessage:   alertMiddleware.WrapMessageHandler(relayUseCase.ProcessMessageEvent),
	}

	session.AddHandler(handler.handleReadyEvent)
	session.AddHandler(handler.handleMessageCreatedEvent)
	session.AddHandler(handler.handleDisconnectEvent)
	session.AddHandler(handler.handleRateLimitEvent)

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Info("🤖 Discord bot is now running and listening for mentions")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() error {
	if err := h.discordSDKClient.Close(); err != nil {
		return fmt.Errorf("failed to close Discord session: %w", err)
	}
	return nil
}

func (h *DiscordEventsHandler) handleReadyEvent(s *discordgo.Session, r *discordgo.Ready) {
	if r.User == nil {
		log.Warn("⚠️ Discord READY event without user")
		return
	}
	log.Info("✅ Logged in to Discord", "tag", r.User.String(), "guilds", len(r.Guilds))
}

func (h *DiscordEventsHandler) handleDisconnectEvent(s *discordgo.Session, d *discordgo.Disconnect) {
	log.Warn("⚠️ Discord gateway disconnected, the client will reconnect")
}

func (h *DiscordEventsHandler) handleRateLimitEvent(s *discordgo.Session, r *discordgo.RateLimit) {
	if r.TooManyRequests == nil {
		log.Warn("⚠️ Discord rate limit hit", "url", r.URL)
		return
	}
	log.Warn("⚠️ Discord rate limit hit", "url", r.URL, "retry_after", r.RetryAfter)
}

// handleMessageCreatedEvent handles incoming Discord messages
func (h *DiscordEventsHandler) handleMessageCreatedEvent(s *discordgo.Session, m *discordgo.MessageCreate) {
	messageEvent, err := mapToDiscordMessageEvent(m)
	if err != nil {
		log.Error("❌ Failed to map Discord message event", "error", err)
		return
	}

	log.Debug("📨 Discord message received",
		"author", messageEvent.Author.Username, "guild_id", messageEvent.GuildID, "channel_id", messageEvent.ChannelID)
	h.processMessage(context.Background(), messageEvent)
}

// mapToDiscordMessageEvent maps a Discord SDK message event to our domain model
func mapToDiscordMessageEvent(m *discordgo.MessageCreate) (models.DiscordMessageEvent, error) {
	if m == nil || m.Message == nil {
		return models.DiscordMessageEvent{}, fmt.Errorf("message is missing from event")
	}
	if m.Author == nil {
		return models.DiscordMessageEvent{}, fmt.Errorf("message %s has no author", m.ID)
	}

	attachments := make([]models.DiscordAttachment, 0, len(m.Attachments))
	for _, att := range m.Attachments {
		if att == nil {
			continue
		}
		attachments = append(attachments, models.DiscordAttachment{
			Filename:    att.Filename,
			URL:         att.URL,
			Size:        att.Size,
			ContentType: att.ContentType,
		})
	}

	mentionedUsers := make([]models.DiscordMentionedUser, 0, len(m.Mentions))
	for _, user := range m.Mentions {
		if user == nil {
			continue
		}
		mentionedUsers = append(mentionedUsers, models.DiscordMentionedUser{
			ID:       user.ID,
			Username: user.Username,
		})
	}

	reactions := make([]models.DiscordReaction, 0, len(m.Reactions))
	for _, reaction := range m.Reactions {
		if reaction == nil || reaction.Emoji == nil {
			continue
		}
		reactions = append(reactions, models.DiscordReaction{
			EmojiName: reaction.Emoji.Name,
			Count:     reaction.Count,
		})
	}

	return models.DiscordMessageEvent{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Author: models.DiscordAuthor{
			ID:            m.Author.ID,
			Username:      m.Author.Username,
			Discriminator: m.Author.Discriminator,
			AvatarURL:     m.Author.AvatarURL(""),
			Bot:           m.Author.Bot,
		},
		Attachments:      attachments,
		MentionedUsers:   mentionedUsers,
		MentionedRoleIDs: append([]string{}, m.MentionRoles...),
		MentionEveryone:  m.MentionEveryone,
		Reactions:        reactions,
	}, nil
}
