package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"github.com/nabekou29/n8n-self-host/clients"
	"github.com/nabekou29/n8n-self-host/core"
)

// DiscordClient implements the clients.DiscordClient interface on top of a gateway session.
// Reads go to the session state cache first, which the gateway keeps populated for guilds
// the bot is in, and fall back to the REST API.
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient creates a new Discord client sharing the given session
func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{
		session: session,
	}
}

// GetBotUser returns the bot identity from the READY payload, or from REST before READY
func (c *DiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	user := c.stateUser()
	if user == nil {
		restUser, err := c.session.User("@me")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch bot user: %w", err)
		}
		user = restUser
	}

	return &clients.DiscordBotUser{
		ID:            user.ID,
		Username:      user.Username,
		Discriminator: user.Discriminator,
		Bot:           user.Bot,
	}, nil
}

// GetChannelByID fetches channel information
func (c *DiscordClient) GetChannelByID(ctx context.Context, channelID string) (*clients.DiscordChannel, error) {
	channel, err := c.session.State.Channel(channelID)
	if err != nil {
		channel, err = c.session.Channel(channelID, discordgo.WithContext(ctx))
		if err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("channel %s: %w", channelID, core.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to fetch channel: %w", err)
		}
	}

	return &clients.DiscordChannel{
		ID:      channel.ID,
		Name:    channel.Name,
		Type:    int(channel.Type),
		GuildID: channel.GuildID,
	}, nil
}

// GetGuildByID fetches guild information. Messages outside guilds have no guild ID and yield None.
func (c *DiscordClient) GetGuildByID(ctx context.Context, guildID string) (mo.Option[*clients.DiscordGuild], error) {
	if guildID == "" {
		return mo.None[*clients.DiscordGuild](), nil
	}

	guild, err := c.session.State.Guild(guildID)
	if err != nil {
		guild, err = c.session.GuildWithCounts(guildID, discordgo.WithContext(ctx))
		if err != nil {
			if isNotFound(err) {
				return mo.None[*clients.DiscordGuild](), nil
			}
			return mo.None[*clients.DiscordGuild](), fmt.Errorf("failed to fetch guild: %w", err)
		}
	}

	memberCount := guild.MemberCount
	if memberCount == 0 {
		memberCount = guild.ApproximateMemberCount
	}

	return mo.Some(&clients.DiscordGuild{
		ID:          guild.ID,
		Name:        guild.Name,
		MemberCount: memberCount,
		IconURL:     guild.IconURL(""),
	}), nil
}

// GetRoleName resolves a role ID to its name
func (c *DiscordClient) GetRoleName(ctx context.Context, guildID, roleID string) (string, error) {
	if role, err := c.session.State.Role(guildID, roleID); err == nil {
		return role.Name, nil
	}

	roles, err := c.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to fetch guild roles: %w", err)
	}
	for _, role := range roles {
		if role.ID == roleID {
			return role.Name, nil
		}
	}

	return "", fmt.Errorf("role %s in guild %s: %w", roleID, guildID, core.ErrNotFound)
}

// ReplyToMessage posts a reply referencing the original message
func (c *DiscordClient) ReplyToMessage(
	ctx context.Context,
	params clients.DiscordReplyParams,
) (*clients.DiscordPostMessageResponse, error) {
	reference := &discordgo.MessageReference{
		MessageID: params.MessageID,
		ChannelID: params.ChannelID,
		GuildID:   params.GuildID,
	}

	message, err := c.session.ChannelMessageSendReply(
		params.ChannelID,
		params.Content,
		reference,
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send reply: %w", err)
	}

	return &clients.DiscordPostMessageResponse{
		ChannelID: message.ChannelID,
		MessageID: message.ID,
	}, nil
}

func (c *DiscordClient) stateUser() *discordgo.User {
	if c.session.State == nil {
		return nil
	}
	return c.session.State.User
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode == http.StatusNotFound
	}
	return core.IsNotFoundError(err)
}
