package relay

import (
	"github.com/samber/mo"

	"github.com/nabekou29/n8n-self-host/clients"
	"github.com/nabekou29/n8n-self-host/models"
)

// MessageContext holds the platform snapshots resolved for one message
type MessageContext struct {
	Channel   clients.DiscordChannel
	Guild     mo.Option[*clients.DiscordGuild]
	RoleNames map[string]string
}

// BuildMentionEvent projects a message and its resolved context onto the webhook payload.
// content is the already-stripped message text; sequences are never nil so they encode as [].
func BuildMentionEvent(
	event models.DiscordMessageEvent,
	msgCtx MessageContext,
	content string,
) models.MentionEvent {
	timestamp, createdAt := models.FormatTimestamps(event.Timestamp)

	return models.MentionEvent{
		Content:    content,
		RawContent: event.Content,
		MessageID:  event.MessageID,
		User: models.MentionUser{
			ID:            event.Author.ID,
			Username:      event.Author.Username,
			Discriminator: event.Author.Discriminator,
			AvatarURL:     event.Author.AvatarURL,
			IsBot:         event.Author.Bot,
		},
		Channel: models.MentionChannel{
			ID:   msgCtx.Channel.ID,
			Name: msgCtx.Channel.Name,
			Type: msgCtx.Channel.Type,
		},
		Guild:       buildGuild(event.GuildID, msgCtx.Guild),
		Timestamp:   timestamp,
		CreatedAt:   createdAt,
		Attachments: buildAttachments(event.Attachments),
		Mentions: models.MentionSet{
			Users:    buildMentionedUsers(event.MentionedUsers),
			Roles:    buildMentionedRoles(event.MentionedRoleIDs, msgCtx.RoleNames),
			Everyone: event.MentionEveryone,
		},
		Reactions: buildReactions(event.Reactions),
	}
}

func buildGuild(guildID string, maybeGuild mo.Option[*clients.DiscordGuild]) models.MentionGuild {
	guild, ok := maybeGuild.Get()
	if !ok || guild == nil {
		return models.MentionGuild{ID: guildID}
	}

	return models.MentionGuild{
		ID:          guild.ID,
		Name:        guild.Name,
		MemberCount: guild.MemberCount,
		IconURL:     optionalString(guild.IconURL),
	}
}

func buildAttachments(attachments []models.DiscordAttachment) []models.MentionAttachment {
	result := make([]models.MentionAttachment, 0, len(attachments))
	for _, att := range attachments {
		result = append(result, models.MentionAttachment{
			Name:        att.Filename,
			URL:         att.URL,
			Size:        att.Size,
			ContentType: optionalString(att.ContentType),
		})
	}
	return result
}

func buildMentionedUsers(users []models.DiscordMentionedUser) []models.MentionedUser {
	result := make([]models.MentionedUser, 0, len(users))
	for _, user := range users {
		result = append(result, models.MentionedUser{ID: user.ID, Username: user.Username})
	}
	return result
}

func buildMentionedRoles(roleIDs []string, roleNames map[string]string) []models.MentionedRole {
	result := make([]models.MentionedRole, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		result = append(result, models.MentionedRole{ID: roleID, Name: roleNames[roleID]})
	}
	return result
}

func buildReactions(reactions []models.DiscordReaction) []models.MentionReaction {
	result := make([]models.MentionReaction, 0, len(reactions))
	for _, reaction := range reactions {
		result = append(result, models.MentionReaction{Emoji: reaction.EmojiName, Count: reaction.Count})
	}
	return result
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
