package models

import "time"

// DiscordMessageEvent is the platform-neutral projection of a MESSAGE_CREATE gateway event
type DiscordMessageEvent struct {
	GuildID   string
	ChannelID string
	MessageID string
	Content   string
	Timestamp time.Time
	Author    DiscordAuthor
	// Attachments, MentionedUsers, MentionedRoleIDs and Reactions keep the order Discord sent them in
	Attachments      []DiscordAttachment
	MentionedUsers   []DiscordMentionedUser
	MentionedRoleIDs []string
	MentionEveryone  bool
	Reactions        []DiscordReaction
}

type DiscordAuthor struct {
	ID            string
	Username      string
	Discriminator string
	AvatarURL     string
	Bot           bool
}

type DiscordAttachment struct {
	Filename string
	URL      string
	Size     int
	// ContentType is empty when Discord could not detect the media type
	ContentType string
}

type DiscordMentionedUser struct {
	ID       string
	Username string
}

type DiscordReaction struct {
	EmojiName string
	Count     int
}

// MentionsUser reports whether userID is among the resolved user mentions
func (e DiscordMessageEvent) MentionsUser(userID string) bool {
	for _, user := range e.MentionedUsers {
		if user.ID == userID {
			return true
		}
	}
	return false
}
