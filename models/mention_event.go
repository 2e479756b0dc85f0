package models

import "time"

// CreatedAtLayout renders timestamps as ISO-8601 UTC with millisecond precision
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// MentionEvent is the JSON body POSTed to the webhook for every mention of the bot
type MentionEvent struct {
	Content     string              `json:"content"`
	RawContent  string              `json:"rawContent"`
	MessageID   string              `json:"messageId"`
	User        MentionUser         `json:"user"`
	Channel     MentionChannel      `json:"channel"`
	Guild       MentionGuild        `json:"guild"`
	Timestamp   int64               `json:"timestamp"`
	CreatedAt   string              `json:"createdAt"`
	Attachments []MentionAttachment `json:"attachments"`
	Mentions    MentionSet          `json:"mentions"`
	Reactions   []MentionReaction   `json:"reactions"`
}

type MentionUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	AvatarURL     string `json:"avatarUrl"`
	IsBot         bool   `json:"isBot"`
}

type MentionChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

type MentionGuild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
	// IconURL is null for guilds without an icon
	IconURL *string `json:"iconUrl"`
}

type MentionAttachment struct {
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	Size        int     `json:"size"`
	ContentType *string `json:"contentType"`
}

type MentionSet struct {
	Users    []MentionedUser `json:"users"`
	Roles    []MentionedRole `json:"roles"`
	Everyone bool            `json:"everyone"`
}

type MentionedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type MentionedRole struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MentionReaction struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// FormatTimestamps returns the epoch-millisecond and ISO-8601 encodings of the same instant
func FormatTimestamps(t time.Time) (int64, string) {
	return t.UnixMilli(), t.UTC().Format(CreatedAtLayout)
}
