package relay

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabekou29/n8n-self-host/clients"
	"github.com/nabekou29/n8n-self-host/models"
)

func TestBuildMentionEvent_FullMessage(t *testing.T) {
	event := createTestMessageEvent("<@123456> <@&333> see attached")
	event.MentionedUsers = append(event.MentionedUsers, models.DiscordMentionedUser{ID: "777", Username: "bob"})
	event.MentionedRoleIDs = []string{testRoleID, "999"}
	event.MentionEveryone = true
	event.Attachments = []models.DiscordAttachment{
		{Filename: "a.png", URL: "https://cdn/a.png", Size: 100, ContentType: "image/png"},
	}
	event.Reactions = []models.DiscordReaction{{EmojiName: "🔥", Count: 3}, {EmojiName: "👀", Count: 1}}

	msgCtx := MessageContext{
		Channel:   *createTestChannel(),
		Guild:     mo.Some(createTestGuild()),
		RoleNames: map[string]string{testRoleID: "ops"},
	}

	payload := BuildMentionEvent(event, msgCtx, "<@&333> see attached")

	contentType := "image/png"
	icon := "https://cdn.discordapp.com/icons/111/abc.png"
	assert.Equal(t, models.MentionEvent{
		Content:    "<@&333> see attached",
		RawContent: "<@123456> <@&333> see attached",
		MessageID:  testMessageID,
		User: models.MentionUser{
			ID:            testUserID,
			Username:      testUsername,
			Discriminator: "0",
			AvatarURL:     "https://cdn.discordapp.com/embed/avatars/0.png",
		},
		Channel:   models.MentionChannel{ID: testChannelID, Name: "general", Type: 0},
		Guild:     models.MentionGuild{ID: testGuildID, Name: "Automation Lab", MemberCount: 42, IconURL: &icon},
		Timestamp: 1709294645678,
		CreatedAt: "2024-03-01T12:04:05.678Z",
		Attachments: []models.MentionAttachment{
			{Name: "a.png", URL: "https://cdn/a.png", Size: 100, ContentType: &contentType},
		},
		Mentions: models.MentionSet{
			Users: []models.MentionedUser{
				{ID: testBotID, Username: testBotUsername},
				{ID: "777", Username: "bob"},
			},
			Roles: []models.MentionedRole{
				{ID: testRoleID, Name: "ops"},
				{ID: "999", Name: ""},
			},
			Everyone: true,
		},
		Reactions: []models.MentionReaction{{Emoji: "🔥", Count: 3}, {Emoji: "👀", Count: 1}},
	}, payload)
}

func TestBuildMentionEvent_DirectMessageHasNoGuild(t *testing.T) {
	event := createTestMessageEvent("<@123456> hi")
	event.GuildID = ""

	payload := BuildMentionEvent(event, MessageContext{
		Channel: clients.DiscordChannel{ID: testChannelID, Type: 1},
		Guild:   mo.None[*clients.DiscordGuild](),
	}, "hi")

	assert.Equal(t, models.MentionGuild{}, payload.Guild)
	assert.Nil(t, payload.Guild.IconURL)
	assert.Equal(t, 1, payload.Channel.Type)
}

func TestBuildMentionEvent_GuildWithoutIcon(t *testing.T) {
	guild := createTestGuild()
	guild.IconURL = ""

	payload := BuildMentionEvent(createTestMessageEvent("hi"), MessageContext{
		Channel: *createTestChannel(),
		Guild:   mo.Some(guild),
	}, "hi")

	assert.Nil(t, payload.Guild.IconURL)
	assert.Equal(t, "Automation Lab", payload.Guild.Name)
}

func TestBuildMentionEvent_EmptySequencesAreNotNil(t *testing.T) {
	event := createTestMessageEvent("hi")
	event.MentionedUsers = nil

	payload := BuildMentionEvent(event, MessageContext{}, "hi")

	require.NotNil(t, payload.Attachments)
	require.NotNil(t, payload.Reactions)
	require.NotNil(t, payload.Mentions.Users)
	require.NotNil(t, payload.Mentions.Roles)
	assert.Empty(t, payload.Attachments)
	assert.Empty(t, payload.Mentions.Users)
}
