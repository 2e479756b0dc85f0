package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// GatewayIntents are the capabilities needed to read message text, author and channel/guild metadata
const GatewayIntents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent |
	discordgo.IntentsGuildMembers

// NewSession creates an unopened gateway session authenticated with botToken
func NewSession(botToken string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = GatewayIntents
	session.StateEnabled = true

	return session, nil
}
