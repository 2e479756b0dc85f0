package clients

// DiscordBotUser represents Discord bot user information
type DiscordBotUser struct {
	ID            string
	Username      string
	Discriminator string
	Bot           bool
}

// DiscordChannel represents Discord channel information
type DiscordChannel struct {
	ID      string
	Name    string
	Type    int
	GuildID string
}

// DiscordGuild represents Discord guild information
type DiscordGuild struct {
	ID          string
	Name        string
	MemberCount int
	// IconURL is empty when the guild has no icon
	IconURL string
}

// DiscordReplyParams holds parameters for replying to a Discord message
type DiscordReplyParams struct {
	GuildID   string
	ChannelID string
	MessageID string
	Content   string
}

// DiscordPostMessageResponse represents the response from posting a message to Discord
type DiscordPostMessageResponse struct {
	ChannelID string
	MessageID string
}

// WebhookResponse captures what the relay keeps from a webhook response
type WebhookResponse struct {
	StatusCode int
}

// Alert is a single error alert
type Alert struct {
	Title       string
	Context     string
	Message     string
	Environment string
	LogsURL     string
}
