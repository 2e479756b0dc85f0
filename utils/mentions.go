package utils

import (
	"regexp"
	"strings"
)

// discordMentionRegex matches Discord user mentions: <@USER_ID> or <@!USER_ID>
var discordMentionRegex = regexp.MustCompile(`<@!?[0-9]+>`)

// StripMentions removes every Discord user mention from message text
func StripMentions(text string) string {
	text = discordMentionRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// StripSelfMentions removes only the mentions of userID, leaving other users' mentions intact
func StripSelfMentions(text, userID string) string {
	AssertInvariant(userID != "", "userID cannot be empty when stripping self mentions")

	selfMentionRegex := regexp.MustCompile(`<@!?` + regexp.QuoteMeta(userID) + `>`)
	text = selfMentionRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
