package thread

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	// CloseButtonID is the custom id the close-thread interaction handler listens for.
	CloseButtonID = "close"

	// Channel whose threads only ping the support role.
	supportOnlyChannelID = "872579324446928896"
	supportRoleMention   = "<@&857704834597650472>"
	helperRoleMention    = "<@&882699029706862602>"
)

// DisplayName returns the author's guild nickname, or the username when no nickname is set.
func DisplayName(author *discordgo.User, member *discordgo.Member) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	return author.Username
}

// ThreadName derives the thread title, e.g. "Jane (she/her)" on 2024-03-05 becomes "Jane (2024-03-05)".
func ThreadName(displayName string, createdAt time.Time) string {
	name, _, _ := strings.Cut(displayName, "(")
	return fmt.Sprintf("%s (%s)", strings.TrimSpace(name), createdAt.UTC().Format("2006-01-02"))
}

// TeamMention returns the role mentions pinged in a new thread of channelID.
func TeamMention(channelID string) string {
	if channelID == supportOnlyChannelID {
		return supportRoleMention
	}
	return supportRoleMention + " " + helperRoleMention
}

// RelativeTimestamp renders t as a Discord "N units ago" timestamp.
func RelativeTimestamp(t time.Time) string {
	seconds := int64(math.Floor(float64(t.UnixMilli())/1000 + 0.5))
	return fmt.Sprintf("<t:%d:R>", seconds)
}

// WelcomeMessage builds the first message posted into an auto-created thread.
func WelcomeMessage(authorID, channelID string, createdAt time.Time) *discordgo.MessageSend {
	content := fmt.Sprintf("Hey <@%s>! I've automatically created this helpful thread from your message %s.\n\n"+
		"Pinging %s so that they see this as well!\n\n"+
		"Want to unsubscribe? Right-click the thread (or use the `...` menu) and select **Leave Thread**.",
		authorID, RelativeTimestamp(createdAt), TeamMention(channelID))

	return &discordgo.MessageSend{
		Content: content,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Close thread",
						Style:    discordgo.DangerButton,
						CustomID: CloseButtonID,
						Emoji:    &discordgo.ComponentEmoji{Name: "🗑️"},
					},
				},
			},
		},
	}
}
