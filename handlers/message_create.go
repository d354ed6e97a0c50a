package handlers

import (
	"context"
	"fmt"

	"auto-thread-bot/handlers/thread"
	"auto-thread-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// MessageHandler is implemented by anything that reacts to new messages.
type MessageHandler interface {
	HandleCreate(ctx context.Context, m *discordgo.Message) (thread.Result, error)
}

// MessageCreate will be called every time a new message is created on any channel that the
// authenticated bot has access to. Errors returned by h are reported to the admin log.
func MessageCreate(h MessageHandler) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		dispatchCreate(context.Background(), h, m.Message)
	}
}

func dispatchCreate(ctx context.Context, h MessageHandler, m *discordgo.Message) {
	if _, err := h.HandleCreate(ctx, m); err != nil {
		utils.Error("MessageCreate", "AutoThread",
			fmt.Sprintf("Message %s in channel %s: %v", m.ID, m.ChannelID, err))
	}
}
