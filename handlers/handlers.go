package handlers

import (
	"log"

	"auto-thread-bot/bot"
	"auto-thread-bot/config"
	"auto-thread-bot/handlers/thread"
	"auto-thread-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// Register all handlers to the bot.
func Register(b *bot.Bot) {
	creator := thread.NewAutoCreator(thread.NewSessionAPI(b.Session), config.GetThreadConfig, utils.RequiredPermissions())
	b.Session.AddHandler(MessageCreate(creator))

	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		utils.InitLogger(s)
		b.SetServing(true)
	})
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Resumed) {
		b.SetServing(true)
	})
	b.Session.AddHandler(func(s *discordgo.Session, d *discordgo.Disconnect) {
		log.Println("Disconnected from gateway.")
		b.SetServing(false)
	})
}
