package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"auto-thread-bot/config"
	probegrpc "auto-thread-bot/grpc"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// Bot encapsulates the bot's state.
type Bot struct {
	Session *discordgo.Session
	// Health is nil when grpc.healthAddress is not configured.
	Health *probegrpc.HealthServer
}

// NewBot creates and initializes a new Bot instance.
func NewBot() (*Bot, error) {
	config.LoadConfig()
	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("no bot token provided")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	// Guilds keeps guild, role and channel state warm for permission checks.
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b := &Bot{Session: dg}

	if addr := viper.GetString("grpc.healthAddress"); addr != "" {
		hs, err := probegrpc.NewHealthServer(addr)
		if err != nil {
			return nil, fmt.Errorf("error creating health server: %w", err)
		}
		b.Health = hs
	}

	return b, nil
}

// SetServing reports the session state on the health endpoint, if one is running.
func (b *Bot) SetServing(serving bool) {
	if b.Health != nil {
		b.Health.SetServing(serving)
	}
}

// Start registers handlers, opens the session and starts background jobs.
func (b *Bot) Start(registerHandlers func(*Bot)) error {
	registerHandlers(b)

	if b.Health != nil {
		b.Health.Start()
	}

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if err := startScheduler(viper.GetString("bot.configReloadSchedule")); err != nil {
		return err
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully closes the bot's session.
func (b *Bot) Stop() {
	stopScheduler()
	b.SetServing(false)
	if b.Session != nil {
		b.Session.Close()
	}
	if b.Health != nil {
		b.Health.Stop()
	}
	fmt.Println("Bot stopped gracefully.")
}

// Run is the main entry point for the bot application.
func Run(registerHandlers func(*Bot)) {
	bot, err := NewBot()
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	if err := bot.Start(registerHandlers); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
}
