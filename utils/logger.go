package utils

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

const (
	ColorInfo  = 0x00ff00 // Green
	ColorWarn  = 0xffff00 // Yellow
	ColorError = 0xff0000 // Red
)

var (
	mu        sync.RWMutex
	session   *discordgo.Session
	channelID string
)

// InitLogger routes log entries to the admin channel of the given session.
func InitLogger(s *discordgo.Session) {
	mu.Lock()
	defer mu.Unlock()

	session = s
	channelID = viper.GetString("bot.adminChannelId")
	if channelID == "" {
		log.Println("Warning: bot.adminChannelId is not set. Logging to channel will be disabled.")
	}
}

// Log sends a log entry to the admin channel, or to the process log when no channel is set.
func Log(level, module, operation, details string) {
	mu.RLock()
	s, target := session, channelID
	mu.RUnlock()

	if s == nil || target == "" {
		log.Printf("[%s] Module: %s, Operation: %s, Details: %s", level, module, operation, details)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Log Level: %s", level),
		Color:     levelColor(level),
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Module",
				Value:  module,
				Inline: true,
			},
			{
				Name:   "Operation",
				Value:  operation,
				Inline: true,
			},
			{
				Name:  "Details",
				Value: details,
			},
		},
	}

	if _, err := s.ChannelMessageSendEmbed(target, embed); err != nil {
		log.Printf("Error sending log message to Discord: %v", err)
		log.Printf("[%s] Module: %s, Operation: %s, Details: %s", level, module, operation, details)
	}
}

func levelColor(level string) int {
	switch level {
	case "WARN":
		return ColorWarn
	case "ERROR":
		return ColorError
	default:
		return ColorInfo
	}
}

// Info logs an informational message.
func Info(module, operation, details string) {
	Log("INFO", module, operation, details)
}

// Warn logs a warning message.
func Warn(module, operation, details string) {
	Log("WARN", module, operation, details)
}

// Error logs an error message.
func Error(module, operation, details string) {
	Log("ERROR", module, operation, details)
}
