package thread

import (
	"context"
	"fmt"
	"log"

	"auto-thread-bot/models"
	"auto-thread-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// Outcome describes what HandleCreate did with a message.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeMissingPermissions
	OutcomeThreadCreated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeMissingPermissions:
		return "missing_permissions"
	case OutcomeThreadCreated:
		return "thread_created"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is returned by HandleCreate. Reason is set for skipped messages, ThreadID for created threads.
type Result struct {
	Outcome  Outcome
	Reason   string
	ThreadID string
}

func skipped(reason string) Result {
	return Result{Outcome: OutcomeSkipped, Reason: reason}
}

// AutoCreator opens a thread under every user message posted in an allow-listed channel.
type AutoCreator struct {
	api                 API
	config              func() *models.ThreadConfig
	requiredPermissions int64
}

// NewAutoCreator creates an AutoCreator. config is called once per message so reloads take effect.
func NewAutoCreator(api API, config func() *models.ThreadConfig, requiredPermissions int64) *AutoCreator {
	return &AutoCreator{
		api:                 api,
		config:              config,
		requiredPermissions: requiredPermissions,
	}
}

// HandleCreate runs for every new message. A failure to post the missing-permissions warning is
// logged and swallowed; every other failure is returned and may leave a thread without its
// welcome message.
func (c *AutoCreator) HandleCreate(ctx context.Context, m *discordgo.Message) (Result, error) {
	cfg, reason := c.eligible(ctx, m)
	if reason != "" {
		return skipped(reason), nil
	}

	botMember, err := c.api.GuildMember(ctx, m.GuildID, c.api.BotUser().ID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch bot member in guild %s: %w", m.GuildID, err)
	}

	perms, err := c.api.MemberChannelPermissions(botMember, m.ChannelID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to compute bot permissions in channel %s: %w", m.ChannelID, err)
	}

	if missing := utils.MissingPermissions(perms, c.requiredPermissions); len(missing) > 0 {
		if _, err := c.api.SendMessage(ctx, m.ChannelID, utils.FormatMissingPermissions(missing)); err != nil {
			utils.Warn("ThreadAutoCreate", "PermissionWarning",
				fmt.Sprintf("Could not post missing permissions %v to channel %s: %v", missing, m.ChannelID, err))
		}
		return Result{Outcome: OutcomeMissingPermissions}, nil
	}

	thread, err := c.api.StartThread(ctx, m.ChannelID, m.ID, &discordgo.ThreadStart{
		Name:                ThreadName(DisplayName(m.Author, m.Member), m.Timestamp),
		AutoArchiveDuration: cfg.ThreadArchiveDuration.Minutes(),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to start thread on message %s: %w", m.ID, err)
	}

	if _, err := c.api.SendComplexMessage(ctx, thread.ID, WelcomeMessage(m.Author.ID, m.ChannelID, m.Timestamp)); err != nil {
		return Result{}, fmt.Errorf("failed to send welcome message to thread %s: %w", thread.ID, err)
	}

	if err := c.api.LeaveThread(ctx, thread.ID); err != nil {
		return Result{}, fmt.Errorf("failed to leave thread %s: %w", thread.ID, err)
	}

	log.Printf("Created thread %q (%s) for message %s in channel %s", thread.Name, thread.ID, m.ID, m.ChannelID)
	return Result{Outcome: OutcomeThreadCreated, ThreadID: thread.ID}, nil
}

// eligible runs the guard chain in order and returns the reason of the first failing check.
func (c *AutoCreator) eligible(ctx context.Context, m *discordgo.Message) (*models.ThreadConfig, string) {
	if m.GuildID == "" {
		return nil, "not in a guild"
	}
	guild, err := c.api.Guild(m.GuildID)
	if err != nil || guild.Unavailable {
		return nil, "guild unavailable"
	}

	if c.api.BotUser() == nil {
		return nil, "not logged in"
	}

	if isSystemMessage(m) {
		return nil, "system message"
	}

	if m.Author == nil || m.Author.Bot {
		return nil, "bot author"
	}

	channel, err := c.api.Channel(ctx, m.ChannelID)
	if err != nil || !isTextChannel(channel.Type) {
		return nil, "not a text channel"
	}

	if m.Thread != nil || m.Flags&discordgo.MessageFlagsHasThread != 0 {
		return nil, "already has a thread"
	}

	cfg := c.config()
	if !cfg.HasChannel(m.ChannelID) {
		return nil, "channel not configured"
	}

	return cfg, ""
}

func isSystemMessage(m *discordgo.Message) bool {
	switch m.Type {
	case discordgo.MessageTypeDefault,
		discordgo.MessageTypeReply,
		discordgo.MessageTypeChatInputCommand,
		discordgo.MessageTypeContextMenuCommand:
		return false
	default:
		return true
	}
}

func isTextChannel(channelType discordgo.ChannelType) bool {
	switch channelType {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeGuildNewsThread,
		discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread:
		return true
	default:
		return false
	}
}
