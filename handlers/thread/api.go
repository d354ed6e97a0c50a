package thread

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// API is the part of the Discord session the auto-creator talks to.
type API interface {
	// BotUser returns the logged in account, or nil before the session is ready.
	BotUser() *discordgo.User

	// Guild returns the cached guild.
	Guild(guildID string) (*discordgo.Guild, error)

	// Channel returns the channel from the state cache, falling back to REST.
	Channel(ctx context.Context, channelID string) (*discordgo.Channel, error)

	// GuildMember fetches a member of a guild.
	GuildMember(ctx context.Context, guildID, userID string) (*discordgo.Member, error)

	// MemberChannelPermissions computes the effective permissions of member in channelID.
	MemberChannelPermissions(member *discordgo.Member, channelID string) (int64, error)

	SendMessage(ctx context.Context, channelID, content string) (*discordgo.Message, error)
	SendComplexMessage(ctx context.Context, channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)

	// StartThread starts a thread anchored to messageID.
	StartThread(ctx context.Context, channelID, messageID string, data *discordgo.ThreadStart) (*discordgo.Channel, error)

	// LeaveThread removes the bot from the thread's member list.
	LeaveThread(ctx context.Context, threadID string) error
}

// SessionAPI implements API over a discordgo session.
type SessionAPI struct {
	s *discordgo.Session
}

// NewSessionAPI wraps s.
func NewSessionAPI(s *discordgo.Session) *SessionAPI {
	return &SessionAPI{s: s}
}

func (a *SessionAPI) BotUser() *discordgo.User {
	if a.s.State == nil {
		return nil
	}
	return a.s.State.User
}

func (a *SessionAPI) Guild(guildID string) (*discordgo.Guild, error) {
	return a.s.State.Guild(guildID)
}

func (a *SessionAPI) Channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if ch, err := a.s.State.Channel(channelID); err == nil {
		return ch, nil
	}
	return a.s.Channel(channelID, discordgo.WithContext(ctx))
}

func (a *SessionAPI) GuildMember(ctx context.Context, guildID, userID string) (*discordgo.Member, error) {
	return a.s.GuildMember(guildID, userID, discordgo.WithContext(ctx))
}

// MemberChannelPermissions caches member so the state can resolve its roles, then asks the state
// for the channel permissions, which accounts for overwrites and Administrator.
func (a *SessionAPI) MemberChannelPermissions(member *discordgo.Member, channelID string) (int64, error) {
	if member.User == nil {
		return 0, fmt.Errorf("member of guild %s has no user", member.GuildID)
	}
	if err := a.s.State.MemberAdd(member); err != nil {
		return 0, fmt.Errorf("failed to cache member %s: %w", member.User.ID, err)
	}
	return a.s.State.UserChannelPermissions(member.User.ID, channelID)
}

func (a *SessionAPI) SendMessage(ctx context.Context, channelID, content string) (*discordgo.Message, error) {
	return a.s.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
}

func (a *SessionAPI) SendComplexMessage(ctx context.Context, channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	return a.s.ChannelMessageSendComplex(channelID, data, discordgo.WithContext(ctx))
}

func (a *SessionAPI) StartThread(ctx context.Context, channelID, messageID string, data *discordgo.ThreadStart) (*discordgo.Channel, error) {
	return a.s.MessageThreadStartComplex(channelID, messageID, data, discordgo.WithContext(ctx))
}

func (a *SessionAPI) LeaveThread(ctx context.Context, threadID string) error {
	return a.s.ThreadLeave(threadID, discordgo.WithContext(ctx))
}
