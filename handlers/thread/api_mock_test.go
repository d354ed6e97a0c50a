package thread

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

// MockAPI implements API for testing.
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) BotUser() *discordgo.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*discordgo.User)
}

func (m *MockAPI) Guild(guildID string) (*discordgo.Guild, error) {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Guild), args.Error(1)
}

func (m *MockAPI) Channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Channel), args.Error(1)
}

func (m *MockAPI) GuildMember(ctx context.Context, guildID, userID string) (*discordgo.Member, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Member), args.Error(1)
}

func (m *MockAPI) MemberChannelPermissions(member *discordgo.Member, channelID string) (int64, error) {
	args := m.Called(member, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAPI) SendMessage(ctx context.Context, channelID, content string) (*discordgo.Message, error) {
	args := m.Called(ctx, channelID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

func (m *MockAPI) SendComplexMessage(ctx context.Context, channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	args := m.Called(ctx, channelID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

func (m *MockAPI) StartThread(ctx context.Context, channelID, messageID string, data *discordgo.ThreadStart) (*discordgo.Channel, error) {
	args := m.Called(ctx, channelID, messageID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Channel), args.Error(1)
}

func (m *MockAPI) LeaveThread(ctx context.Context, threadID string) error {
	args := m.Called(ctx, threadID)
	return args.Error(0)
}
