package handlers

import (
	"context"
	"errors"
	"testing"

	"auto-thread-bot/handlers/thread"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMessageHandler struct {
	mock.Mock
}

func (m *mockMessageHandler) HandleCreate(ctx context.Context, msg *discordgo.Message) (thread.Result, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(thread.Result), args.Error(1)
}

func TestMessageCreate_ForwardsMessage(t *testing.T) {
	msg := &discordgo.Message{ID: "1", ChannelID: "2"}
	h := new(mockMessageHandler)
	h.On("HandleCreate", mock.Anything, msg).Return(thread.Result{Outcome: thread.OutcomeSkipped}, nil).Once()

	MessageCreate(h)(nil, &discordgo.MessageCreate{Message: msg})

	h.AssertExpectations(t)
}

func TestDispatchCreate_ErrorIsContained(t *testing.T) {
	msg := &discordgo.Message{ID: "1", ChannelID: "2"}
	h := new(mockMessageHandler)
	h.On("HandleCreate", mock.Anything, msg).Return(thread.Result{}, errors.New("HTTP 500")).Once()

	assert.NotPanics(t, func() { dispatchCreate(context.Background(), h, msg) })
	h.AssertExpectations(t)
}
