package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/pkg/completion"
)

type fakeCompleter struct {
	reply string
	err   error
	got   []completion.Message
}

func (f *fakeCompleter) Complete(_ context.Context, messages []completion.Message) (string, error) {
	f.got = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestChatBuildsMessageList(t *testing.T) {
	completer := &fakeCompleter{reply: "Start with data structures."}
	svc := NewChatService(completer, zerolog.Nop())

	resp := svc.Chat(context.Background(), &dto.ChatRequest{
		Message: "What should I study first?",
		History: []models.ChatTurn{
			{Sender: models.ChatSenderUser, Text: "Hi!"},
			{Sender: models.ChatSenderAssistant, Text: "Hello, how can I help?"},
		},
	})

	require.Equal(t, "Start with data structures.", resp.Reply)

	require.Len(t, completer.got, 4)
	require.Equal(t, "system", completer.got[0].Role)
	require.Equal(t, systemPrompt, completer.got[0].Content)
	require.Equal(t, "user", completer.got[1].Role)
	require.Equal(t, "assistant", completer.got[2].Role)
	require.Equal(t, "user", completer.got[3].Role)
	require.Equal(t, "What should I study first?", completer.got[3].Content)
}

func TestChatEmptyHistory(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := NewChatService(completer, zerolog.Nop())

	svc.Chat(context.Background(), &dto.ChatRequest{Message: "hello"})

	require.Len(t, completer.got, 2)
	require.Equal(t, "system", completer.got[0].Role)
	require.Equal(t, "user", completer.got[1].Role)
}

func TestChatFallbackOnError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream unavailable")}
	svc := NewChatService(completer, zerolog.Nop())

	resp := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hello"})

	require.Equal(t, fallbackReply, resp.Reply)
}
