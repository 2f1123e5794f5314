package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gradchat/gradchat/internal/app/models"
	"github.com/gradchat/gradchat/internal/app/models/dto"
	"github.com/gradchat/gradchat/internal/pkg/completion"
	"github.com/gradchat/gradchat/internal/pkg/metrics"
)

// systemPrompt frames every completion request; it is not configurable and
// never varies per user.
const systemPrompt = "You are a helpful mentor chatbot designed to bridge the gap between college juniors and seniors. " +
	"Provide guidance on topics like placement strategies, study tips, event management, and skill development."

// fallbackReply is returned verbatim whenever the completion call fails for
// any reason.
const fallbackReply = "Sorry, there was an error processing your request. Please try again."

// Completer sends a conversation to the completion API
type Completer interface {
	Complete(ctx context.Context, messages []completion.Message) (string, error)
}

// ChatService relays mentor chatbot conversations to the completion API.
// Conversations live only in the client; nothing is persisted here.
type ChatService struct {
	completer Completer
	logger    zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(completer Completer, logger zerolog.Logger) *ChatService {
	return &ChatService{
		completer: completer,
		logger:    logger,
	}
}

// Chat sends the fixed system prompt, the prior turns and the new message to
// the completion API. Any failure produces the fixed fallback text with a
// success outcome; the caller cannot distinguish it from a real reply.
func (s *ChatService) Chat(ctx context.Context, req *dto.ChatRequest) *dto.ChatResponse {
	messages := make([]completion.Message, 0, len(req.History)+2)
	messages = append(messages, completion.Message{Role: "system", Content: systemPrompt})

	for _, turn := range req.History {
		role := "user"
		if turn.Sender == models.ChatSenderAssistant {
			role = "assistant"
		}
		messages = append(messages, completion.Message{Role: role, Content: turn.Text})
	}

	messages = append(messages, completion.Message{Role: "user", Content: req.Message})

	reply, err := s.completer.Complete(ctx, messages)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Completion call failed, serving fallback reply")
		metrics.CompletionFallbacksTotal.Inc()
		return &dto.ChatResponse{Reply: fallbackReply}
	}

	return &dto.ChatResponse{Reply: reply}
}
