package models

// ChatSender tags who produced a chat turn.
type ChatSender string

const (
	ChatSenderUser      ChatSender = "user"
	ChatSenderAssistant ChatSender = "assistant"
)

// ChatTurn is one message in a chatbot conversation. Turns live only in the
// client's session; the server never persists them.
type ChatTurn struct {
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
}
