package ports

import (
	"context"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

// ChatJob asks for a bot reply to the last user message of a conversation.
type ChatJob struct {
	ConversationID string
	Text           string
}

// ChatQueue schedules bot replies. Enqueue never blocks; it fails when the
// queue cannot take the job.
type ChatQueue interface {
	Enqueue(job ChatJob) error
}

// ChatReplier produces and records a bot reply and returns the topic that
// answered it.
type ChatReplier interface {
	Reply(ctx context.Context, job ChatJob) (string, error)
}

// Conversation is a snapshot of a chat widget's message list.
type Conversation struct {
	ID       string               `json:"id"`
	Messages []domain.ChatMessage `json:"messages"`
	Typing   bool                 `json:"typing"`
}

// ChatService drives the chatbot widget.
type ChatService interface {
	Open() (Conversation, error)
	Send(ctx context.Context, conversationID, text string) (Conversation, error)
	Get(conversationID string) (Conversation, error)
}
