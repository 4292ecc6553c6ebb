package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

type stubChat struct {
	sendFn  func(ctx context.Context, id, text string) (ports.Conversation, error)
	openErr error
}

func (s *stubChat) Open() (ports.Conversation, error) {
	if s.openErr != nil {
		return ports.Conversation{}, s.openErr
	}
	return ports.Conversation{ID: "conv-1", Messages: []domain.ChatMessage{{ID: "m1", Sender: domain.SenderBot, Text: "hello"}}}, nil
}

func (s *stubChat) Send(ctx context.Context, id, text string) (ports.Conversation, error) {
	return s.sendFn(ctx, id, text)
}

func (s *stubChat) Get(id string) (ports.Conversation, error) {
	if id != "conv-1" {
		return ports.Conversation{}, domain.ErrConversationNotFound
	}
	return ports.Conversation{ID: id}, nil
}

func TestChatHandler_Open(t *testing.T) {
	h := NewChatHandler(&stubChat{})

	c, rec := newContext(http.MethodPost, "/chat", "")
	if err := h.Open(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var conv ports.Conversation
	if err := json.Unmarshal(rec.Body.Bytes(), &conv); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if conv.ID != "conv-1" || len(conv.Messages) != 1 || conv.Messages[0].Sender != domain.SenderBot {
		t.Fatalf("unexpected conversation %+v", conv)
	}
}

func TestChatHandler_OpenAtCapacity(t *testing.T) {
	h := NewChatHandler(&stubChat{openErr: domain.ErrChatFull})

	c, _ := newContext(http.MethodPost, "/chat", "")
	if err := h.Open(c); !errors.Is(err, domain.ErrChatFull) {
		t.Fatalf("expected ErrChatFull, got %v", err)
	}
}

func TestChatHandler_Send(t *testing.T) {
	chat := &stubChat{
		sendFn: func(ctx context.Context, id, text string) (ports.Conversation, error) {
			if id != "conv-1" || text != "how do I report an issue?" {
				t.Fatalf("unexpected args %q %q", id, text)
			}
			return ports.Conversation{ID: id, Typing: true}, nil
		},
	}
	h := NewChatHandler(chat)

	c, rec := newContext(http.MethodPost, "/chat/conv-1/messages", `{"text":"how do I report an issue?"}`)
	c.SetParamNames("id")
	c.SetParamValues("conv-1")
	if err := h.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}

func TestChatHandler_SendWhileTyping(t *testing.T) {
	chat := &stubChat{
		sendFn: func(ctx context.Context, id, text string) (ports.Conversation, error) {
			return ports.Conversation{}, domain.ErrBotTyping
		},
	}

	c, _ := newContext(http.MethodPost, "/chat/conv-1/messages", `{"text":"hello?"}`)
	c.SetParamNames("id")
	c.SetParamValues("conv-1")
	if err := NewChatHandler(chat).Send(c); !errors.Is(err, domain.ErrBotTyping) {
		t.Fatalf("expected ErrBotTyping, got %v", err)
	}
}

func TestChatHandler_MessagesUnknown(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/chat/nope/messages", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := NewChatHandler(&stubChat{}).Messages(c); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}
