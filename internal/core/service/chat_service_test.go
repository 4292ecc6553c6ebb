package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// recordingQueue holds jobs until the test runs them.
type recordingQueue struct {
	jobs []ports.ChatJob
	err  error
}

func (q *recordingQueue) Enqueue(job ports.ChatJob) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func newChat() (*ChatService, *recordingQueue) {
	svc := NewChatService(NewChatbot(1, 0), ChatOptions{}, zerolog.Nop())
	q := &recordingQueue{}
	svc.SetQueue(q)
	return svc, q
}

func openChat(t *testing.T, svc *ChatService) ports.Conversation {
	t.Helper()
	conv, err := svc.Open()
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	return conv
}

func TestChatService_OpenStartsWithGreeting(t *testing.T) {
	svc, _ := newChat()

	conv := openChat(t, svc)
	if len(conv.Messages) != 1 || conv.Messages[0].Text != ChatGreeting || conv.Messages[0].Sender != domain.SenderBot {
		t.Fatalf("unexpected opening conversation %+v", conv)
	}
}

func TestChatService_SendAndReply(t *testing.T) {
	svc, q := newChat()
	conv := openChat(t, svc)

	got, err := svc.Send(context.Background(), conv.ID, "  track my issue status ")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if !got.Typing || len(got.Messages) != 2 || got.Messages[1].Text != "track my issue status" {
		t.Fatalf("unexpected conversation after send %+v", got)
	}
	if _, err := svc.Send(context.Background(), conv.ID, "hello again"); !errors.Is(err, domain.ErrBotTyping) {
		t.Fatalf("expected ErrBotTyping while the reply is pending, got %v", err)
	}
	if len(q.jobs) != 1 {
		t.Fatalf("expected one queued job, got %d", len(q.jobs))
	}

	topic, err := svc.Reply(context.Background(), q.jobs[0])
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if topic != string(TopicStatus) {
		t.Fatalf("expected status topic, got %q", topic)
	}

	got, err = svc.Get(conv.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Typing || len(got.Messages) != 3 || got.Messages[2].Sender != domain.SenderBot {
		t.Fatalf("expected bot reply appended, got %+v", got)
	}
}

func TestChatService_ReplyFailureAppendsApology(t *testing.T) {
	svc, q := newChat()
	svc.bot = NewChatbot(1, 1<<40)
	conv := openChat(t, svc)

	if _, err := svc.Send(context.Background(), conv.ID, "help"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Reply(ctx, q.jobs[0]); err == nil {
		t.Fatal("expected error from cancelled reply")
	}

	got, _ := svc.Get(conv.ID)
	last := got.Messages[len(got.Messages)-1]
	if last.Text != ChatApology || got.Typing {
		t.Fatalf("expected apology and typing cleared, got %+v", got)
	}
}

func TestChatService_SendRejects(t *testing.T) {
	svc, _ := newChat()
	conv := openChat(t, svc)

	if _, err := svc.Send(context.Background(), conv.ID, "   "); !errors.Is(err, domain.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := svc.Send(context.Background(), "missing", "help"); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestChatService_OpenIsCapped(t *testing.T) {
	svc := NewChatService(NewChatbot(1, 0), ChatOptions{MaxConversations: 3, IdleTimeout: time.Minute}, zerolog.Nop())
	now := time.Now()
	svc.now = func() time.Time { return now }

	for range 3 {
		openChat(t, svc)
	}
	if _, err := svc.Open(); !errors.Is(err, domain.ErrChatFull) {
		t.Fatalf("expected ErrChatFull, got %v", err)
	}

	// Idle conversations make room again.
	now = now.Add(2 * time.Minute)
	openChat(t, svc)
	if n := len(svc.conversations); n != 1 {
		t.Fatalf("expected idle conversations to be dropped, got %d", n)
	}
}

func TestChatService_IdleConversationExpires(t *testing.T) {
	svc := NewChatService(NewChatbot(1, 0), ChatOptions{IdleTimeout: time.Minute}, zerolog.Nop())
	svc.SetQueue(&recordingQueue{})
	now := time.Now()
	svc.now = func() time.Time { return now }

	conv := openChat(t, svc)
	now = now.Add(50 * time.Second)
	if _, err := svc.Get(conv.ID); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	// The read above kept it alive.
	now = now.Add(50 * time.Second)
	if _, err := svc.Get(conv.ID); err != nil {
		t.Fatalf("expected active conversation, got %v", err)
	}

	now = now.Add(time.Minute)
	if _, err := svc.Get(conv.ID); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound after idling, got %v", err)
	}
	if len(svc.conversations) != 0 {
		t.Fatal("expired conversation must be dropped")
	}
}

func TestChatService_PendingReplyIsNotIdle(t *testing.T) {
	svc, q := newChat()
	now := time.Now()
	svc.now = func() time.Time { return now }

	conv := openChat(t, svc)
	if _, err := svc.Send(context.Background(), conv.ID, "help"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	now = now.Add(time.Hour)
	if _, err := svc.Reply(context.Background(), q.jobs[0]); err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
}

func TestChatService_SendBusyQueueRollsBack(t *testing.T) {
	svc, q := newChat()
	conv := openChat(t, svc)
	q.err = errors.New("chat queue is full")

	if _, err := svc.Send(context.Background(), conv.ID, "help"); !errors.Is(err, domain.ErrChatBusy) {
		t.Fatalf("expected ErrChatBusy, got %v", err)
	}
	got, err := svc.Get(conv.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Typing || len(got.Messages) != 1 {
		t.Fatalf("expected the message to be taken back, got %+v", got)
	}

	q.err = nil
	if _, err := svc.Send(context.Background(), conv.ID, "help"); err != nil {
		t.Fatalf("resend returned error: %v", err)
	}
}
