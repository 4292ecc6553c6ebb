package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

const (
	defaultMaxConversations = 10000
	defaultChatIdleTimeout  = 30 * time.Minute
	chatSweepInterval       = time.Minute
)

// ChatOptions bounds the conversations held in memory.
type ChatOptions struct {
	// MaxConversations caps open conversations. Defaults to 10000.
	MaxConversations int
	// IdleTimeout drops a conversation not opened, read or written to for
	// that long. Defaults to 30 minutes.
	IdleTimeout time.Duration
}

type conversation struct {
	messages   []domain.ChatMessage
	typing     bool
	lastActive time.Time
}

// ChatService keeps chat widget conversations in memory and hands bot
// replies to a queue so that replies of one conversation stay ordered.
type ChatService struct {
	bot   *Chatbot
	queue ports.ChatQueue
	opts  ChatOptions
	log   zerolog.Logger
	now   func() time.Time

	mu            sync.Mutex
	conversations map[string]*conversation
	lastSweep     time.Time
}

func NewChatService(bot *Chatbot, opts ChatOptions, log zerolog.Logger) *ChatService {
	if opts.MaxConversations <= 0 {
		opts.MaxConversations = defaultMaxConversations
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = defaultChatIdleTimeout
	}
	return &ChatService{
		bot:           bot,
		opts:          opts,
		log:           log,
		now:           time.Now,
		conversations: make(map[string]*conversation),
	}
}

// SetQueue wires the reply queue. The queue's workers call Reply, so it is
// set after construction.
func (s *ChatService) SetQueue(q ports.ChatQueue) {
	s.queue = q
}

// Open starts a conversation with the greeting. It fails with ErrChatFull
// when the cap is reached after idle conversations were dropped.
func (s *ChatService) Open() (ports.Conversation, error) {
	id := uuid.NewString()
	now := s.now()
	c := &conversation{
		messages:   []domain.ChatMessage{s.message(ChatGreeting, domain.SenderBot)},
		lastActive: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Sub(s.lastSweep) >= chatSweepInterval || len(s.conversations) >= s.opts.MaxConversations {
		s.sweepLocked(now)
	}
	if len(s.conversations) >= s.opts.MaxConversations {
		s.log.Warn().Int("open", len(s.conversations)).Msg("chat capacity reached")
		return ports.Conversation{}, domain.ErrChatFull
	}
	s.conversations[id] = c
	return snapshot(id, c), nil
}

// Send appends the user message and schedules the reply. Only one reply may
// be pending per conversation.
func (s *ChatService) Send(ctx context.Context, id, text string) (ports.Conversation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ports.Conversation{}, domain.ErrEmptyMessage
	}

	s.mu.Lock()
	c, ok := s.activeLocked(id)
	if !ok {
		s.mu.Unlock()
		return ports.Conversation{}, domain.ErrConversationNotFound
	}
	if c.typing {
		s.mu.Unlock()
		return ports.Conversation{}, domain.ErrBotTyping
	}
	c.messages = append(c.messages, s.message(text, domain.SenderUser))
	c.typing = true
	snap := snapshot(id, c)
	s.mu.Unlock()

	job := ports.ChatJob{ConversationID: id, Text: text}
	if s.queue == nil {
		go func() { _, _ = s.Reply(context.WithoutCancel(ctx), job) }()
		return snap, nil
	}
	if err := s.queue.Enqueue(job); err != nil {
		s.mu.Lock()
		// Take the unanswered message back so the user can resend it.
		if len(c.messages) > 0 {
			c.messages = c.messages[:len(c.messages)-1]
		}
		c.typing = false
		s.mu.Unlock()
		s.log.Warn().Err(err).Str("conversation_id", id).Msg("chat reply not queued")
		return ports.Conversation{}, domain.ErrChatBusy
	}
	return snap, nil
}

func (s *ChatService) Get(id string) (ports.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.activeLocked(id)
	if !ok {
		return ports.Conversation{}, domain.ErrConversationNotFound
	}
	return snapshot(id, c), nil
}

// Reply runs the chatbot for job and appends its answer, or the apology when
// no answer could be produced.
func (s *ChatService) Reply(ctx context.Context, job ports.ChatJob) (string, error) {
	reply, err := s.bot.Respond(ctx, job.Text)
	text := reply.Text
	if err != nil {
		text = ChatApology
		reply.Topic = "error"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[job.ConversationID]
	if !ok {
		return string(reply.Topic), domain.ErrConversationNotFound
	}
	c.messages = append(c.messages, s.message(text, domain.SenderBot))
	c.typing = false
	return string(reply.Topic), err
}

// activeLocked returns the conversation id and marks it active, dropping it
// instead when it has been idle too long. Must be called with s.mu held.
func (s *ChatService) activeLocked(id string) (*conversation, bool) {
	c, ok := s.conversations[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.idle(c, now) {
		delete(s.conversations, id)
		return nil, false
	}
	c.lastActive = now
	return c, true
}

// sweepLocked drops idle conversations. Must be called with s.mu held.
func (s *ChatService) sweepLocked(now time.Time) {
	s.lastSweep = now
	for id, c := range s.conversations {
		if s.idle(c, now) {
			delete(s.conversations, id)
		}
	}
}

// idle reports whether c has been left alone past the idle timeout. A
// conversation waiting on a reply is never idle.
func (s *ChatService) idle(c *conversation, now time.Time) bool {
	return !c.typing && now.Sub(c.lastActive) >= s.opts.IdleTimeout
}

func (s *ChatService) message(text string, from domain.Sender) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    from,
		Timestamp: s.now().UTC(),
	}
}

func snapshot(id string, c *conversation) ports.Conversation {
	msgs := make([]domain.ChatMessage, len(c.messages))
	copy(msgs, c.messages)
	return ports.Conversation{ID: id, Messages: msgs, Typing: c.typing}
}
