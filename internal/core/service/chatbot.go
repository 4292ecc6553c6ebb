package service

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// Topic names the branch that produced a chatbot reply.
type Topic string

const (
	TopicReport    Topic = "report"
	TopicStatus    Topic = "status"
	TopicAccount   Topic = "account"
	TopicCommunity Topic = "community"
	TopicHelp      Topic = "help"
	TopicFallback  Topic = "fallback"
)

const (
	// ChatGreeting opens every conversation.
	ChatGreeting = "Hello! I'm your JAAAGO assistant. How can I help you today?"
	// ChatApology replaces a reply that could not be produced.
	ChatApology = "Sorry, I'm having trouble right now. Please try again later or contact our support team."
)

type branch struct {
	topic    Topic
	keywords []string
	text     string
}

// branches are listed in dispatch order.
var branches = []branch{
	{
		topic:    TopicReport,
		keywords: []string{"report", "issue", "problem"},
		text:     "To report an issue, please go to Citizen Login → Dashboard → Report Issue. You can upload photos/videos and provide detailed descriptions. Make sure to select the correct issue category for faster resolution.",
	},
	{
		topic:    TopicStatus,
		keywords: []string{"status", "update", "track"},
		text:     "You can check your issue status by going to Citizen Dashboard → Check Updates. Enter your issue number and date to view current status and resolution images.",
	},
	{
		topic:    TopicAccount,
		keywords: []string{"login", "account", "register"},
		text:     "Choose your login type: Citizen (for reporting issues), Authority (for government officials), or Partner (for contractors/NGOs). Each has different access levels and functionalities.",
	},
	{
		topic:    TopicCommunity,
		keywords: []string{"community", "wall"},
		text:     "The Community page shows a live map with issue pins, allows filtering by type/date/status, and enables commenting and upvoting on issues. It's a great way to stay connected with local civic activities.",
	},
	{
		topic:    TopicHelp,
		keywords: []string{"help", "how", "what"},
		text:     "JAAAGO helps you: 1) Report civic issues with photos/videos, 2) Track issue resolution status, 3) Engage with community through comments and upvotes, 4) Stay informed about local civic activities. What specific help do you need?",
	},
}

var fallbacks = []string{
	"I understand you're asking about JAAAGO. Could you please be more specific about what you'd like to know?",
	"That's a great question! For detailed information, you might want to explore our platform features or contact our support team.",
	"I'm here to help! Please let me know what specific aspect of JAAAGO you'd like to learn about.",
	"Thanks for your question! Could you provide more details so I can give you the most helpful information?",
}

// Reply is a chatbot answer.
type Reply struct {
	Topic Topic
	Text  string
}

// Chatbot answers messages by keyword. It keeps no conversation memory.
type Chatbot struct {
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewChatbot returns a chatbot whose fallback choice is drawn from a PRNG
// seeded with seed. A zero seed uses the current time.
func NewChatbot(seed uint64, delay time.Duration) *Chatbot {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Chatbot{
		delay: delay,
		rng:   rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Select picks the reply for msg. Matching is case-insensitive on
// substrings. The branch matching the most distinct keywords wins and ties
// go to the earlier branch, so a message with a single keyword always takes
// the first branch that lists it.
func (b *Chatbot) Select(msg string) Reply {
	lower := strings.ToLower(msg)

	best, bestHits := -1, 0
	for i, br := range branches {
		hits := 0
		for _, kw := range br.keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = i, hits
		}
	}
	if best >= 0 {
		return Reply{Topic: branches[best].topic, Text: branches[best].text}
	}

	b.mu.Lock()
	n := b.rng.IntN(len(fallbacks))
	b.mu.Unlock()
	return Reply{Topic: TopicFallback, Text: fallbacks[n]}
}

// Respond waits the configured delay and then selects a reply.
func (b *Chatbot) Respond(ctx context.Context, msg string) (Reply, error) {
	if b.delay > 0 {
		t := time.NewTimer(b.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Reply{}, ctx.Err()
		case <-t.C:
		}
	}
	return b.Select(msg), nil
}
