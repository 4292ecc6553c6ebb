package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestChatbot_SelectBranches(t *testing.T) {
	bot := NewChatbot(1, 0)

	cases := []struct {
		msg  string
		want Topic
	}{
		{"I want to REPORT a pothole", TopicReport},
		{"there is a problem", TopicReport},
		{"track my issue status", TopicStatus},
		{"any update?", TopicStatus},
		{"how do I register", TopicAccount},
		{"my account", TopicAccount},
		{"show the community wall", TopicCommunity},
		{"help", TopicHelp},
		{"what is this", TopicHelp},
		{"report status", TopicReport},
		{"xyz123", TopicFallback},
	}
	for _, tc := range cases {
		if got := bot.Select(tc.msg); got.Topic != tc.want {
			t.Errorf("Select(%q) = %s, want %s", tc.msg, got.Topic, tc.want)
		}
	}
}

func TestChatbot_FallbackIsUniform(t *testing.T) {
	bot := NewChatbot(42, 0)

	const trials = 4000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		r := bot.Select("xyz123")
		if r.Topic != TopicFallback {
			t.Fatalf("expected fallback, got %s", r.Topic)
		}
		counts[r.Text]++
	}

	if len(counts) != len(fallbacks) {
		t.Fatalf("expected all %d fallbacks, saw %d", len(fallbacks), len(counts))
	}
	for text, n := range counts {
		if n < 800 || n > 1200 {
			t.Fatalf("fallback %q chosen %d times out of %d", text, n, trials)
		}
	}
}

func TestChatbot_SeededIsDeterministic(t *testing.T) {
	a, b := NewChatbot(7, 0), NewChatbot(7, 0)
	for i := 0; i < 20; i++ {
		if a.Select("xyz").Text != b.Select("xyz").Text {
			t.Fatal("same seed must give the same fallback sequence")
		}
	}
}

func TestChatbot_RespondHonoursContext(t *testing.T) {
	bot := NewChatbot(1, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := bot.Respond(ctx, "help"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestChatbot_RespondWaitsDelay(t *testing.T) {
	bot := NewChatbot(1, 20*time.Millisecond)

	start := time.Now()
	r, err := bot.Respond(context.Background(), "help")
	if err != nil {
		t.Fatalf("Respond returned error: %v", err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatal("reply arrived before the configured delay")
	}
	if r.Topic != TopicHelp {
		t.Fatalf("expected help reply, got %s", r.Topic)
	}
}
