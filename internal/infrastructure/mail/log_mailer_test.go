package mail

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogMailer_SendPasswordReset(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer("http://localhost:8080/reset-password", zerolog.New(&buf))

	if err := m.SendPasswordReset(context.Background(), "priya@example.com", "abc-123"); err != nil {
		t.Fatalf("SendPasswordReset returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "priya@example.com") || !strings.Contains(out, "reset-password?token=abc-123") {
		t.Fatalf("unexpected log line %s", out)
	}
}
